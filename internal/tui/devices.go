package tui

import (
	"fmt"
	"strings"
)

// DeviceRow is the subset of evdevio.Device the table needs, kept
// independent of the evdevio package (which is linux-only) so this file
// builds on every platform.
type DeviceRow struct {
	Path       string
	Name       string
	IsKeyboard bool
}

// DeviceTable renders the list-devices output: one row per device, with
// likely keyboards called out.
func DeviceTable(rows []DeviceRow) string {
	if len(rows) == 0 {
		return dimmedStyle.Render("no input devices found")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s %-32s %s", "PATH", "NAME", "KEYBOARD?")) + "\n")
	for _, r := range rows {
		mark := dimmedStyle.Render("-")
		if r.IsKeyboard {
			mark = activeBadgeStyle.Render("yes")
		}
		b.WriteString(fmt.Sprintf("%-20s %-32s %s\n", valueStyle.Render(r.Path), valueStyle.Render(r.Name), mark))
	}
	return borderStyle.Render(strings.TrimRight(b.String(), "\n"))
}
