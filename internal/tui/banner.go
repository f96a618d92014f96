package tui

import (
	"fmt"
	"strings"

	"github.com/layerkey/remapd/internal/layer"
)

// Banner renders the startup summary remap prints once it has grabbed
// the device, before the pipeline starts: the resolved device path and a one-line-per-layer summary of
// the compiled table, so a user can sanity-check what they're about to
// hand control of their keyboard to.
func Banner(devicePath string, table *layer.Table) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("remapd") + "\n")
	b.WriteString(labelStyle.Render("device") + " " + valueStyle.Render(devicePath) + "\n")
	b.WriteString(labelStyle.Render("layers") + "\n")

	for i, l := range table.Layers() {
		status := dimmedStyle.Render("inactive")
		if l.Active() {
			status = activeBadgeStyle.Render("active")
		}
		b.WriteString(fmt.Sprintf("  %d. %s [%s]\n", i, valueStyle.Render(l.Name()), status))
	}

	return borderStyle.Render(strings.TrimRight(b.String(), "\n"))
}
