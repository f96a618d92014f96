package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/layerkey/remapd/internal/event"
)

const listenMaxLines = 20

// EventSource is the minimal capability FeedEvents needs: just a blocking
// read, independent of pipeline.Source's Close requirement, since the
// listen subcommand never writes anywhere and has no sink to release.
type EventSource interface {
	Recv() (event.InputEvent, error)
}

// EventMsg carries one received InputEvent into the Bubble Tea update
// loop.
type EventMsg struct {
	Code  string
	State string
}

type listenErrMsg struct{ err error }

// ListenModel is the Bubble Tea model for the listen subcommand: a
// scrolling tail of the last N events received from a device, with no
// sink, the same shape as the original's StdoutListener but rendered
// live instead of dumped line by line.
type ListenModel struct {
	devicePath string
	events     []EventMsg
	err        error
}

// NewListenModel returns a ListenModel for devicePath, shown in the
// view's header.
func NewListenModel(devicePath string) ListenModel {
	return ListenModel{devicePath: devicePath}
}

func (m ListenModel) Init() tea.Cmd { return nil }

func (m ListenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case EventMsg:
		m.events = append(m.events, msg)
		if len(m.events) > listenMaxLines {
			m.events = m.events[len(m.events)-listenMaxLines:]
		}
	case listenErrMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m ListenModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("remapd listen") + " " + dimmedStyle.Render(m.devicePath) + "\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	for _, e := range m.events {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", e.Code)) + valueStyle.Render(e.State) + "\n")
	}
	b.WriteString("\n" + dimmedStyle.Render("press q to quit"))
	return b.String()
}

// FeedEvents reads from source until it errors, forwarding every event
// to the running program. It is meant to run in its own goroutine,
// calling p.Send(...) from outside the Bubble Tea update loop.
func FeedEvents(p *tea.Program, source EventSource) {
	for {
		e, err := source.Recv()
		if err != nil {
			p.Send(listenErrMsg{err: err})
			return
		}
		p.Send(EventMsg{Code: e.Code.String(), State: e.State.String()})
	}
}
