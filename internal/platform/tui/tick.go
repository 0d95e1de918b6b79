// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per scheduler frame.
type FrameMsg time.Time

// waitForFrame returns a command that blocks until the next scheduler
// frame. It yields nil once the channel is closed, which ends the chain.
func waitForFrame(ticks <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ticks
		if !ok {
			return nil
		}
		return FrameMsg(t)
	}
}
