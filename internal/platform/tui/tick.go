// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// TickMsg asks the running game to advance one fixed step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one tick interval from now.
// Rates below 1 Hz run at the default 60 Hz.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
