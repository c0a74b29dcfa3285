package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swarm-arcade/internal/core"
)

// plainPalette renders to a non-terminal, so no escape sequences are emitted.
func plainPalette() *Palette {
	return NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestPaletteCoversEveryColor(t *testing.T) {
	p := plainPalette()
	for c := core.ColorRed; c <= core.ColorDarkGray; c++ {
		if _, ok := p.styles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestPaletteUnknownColorUnstyled(t *testing.T) {
	p := plainPalette()
	if got := p.Style(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}

func TestPaletteRenderMatchesText(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.SetColored(5, 1, '█', core.ColorDarkGray)
	s.DrawText(1, 2, "xyz")

	got := plainPalette().Render(s)
	if got != s.String() {
		t.Errorf("Render() = %q, expected %q", got, s.String())
	}
}

func TestModelUsesGivenPalette(t *testing.T) {
	p := plainPalette()
	m := NewModel(&fakeGame{endAfter: 100}, nil, core.RuntimeConfig{ScreenW: 4, ScreenH: 2, TickRate: 60, Seed: 1}).
		WithPalette(p)

	if m.palette != p {
		t.Fatal("WithPalette should replace the default palette")
	}
	if m.WithPalette(nil).palette != p {
		t.Error("a nil palette should keep the current one")
	}
	if got := m.View(); got != "    \n    " {
		t.Errorf("View() = %q", got)
	}
}
