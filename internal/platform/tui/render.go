package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Panel styles. The OLED is white on black; the bezel frames it.
var (
	pixelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0"))
	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Half blocks indexed by (top, bottom) pixel: two pixel rows per line.
var halfBlocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

// RenderScreen converts a 1-bit screen to text, packing two pixel rows
// into each terminal line.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); x++ {
			top := s.Get(x, y) == core.ColorOn
			bottom := y+1 < s.Height() && s.Get(x, y+1) == core.ColorOn
			sb.WriteRune(halfBlocks[b2i(top)][b2i(bottom)])
		}
	}
	return sb.String()
}

// RenderPanel renders the screen inside the bezel with a status line.
func RenderPanel(s *core.Screen, status string) string {
	panel := bezelStyle.Render(pixelStyle.Render(RenderScreen(s)))
	return lipgloss.JoinVertical(lipgloss.Left, panel, statusStyle.Render(status))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
