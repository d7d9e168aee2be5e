package toast

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

var (
	infoColor    = lipgloss.Color("#8B949E")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	fgColor      = lipgloss.Color("#E8E6E3")
	dimColor     = lipgloss.Color("#6B7280")

	kindColors = map[Kind]lipgloss.Color{
		KindInfo:    infoColor,
		KindWarning: warningColor,
		KindError:   errorColor,
	}

	termTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(fgColor)
	termBodyStyle  = lipgloss.NewStyle().Foreground(fgColor)
	termDimStyle   = lipgloss.NewStyle().Foreground(dimColor)
)

// DefaultTerminalWidth is the box width used when none is given.
const DefaultTerminalWidth = 48

// TerminalRenderer draws toasts as bordered boxes for terminal output, with a
// bar showing the remaining lifetime.
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a TerminalRenderer. Widths below 16 use
// DefaultTerminalWidth.
func NewTerminalRenderer(width int) *TerminalRenderer {
	if width < 16 {
		width = DefaultTerminalWidth
	}
	return &TerminalRenderer{width: width}
}

// Render implements notice.Renderer.
func (r *TerminalRenderer) Render(_ context.Context, t Toast, _ notice.Handlers) (string, error) {
	color, ok := kindColors[t.Kind()]
	if !ok {
		color = infoColor
	}
	inner := r.width - 4

	header := lipgloss.NewStyle().Bold(true).Foreground(color).Render(t.Kind().Label())
	if t.Paused() {
		header += termDimStyle.Render(" · paused")
	}

	lines := []string{header}
	if t.Title() != "" {
		lines = append(lines, termTitleStyle.Width(inner).Render(t.Title()))
	}
	if t.Body() != "" {
		lines = append(lines, termBodyStyle.Width(inner).Render(t.Body()))
	}
	lines = append(lines, progressBar(t.Progress(), inner, color))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(r.width - 2)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), nil
}

func progressBar(fraction float64, width int, color lipgloss.Color) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled)) +
		termDimStyle.Render(strings.Repeat("─", width-filled))
}

// Stack joins rendered toasts top to bottom.
func Stack(views []string) string {
	if len(views) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
