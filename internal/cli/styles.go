package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskpulse/internal/domain"
)

// Colors defines the color palette for terminal output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Tier colors
	Low  lipgloss.Color
	Mid  lipgloss.Color
	High lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	Low:  lipgloss.Color("#74B9FF"), // Light blue
	Mid:  lipgloss.Color("#FDCB6E"), // Yellow
	High: lipgloss.Color("#D63031"), // Red
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary)
	mutedStyle  = lipgloss.NewStyle().Foreground(Colors.Muted)
	okStyle     = lipgloss.NewStyle().Foreground(Colors.Success)
	warnStyle   = lipgloss.NewStyle().Foreground(Colors.Warning)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(Colors.Error)
)

// rtpBarWidth is the number of cells in the RTP progress bar.
const rtpBarWidth = 20

// tierBadge renders a tier as a fixed-width colored label.
func tierBadge(t domain.Tier) string {
	style := lipgloss.NewStyle().Bold(true)
	switch t {
	case domain.TierLow:
		style = style.Foreground(Colors.Low)
	case domain.TierMid:
		style = style.Foreground(Colors.Mid)
	case domain.TierHigh:
		style = style.Foreground(Colors.High)
	case domain.TierAuto:
		style = style.Foreground(Colors.Muted)
	}
	return style.Render(fmt.Sprintf("%-4s", string(t)))
}

// rtpBar renders a percentage in [0, 100] as a bar of rtpBarWidth cells.
func rtpBar(percentage float64) string {
	filled := int(percentage / 100 * rtpBarWidth)
	filled = min(max(filled, 0), rtpBarWidth)

	color := Colors.Error
	switch {
	case percentage >= 75:
		color = Colors.Success
	case percentage >= 40:
		color = Colors.Warning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := mutedStyle.Render(strings.Repeat("░", rtpBarWidth-filled))
	return "[" + bar + rest + "]"
}

// overloadLabel describes an overload factor.
func overloadLabel(m domain.WorkloadMetrics) string {
	switch {
	case m.IsOverloaded():
		return errStyle.Render("overloaded")
	case m.OverloadFactor >= 0.8:
		return warnStyle.Render("near capacity")
	default:
		return okStyle.Render("ok")
	}
}
