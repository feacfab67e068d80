package storyview

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	shownBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	sentinelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	gradientFrom = lipgloss.Color("#5A56E0")
	gradientTo   = lipgloss.Color("#EE6FF8")
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// applyGradient renders bold text with a horizontal color gradient,
// blended in HCL space for perceptually uniform transitions.
func applyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	c1, _ := colorful.MakeColor(hexToColor(from))
	c2, _ := colorful.MakeColor(hexToColor(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		blended := c1.BlendHcl(c2, t)
		b.WriteString(
			lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(blended.Hex())).
				Render(cluster),
		)
	}
	return b.String()
}

func hexToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
