package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"regexp"
)

const (
	hotPink  = lipgloss.Color("#FF06B7")
	darkGray = lipgloss.Color("#767676")
)

var (
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	Bold         = lipgloss.NewStyle().Bold(true)
	OKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	RaceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	RunningStyle = lipgloss.NewStyle().Foreground(hotPink)
	Base         = lipgloss.NewStyle().
			BorderForeground(lipgloss.Color("238")).
			Align(lipgloss.Left)
	InfoStatusStyle = lipgloss.NewStyle().Background(lipgloss.Color("#3a3835")).Foreground(lipgloss.Color("#ffffff"))
	ContinueStyle   = lipgloss.NewStyle().Foreground(darkGray)
)

var StyleSelector = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// DisableColor turns off both lipgloss and fatih/color output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	color.NoColor = true
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	return StyleSelector.ReplaceAllString(s, "")
}
