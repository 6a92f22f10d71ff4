package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// StyledUI renders the same report as SimpleUI with terminal colors.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{
		SimpleUI: &SimpleUI{
			cmd: cmd,
			palette: palette{
				banner:  render(bannerStyle),
				failure: render(failureStyle),
				success: render(successStyle),
				muted:   render(mutedStyle),
			},
		},
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string {
		return style.Render(s)
	}
}
