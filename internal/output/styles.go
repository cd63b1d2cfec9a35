// Package output renders records, menus and CSV exports for the shell.
package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle renders the startup banner text.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	// MenuHeaderStyle renders menu section headers.
	MenuHeaderStyle = lipgloss.NewStyle().Bold(true)

	// SuccessStyle renders confirmation messages.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// ErrorStyle renders recoverable operation errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	// RuleStyle renders separator lines.
	RuleStyle = lipgloss.NewStyle().Faint(true)
)

// Banner renders the startup banner.
func Banner(title string) string {
	bar := strings.Repeat("=", 60)
	return bar + "\n" + TitleStyle.Render(title) + "\n" + bar
}

// Rule renders a horizontal separator of the given width.
func Rule(width int) string {
	return RuleStyle.Render(strings.Repeat("─", width))
}
