package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used across the storefront pages.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style
	Struck   lipgloss.Style
	Discount lipgloss.Style
	Savings  lipgloss.Style
	Total    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	StatusOK lipgloss.Style
	StatusKO lipgloss.Style
	Summary  lipgloss.Style
}

// DefaultStyles returns the standard storefront palette.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Normal:   lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Struck:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		Discount: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Savings:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusOK: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusKO: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Summary:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
