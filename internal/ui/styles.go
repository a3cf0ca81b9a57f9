// Package ui holds the lipgloss styles shared by CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#7EE081")
	Muted  = lipgloss.Color("#888888")
	Bad    = lipgloss.Color("#FF5F5F")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(14)

	ValueStyle = lipgloss.NewStyle()

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrStyle = lipgloss.NewStyle().
			Foreground(Bad)
)
