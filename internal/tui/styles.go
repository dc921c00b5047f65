package tui

import "github.com/charmbracelet/lipgloss"

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
)
