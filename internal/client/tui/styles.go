package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPrimary = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#8a8f98")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups every style the dashboard renders with.
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	Blurred    lipgloss.Style
	FieldError lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Notice     lipgloss.Style
	Muted      lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
}

// DefaultStyles returns the dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		App:        lipgloss.NewStyle().Padding(1, 2),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Subtitle:   lipgloss.NewStyle().Bold(true),
		Label:      lipgloss.NewStyle().Width(20),
		Focused:    lipgloss.NewStyle().Foreground(colorPrimary),
		Blurred:    lipgloss.NewStyle().Foreground(colorMuted),
		FieldError: lipgloss.NewStyle().Foreground(colorError).PaddingLeft(20),
		Success: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1),
		Notice:  lipgloss.NewStyle().Foreground(colorWarning),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Help:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Spinner: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
