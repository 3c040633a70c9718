package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	LockedTab   lipgloss.Style
	Indicator   lipgloss.Style
	SceneTitle  lipgloss.Style
	SceneBody   lipgloss.Style
	Scene       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Position    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		LockedTab: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		SceneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		SceneBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Scene:       lipgloss.NewStyle().Padding(1, 2),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
