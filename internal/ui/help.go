package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"swipetabs/internal/domain"
)

// HelpRenderer builds the help text shown in the pager
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render lists the key bindings and the configured tabs
func (r *HelpRenderer) Render(nav domain.NavigationState, locked map[string]bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("swipetabs Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Swiping"))
	help.WriteString("\n")
	help.WriteString(line(r.keys.Swipe.Prev))
	help.WriteString(line(r.keys.Swipe.Next))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("drag"), descStyle.Render("drag the page with the mouse")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("wheel"), descStyle.Render("horizontal wheel steps one page")))

	help.WriteString(sectionStyle.Render("Tabs"))
	help.WriteString("\n")
	help.WriteString(line(r.keys.Next))
	help.WriteString(line(r.keys.Prev))
	help.WriteString(line(r.keys.Jump))
	for i, route := range nav.Routes {
		desc := route.Title
		if locked[route.Key] {
			desc += " (locked)"
		}
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(fmt.Sprintf("%d", i+1)), descStyle.Render(desc)))
	}

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line(r.keys.Help))
	help.WriteString(strings.TrimSuffix(line(r.keys.Quit), "\n"))

	return help.String()
}

// HelpOps shows help outside of the Bubble Tea renderer
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open help pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
