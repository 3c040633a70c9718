package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipetabs/internal/config"
	"swipetabs/internal/domain"
	"swipetabs/internal/eventbus"
	"swipetabs/internal/tabview"
	"swipetabs/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model owns the navigation state and hosts the tab view. The view only
// asks for tab changes; the Model decides and hands the new state back.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	keys   KeyMap

	nav    domain.NavigationState
	locked map[string]bool

	tabs     *tabview.View
	renderer *views.Renderer
	helpText *HelpRenderer
	helpOps  *HelpOps

	width       int
	height      int
	requests    []int
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model from cfg
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	nav, err := cfg.NavigationState()
	if err != nil {
		return nil, fmt.Errorf("navigation state: %w", err)
	}
	capability, err := tabview.ParseCapability(cfg.UISettings.Pager)
	if err != nil {
		return nil, err
	}
	pager, err := tabview.SelectPager(capability, nil)
	if err != nil {
		return nil, err
	}

	bodies := make(map[string]string, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		bodies[strings.TrimSpace(tab.Key)] = tab.Body
	}

	keys := DefaultKeyMap()
	m := &Model{
		bus:      bus,
		config:   cfg,
		keys:     keys,
		nav:      nav,
		locked:   cfg.Locked(),
		helpText: NewHelpRenderer(keys),
	}
	m.renderer = views.NewRenderer(keys, bodies, m.locked)

	opts := tabview.NewOptions(nav, m.requestChangeTab, m.renderer.RenderScene)
	opts.RenderHeader = m.renderer.RenderHeader
	opts.RenderFooter = m.renderer.RenderFooter
	opts.OnLoad = m.handleLoad
	opts.OnChangePosition = m.handlePosition
	opts.Lazy = cfg.UISettings.Lazy
	opts.SwipeEnabled = cfg.UISettings.SwipeEnabled
	opts.AnimationEnabled = cfg.UISettings.AnimationEnabled
	opts.Pager = pager
	if cfg.UISettings.InitialWidth > 0 {
		opts.InitialLayout = &domain.Layout{
			Width:  cfg.UISettings.InitialWidth,
			Height: cfg.UISettings.InitialHeight,
		}
	}

	m.tabs, err = tabview.New(ctx, opts)
	if err != nil {
		return nil, err
	}
	log.Printf("ui: %d tabs, pager %s, lazy %v", len(nav.Routes), capability, opts.Lazy)
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// NavigationState returns the state owned by the Model
func (m *Model) NavigationState() domain.NavigationState { return m.nav }

// CurrentKey returns the key of the active tab
func (m *Model) CurrentKey() string { return m.nav.CurrentRoute().Key }

// Tabs returns the hosted tab view
func (m *Model) Tabs() *tabview.View { return m.tabs }

// Close releases the tab view
func (m *Model) Close() { m.tabs.Close() }

// Init mounts the tab view
func (m *Model) Init() tea.Cmd {
	return m.tabs.Init()
}

// Update handles messages. Tab change requests raised while handling msg
// are queued and come back as changeTabMsg.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.flushRequests())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		before := m.tabs.Layout()
		cmd := m.tabs.SetSize(msg.Width, msg.Height)
		if after := m.tabs.Layout(); after != before {
			m.publish(eventbus.LayoutMeasuredEvent{Width: after.Width, Height: after.Height})
		}
		return cmd

	case tea.KeyMsg:
		if m.inPagerMode {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode {
			return nil
		}
		// a release outside the scene still has to end the drag
		if !m.inScene(msg.Y) && msg.Action != tea.MouseActionRelease {
			return nil
		}
		return m.tabs.Update(msg)

	case changeTabMsg:
		return m.applyChange(msg.index)

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m.setStatus(e.Message, true)
		}
		return nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			return m.setStatus("help unavailable", true)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		m.renderer.SetStatus("", false)
		return nil

	default:
		// animation frames and pager sync messages
		return m.tabs.Update(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.tabs.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(m.helpText.Render(m.nav, m.locked))

	case key.Matches(msg, m.keys.Next):
		m.tabs.JumpToIndex(m.nav.Index + 1)
		return nil

	case key.Matches(msg, m.keys.Prev):
		m.tabs.JumpToIndex(m.nav.Index - 1)
		return nil

	case key.Matches(msg, m.keys.Jump):
		index := int(msg.String()[0] - '1')
		if !m.tabs.JumpToIndex(index) {
			log.Printf("ui: no tab %d", index+1)
		}
		return nil
	}

	return m.tabs.Update(msg)
}

// requestChangeTab receives requests from the tab view. It runs inside the
// view's callbacks, so the decision is deferred to the next message.
func (m *Model) requestChangeTab(index int) {
	m.requests = append(m.requests, index)
	m.publish(eventbus.TabChangeRequestedEvent{From: m.nav.Index, To: index})
}

func (m *Model) flushRequests() tea.Cmd {
	if len(m.requests) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.requests))
	for _, index := range m.requests {
		index := index
		cmds = append(cmds, func() tea.Msg { return changeTabMsg{index: index} })
	}
	m.requests = nil
	return tea.Batch(cmds...)
}

// applyChange accepts or refuses a requested index. A refusal still hands
// the unchanged state back so the pager returns to the current page.
func (m *Model) applyChange(index int) tea.Cmd {
	if !m.nav.InRange(index) {
		log.Printf("ui: dropping stale request for tab %d", index)
		return nil
	}

	route := m.nav.Routes[index]
	if m.locked[route.Key] {
		m.publish(eventbus.TabChangeRejectedEvent{Index: index, Reason: "locked"})
		cmd, _ := m.tabs.SetNavigationState(m.nav)
		return tea.Batch(cmd, m.setStatus(fmt.Sprintf("%s is locked", route.Title), true))
	}

	prev := m.nav
	m.nav = prev.WithIndex(index)
	cmd, err := m.tabs.SetNavigationState(m.nav)
	if err != nil {
		m.nav = prev
		log.Printf("ui: %v", err)
		m.publish(eventbus.ErrorEvent{Message: "tab change failed", Err: err})
		return nil
	}
	if index != prev.Index {
		m.publish(eventbus.TabChangedEvent{Index: index, Key: route.Key})
	}
	return cmd
}

func (m *Model) handleLoad(index int) {
	if m.nav.InRange(index) {
		m.publish(eventbus.SceneLoadedEvent{Index: index, Key: m.nav.Routes[index].Key})
	}
}

func (m *Model) handlePosition(position float64) {
	m.publish(eventbus.PositionChangedEvent{Position: position})
}

func (m *Model) inScene(y int) bool {
	if m.height == 0 {
		return true
	}
	return y >= views.HeaderHeight && y < m.height-views.FooterHeight
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.renderer.SetStatus(msg, isErr)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return func() tea.Msg { return helpPagerMsg{err: fmt.Errorf("program not set")} }
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.tabs.View()
}
