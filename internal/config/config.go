package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"swipetabs/internal/domain"
	"swipetabs/internal/eventbus"
)

// FileName is the per-directory config file looked up by the CLI
const FileName = ".swipetabs.toml"

// Pager modes accepted in UISettings.Pager
const (
	PagerAuto   = "auto"
	PagerPage   = "page"
	PagerScroll = "scroll"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	InitialTab string     `toml:"initial_tab"` // route key; empty means the first tab
	UISettings UISettings `toml:"ui"`
	Tabs       []Tab      `toml:"tabs"`
}

// UISettings represents tab view behaviour
type UISettings struct {
	Lazy             bool   `toml:"lazy"`
	SwipeEnabled     bool   `toml:"swipe_enabled"`
	AnimationEnabled bool   `toml:"animation_enabled"`
	Pager            string `toml:"pager"` // auto, page or scroll
	InitialWidth     int    `toml:"initial_width"`
	InitialHeight    int    `toml:"initial_height"`
}

// Tab describes one route and the text shown in its scene
type Tab struct {
	Key    string `toml:"key"`
	Title  string `toml:"title"`
	Body   string `toml:"body,omitempty"`
	File   string `toml:"file,omitempty"` // read into Body when set
	Locked bool   `toml:"locked,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "swipetabs", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config directory
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the user config directory
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Tabs = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = DefaultConfig().Tabs
	}

	if err := cfg.resolveFiles(filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config.forDisk())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Tabs: len(cfg.Tabs)})
	}
}

// forDisk returns a copy without bodies that were read from files
func (c *Config) forDisk() *Config {
	out := *c
	out.Tabs = make([]Tab, len(c.Tabs))
	for i, tab := range c.Tabs {
		if tab.File != "" {
			tab.Body = ""
		}
		out.Tabs[i] = tab
	}
	return &out
}

// resolveFiles reads tab bodies from files relative to baseDir
func (c *Config) resolveFiles(baseDir string) error {
	for i := range c.Tabs {
		tab := &c.Tabs[i]
		if tab.File == "" {
			continue
		}
		p := tab.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read body of tab %q: %w", tab.Key, err)
		}
		tab.Body = string(data)
	}
	return nil
}

// Validate checks that the config can produce a navigation state
func (c *Config) Validate() error {
	if _, err := c.NavigationState(); err != nil {
		return err
	}
	switch c.UISettings.Pager {
	case "", PagerAuto, PagerPage, PagerScroll:
	default:
		return fmt.Errorf("unknown pager %q (want %s, %s or %s)", c.UISettings.Pager, PagerAuto, PagerPage, PagerScroll)
	}
	if c.UISettings.InitialWidth < 0 || c.UISettings.InitialHeight < 0 {
		return errors.New("initial layout must not be negative")
	}
	return nil
}

// NavigationState builds the initial navigation state from the tab list
func (c *Config) NavigationState() (domain.NavigationState, error) {
	routes := make([]domain.Route, 0, len(c.Tabs))
	for _, tab := range c.Tabs {
		title := tab.Title
		if title == "" {
			title = tab.Key
		}
		routes = append(routes, domain.Route{Key: strings.TrimSpace(tab.Key), Title: title})
	}
	nav := domain.NavigationState{Routes: routes}
	if c.InitialTab != "" {
		idx := nav.IndexOf(c.InitialTab)
		if idx < 0 {
			return nav, fmt.Errorf("initial tab %q is not defined", c.InitialTab)
		}
		nav.Index = idx
	}
	if err := nav.Validate(); err != nil {
		return nav, err
	}
	return nav, nil
}

// Locked returns the keys of tabs that cannot be jumped to
func (c *Config) Locked() map[string]bool {
	locked := make(map[string]bool)
	for _, tab := range c.Tabs {
		if tab.Locked {
			locked[strings.TrimSpace(tab.Key)] = true
		}
	}
	return locked
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Lazy:             true,
			SwipeEnabled:     true,
			AnimationEnabled: true,
			Pager:            PagerAuto,
		},
		Tabs: []Tab{
			{Key: "inbox", Title: "Inbox", Body: "Nothing new.\n\nSwipe with h/l, drag with the mouse, or press 1-3."},
			{Key: "drafts", Title: "Drafts", Body: "No drafts yet."},
			{Key: "archive", Title: "Archive", Body: "Archived items stay here."},
		},
	}
}
