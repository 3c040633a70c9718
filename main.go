package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"swipetabs/internal/config"
	"swipetabs/internal/eventbus"
	"swipetabs/internal/ui"
)

func main() {
	var (
		configPath string
		pagerMode  string
		lazy       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default ./"+config.FileName+" or the user config dir)")
	flag.StringVar(&pagerMode, "pager", "", "Pager to use: auto, page or scroll (overrides the config)")
	flag.BoolVar(&lazy, "lazy", false, "Render a tab only after it has been visited")
	flag.Parse()

	// Set up logging
	logFile, err := tea.LogToFile("swipetabs.log", "swipetabs")
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, save := loadOrCreateConfig(configSvc, configPath)

	fileSettings := cfg.UISettings
	if pagerMode != "" {
		cfg.UISettings.Pager = pagerMode
	}
	if lazy {
		cfg.UISettings.Lazy = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	bus.Subscribe(eventbus.EventTabChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.TabChangedEvent); ok {
			log.Printf("Tab changed to %d (%s)", event.Index, event.Key)
		}
	})

	log.Printf("Creating UI model...")
	model, err := ui.NewModel(ctx, bus, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating UI: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward errors to the UI
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Remember the last tab for the next start
	if key := model.CurrentKey(); key != cfg.InitialTab && save != nil {
		cfg.InitialTab = key
		cfg.UISettings = fileSettings
		if err := save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
}

// loadOrCreateConfig loads the config from path, ./.swipetabs.toml or the user
// config dir, in that order. A default config is written to path when the
// file does not exist. The returned func persists later changes; it is nil
// when the config came from a file that failed to load.
func loadOrCreateConfig(configSvc config.ConfigService, path string) (*config.Config, func(*config.Config) error) {
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}

	if path == "" {
		cfg, err := configSvc.Load()
		if err != nil {
			log.Printf("Failed to load user config: %v", err)
			return config.DefaultConfig(), nil
		}
		return cfg, configSvc.Save
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	save := func(cfg *config.Config) error { return configSvc.SaveToPath(cfg, path) }

	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Failed to load config %s: %v", path, err)
			return config.DefaultConfig(), nil
		}
		log.Printf("Loaded config from %s", path)
		return cfg, save
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, save
}
