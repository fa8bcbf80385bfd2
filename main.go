package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/api"
	"jobdash/internal/config"
	"jobdash/internal/eventbus"
	"jobdash/internal/session"
	"jobdash/internal/ui"
)

func main() {
	var (
		configPath string
		apiURL     string
		tab        string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&apiURL, "api", "", "Backend base URL, overrides the config file")
	flag.StringVar(&tab, "tab", "", "Tab to open on start (dashboard, analytics, top30, sources, search, jobs, admin, login)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Printf("Error loading .env: %v\n", err)
		os.Exit(1)
	}

	// Create event bus
	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus)
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	}
	cfg, err := loadConfig(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.API.BaseURL = strings.TrimSpace(apiURL)
	}
	if tab != "" {
		cfg.UI.DefaultTab = tab
	}

	// Set up logging; the alt screen owns stdout
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("jobdash starting against %s", cfg.API.BaseURL)

	sessions, err := session.NewManager(session.NewFileStore(cfg.TokenPath), bus)
	if err != nil {
		log.Printf("Could not restore session: %v", err)
		sessions, _ = session.NewManager(&session.MemoryStore{}, bus)
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.Timeout()),
		api.WithRateLimit(cfg.API.RequestsPerSecond, cfg.API.Burst),
	)

	uiModel := ui.NewModel(cfg, client, sessions, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Settings the user changed in the TUI are written back on quit
	saved := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			if event.PageSize > 0 {
				cfg.Search.PageSize = event.PageSize
			}
			if event.DefaultTab != "" {
				cfg.UI.DefaultTab = event.DefaultTab
			}
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", configSvc.Path())
			}
		}
		saved <- struct{}{}
	})

	// Forward events the UI reacts to
	for _, t := range []eventbus.EventType{
		eventbus.EventLoggedIn,
		eventbus.EventLoggedOut,
		eventbus.EventError,
		eventbus.EventJobCreated,
		eventbus.EventAdminActionCompleted,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		bus.Close()
		os.Exit(1)
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		log.Printf("Config was not saved before exit")
	}
	bus.Close()
	log.Printf("UI exited normally")
}

// loadConfig reads the config file, writing the defaults out on first run
func loadConfig(svc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(svc.Path()); err == nil {
		return svc.Load()
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if err := svc.SaveToPath(cfg, svc.Path()); err != nil {
		log.Printf("Failed to write default config: %v", err)
	}
	return cfg, nil
}
