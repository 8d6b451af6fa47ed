package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pipechat/config"
	"pipechat/provider"
	"pipechat/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	// The UI runs without a provider when no key is configured; chat
	// submissions then surface a status error instead of failing at startup.
	var completer provider.Completer
	if cfg.APIKey != "" {
		completer, err = provider.New(provider.Config{
			Type:    provider.MapProviderID(cfg.ProviderType),
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
		})
		if err != nil {
			fmt.Printf("Failed to initialize provider: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		ui.NewAppView(cfg, completer, Version),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running pipechat: %v\n", err)
		os.Exit(1)
	}
}
