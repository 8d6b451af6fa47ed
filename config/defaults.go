package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultModel          = "gpt-3.5-turbo"
	DefaultGatewayAddress = "http://localhost:8000/mcp"
	DefaultCallTimeout    = 10 * time.Second
)

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Provider: ProviderConfig{
			Type:  "openai",
			Model: DefaultModel,
		},
		Gateway: GatewayConfig{
			Address:            DefaultGatewayAddress,
			CallTimeoutSeconds: int(DefaultCallTimeout / time.Second),
		},
		DataDirectory: GetDefaultDataDir(),
	}
}

// CreateDefaultUserConfig writes a fresh settings.toml on first run.
func CreateDefaultUserConfig() error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(GetSettingsFilePath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(DefaultUserConfig()); err != nil {
		return fmt.Errorf("failed to write default settings: %w", err)
	}
	return nil
}

// Load reads settings.toml (creating it with defaults on first run), applies
// environment overrides, and resolves the runtime Config.
func Load() (*Config, error) {
	userCfg := DefaultUserConfig()
	settingsPath := GetSettingsFilePath()

	if !FileExists(settingsPath) {
		if err := CreateDefaultUserConfig(); err != nil {
			return nil, err
		}
	} else {
		if _, err := toml.DecodeFile(settingsPath, userCfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	timeout := time.Duration(userCfg.Gateway.CallTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	cfg := &Config{
		DataDirectory:  userCfg.DataDirectory,
		ProviderType:   userCfg.Provider.Type,
		BaseURL:        userCfg.Provider.BaseURL,
		APIKey:         userCfg.Provider.APIKey,
		Model:          userCfg.Provider.Model,
		GatewayAddress: userCfg.Gateway.Address,
		CallTimeout:    timeout,
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = GetDefaultDataDir()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cfg.applyEnvOverrides()

	if err := EnsureDir(cfg.DataDir()); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}
