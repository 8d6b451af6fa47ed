package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ProviderConfig is the [provider] section of settings.toml.
type ProviderConfig struct {
	Type    string `toml:"type"`
	BaseURL string `toml:"base_url,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
	Model   string `toml:"model"`
}

// GatewayConfig is the [gateway] section of settings.toml.
type GatewayConfig struct {
	Address            string `toml:"address"`
	CallTimeoutSeconds int    `toml:"call_timeout_seconds"`
}

// UserConfig mirrors the on-disk settings file.
type UserConfig struct {
	Provider      ProviderConfig `toml:"provider"`
	Gateway       GatewayConfig  `toml:"gateway"`
	DataDirectory string         `toml:"data_directory,omitempty"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DataDirectory  string
	ProviderType   string
	BaseURL        string
	APIKey         string
	Model          string
	GatewayAddress string
	CallTimeout    time.Duration
}

// DebugLog is the file-backed debug logger, nil unless PIPECHAT_DEBUG is
// set. Packages guard their debug output with a nil check.
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("PIPECHAT_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := os.Getenv("PIPECHAT_MODEL"); model != "" {
		c.Model = model
	}
	if addr := os.Getenv("PIPECHAT_GATEWAY"); addr != "" {
		c.GatewayAddress = addr
	}
	if dataDir := os.Getenv("PIPECHAT_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if timeout := os.Getenv("PIPECHAT_CALL_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.CallTimeout = time.Duration(secs) * time.Second
		}
	}
}

func CheckDebug() bool {
	debug := os.Getenv("PIPECHAT_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the file-backed debug log when PIPECHAT_DEBUG is set.
func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	logPath := filepath.Join(dataDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Println("=== pipechat debug log started ===")
}
