package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("PIPECHAT_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "plain", path: "/var/lib/pipechat", want: "/var/lib/pipechat"},
		{name: "tilde", path: "~/data", want: filepath.Join(homeDir(), "data")},
		{name: "env var", path: "$PIPECHAT_TEST_DIR/chat", want: "/srv/data/chat"},
		{name: "cleaned", path: "/var//lib/../lib/pipechat", want: "/var/lib/pipechat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSettingsFilePath(t *testing.T) {
	got := GetSettingsFilePath()
	if filepath.Base(got) != "settings.toml" {
		t.Errorf("settings file = %q", got)
	}
	if !strings.HasPrefix(got, GetConfigDir()) {
		t.Errorf("settings file %q not under config dir %q", got, GetConfigDir())
	}
}
