// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.helmux.yaml.
// Subsequent runs read and merge that file with built-in defaults. This
// application persists no session state — only the handful of knobs that
// govern how it connects to and renders the multiplexer.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSessionName is the constant session name used when none is
// configured or passed on the command line.
const DefaultSessionName = "helmux-default"

// Config holds all user-configurable settings.
type Config struct {
	// Multiplexer is the server binary to launch in control mode.
	Multiplexer string `yaml:"multiplexer"`

	// SessionName is the -s argument passed to the multiplexer; defaults
	// to DefaultSessionName.
	SessionName string `yaml:"session_name"`

	// SidebarWidth is the expanded sidebar's character width.
	SidebarWidth int `yaml:"sidebar_width"`

	// SidebarCollapsedWidth is read and validated by Load but not applied:
	// the layout always collapses the sidebar to ui.CollapsedSidebarWidth.
	SidebarCollapsedWidth int `yaml:"sidebar_collapsed_width"`

	// SidebarLeft places the sidebar on the left (true) or right (false).
	SidebarLeft bool `yaml:"sidebar_left"`

	// DebugLogPath overrides the default /tmp/<appname>-debug.log path.
	DebugLogPath string `yaml:"debug_log_path"`
}

// AppName is used to derive the default debug-log path.
const AppName = "helmux"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Multiplexer:           "tmux",
		SessionName:           DefaultSessionName,
		SidebarWidth:          20,
		SidebarCollapsedWidth: 3,
		SidebarLeft:           true,
		DebugLogPath:          filepath.Join(os.TempDir(), AppName+"-debug.log"),
	}
}

// configPath returns the path to ~/.helmux.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".helmux.yaml")
}

// Load reads the config file, falling back to defaults for missing
// fields, and writes the defaults to disk on first run.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.SidebarWidth < cfg.SidebarCollapsedWidth {
		cfg.SidebarWidth = 20
	}
	if cfg.SidebarCollapsedWidth < 1 {
		cfg.SidebarCollapsedWidth = 3
	}
	if cfg.Multiplexer == "" {
		cfg.Multiplexer = "tmux"
	}
	if cfg.SessionName == "" {
		cfg.SessionName = DefaultSessionName
	}
	if cfg.DebugLogPath == "" {
		cfg.DebugLogPath = filepath.Join(os.TempDir(), AppName+"-debug.log")
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# helmux configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
