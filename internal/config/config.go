// Package config provides configuration management for pomo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pomo-cli/pomo/internal/domain"
)

// Config holds all configuration for the pomo application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds the six user-facing timer preferences.
type TimerConfig struct {
	WorkMinutes          int  `mapstructure:"work_minutes"`
	ShortBreakMinutes    int  `mapstructure:"short_break_minutes"`
	LongBreakMinutes     int  `mapstructure:"long_break_minutes"`
	RoundsUntilLongBreak int  `mapstructure:"rounds_until_long_break"`
	AutoStartNext        bool `mapstructure:"auto_start_next"`
	Sound                bool `mapstructure:"sound"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Desktop bool `mapstructure:"desktop"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorWork           string `mapstructure:"color_work"`
	ColorBreak          string `mapstructure:"color_break"`
	ColorPaused         string `mapstructure:"color_paused"`
	ColorTitle          string `mapstructure:"color_title"`
	ColorHelp           string `mapstructure:"color_help"`
	WorkGradientStart   string `mapstructure:"work_gradient_start"`
	WorkGradientEnd     string `mapstructure:"work_gradient_end"`
	BreakGradientStart  string `mapstructure:"break_gradient_start"`
	BreakGradientEnd    string `mapstructure:"break_gradient_end"`
	PausedGradientStart string `mapstructure:"paused_gradient_start"`
	PausedGradientEnd   string `mapstructure:"paused_gradient_end"`
	IconApp             string `mapstructure:"icon_app"`
	IconPaused          string `mapstructure:"icon_paused"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:           "#E06C75",
		ColorBreak:          "#4ECDC4",
		ColorPaused:         "#6B7280",
		ColorTitle:          "#6B7280",
		ColorHelp:           "#95A5A6",
		WorkGradientStart:   "#E06C75",
		WorkGradientEnd:     "#F5A97F",
		BreakGradientStart:  "#4ECDC4",
		BreakGradientEnd:    "#2ECC71",
		PausedGradientStart: "#6B7280",
		PausedGradientEnd:   "#4B5563",
		IconApp:             "🍅",
		IconPaused:          "⏸",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:          25,
			ShortBreakMinutes:    5,
			LongBreakMinutes:     15,
			RoundsUntilLongBreak: 4,
			AutoStartNext:        false,
			Sound:                true,
		},
		Notifications: NotificationConfig{
			Desktop: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.pomo",
		},
		Theme: DefaultThemeConfig(),
	}
}

// ToSettings converts the timer section to the domain Settings value,
// clamped to valid ranges.
func (c *Config) ToSettings() domain.Settings {
	return domain.Settings{
		WorkMinutes:          c.Timer.WorkMinutes,
		ShortBreakMinutes:    c.Timer.ShortBreakMinutes,
		LongBreakMinutes:     c.Timer.LongBreakMinutes,
		RoundsUntilLongBreak: c.Timer.RoundsUntilLongBreak,
		AutoStartNext:        c.Timer.AutoStartNext,
		Sound:                c.Timer.Sound,
	}.Normalized()
}

// SetSettings replaces the timer section wholesale from a domain Settings
// value.
func (c *Config) SetSettings(s domain.Settings) {
	s = s.Normalized()
	c.Timer = TimerConfig{
		WorkMinutes:          s.WorkMinutes,
		ShortBreakMinutes:    s.ShortBreakMinutes,
		LongBreakMinutes:     s.LongBreakMinutes,
		RoundsUntilLongBreak: s.RoundsUntilLongBreak,
		AutoStartNext:        s.AutoStartNext,
		Sound:                s.Sound,
	}
}

// Load loads the configuration from the config file. Missing fields fall
// back to defaults; an unreadable or corrupt file is reported so the
// caller can fall back to DefaultConfig wholesale.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	setDefaults(v)

	// If the config file doesn't exist, create it with defaults.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Clamp the numeric timer fields; a hand-edited file may hold zeros.
	cfg.SetSettings(cfg.ToSettings())

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "~/.pomo"
	}
	cfg.Storage.DataDir = expandHome(cfg.Storage.DataDir)

	return &cfg, nil
}

// expandHome expands a leading ~ to the user's home directory. Best
// effort: if the home directory cannot be resolved the path is returned
// as is.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo saves the configuration to an explicit path.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("timer.work_minutes", cfg.Timer.WorkMinutes)
	v.Set("timer.short_break_minutes", cfg.Timer.ShortBreakMinutes)
	v.Set("timer.long_break_minutes", cfg.Timer.LongBreakMinutes)
	v.Set("timer.rounds_until_long_break", cfg.Timer.RoundsUntilLongBreak)
	v.Set("timer.auto_start_next", cfg.Timer.AutoStartNext)
	v.Set("timer.sound", cfg.Timer.Sound)
	v.Set("notifications.desktop", cfg.Notifications.Desktop)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("theme.color_work", cfg.Theme.ColorWork)
	v.Set("theme.color_break", cfg.Theme.ColorBreak)
	v.Set("theme.color_paused", cfg.Theme.ColorPaused)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.work_gradient_start", cfg.Theme.WorkGradientStart)
	v.Set("theme.work_gradient_end", cfg.Theme.WorkGradientEnd)
	v.Set("theme.break_gradient_start", cfg.Theme.BreakGradientStart)
	v.Set("theme.break_gradient_end", cfg.Theme.BreakGradientEnd)
	v.Set("theme.paused_gradient_start", cfg.Theme.PausedGradientStart)
	v.Set("theme.paused_gradient_end", cfg.Theme.PausedGradientEnd)
	v.Set("theme.icon_app", cfg.Theme.IconApp)
	v.Set("theme.icon_paused", cfg.Theme.IconPaused)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomo", "config.toml"), nil
}

// GetDBPath returns the path to the history database file. The data
// directory may still carry an unexpanded ~, in particular when the
// config is a DefaultConfig fallback that never went through LoadFrom.
func GetDBPath(cfg *Config) string {
	dir := cfg.Storage.DataDir
	if dir == "" {
		dir = "~/.pomo"
	}
	return filepath.Join(expandHome(dir), "pomo.db")
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("timer.work_minutes", 25)
	v.SetDefault("timer.short_break_minutes", 5)
	v.SetDefault("timer.long_break_minutes", 15)
	v.SetDefault("timer.rounds_until_long_break", 4)
	v.SetDefault("timer.auto_start_next", false)
	v.SetDefault("timer.sound", true)
	v.SetDefault("notifications.desktop", true)
	v.SetDefault("storage.data_dir", "~/.pomo")

	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_work", defaults.ColorWork)
	v.SetDefault("theme.color_break", defaults.ColorBreak)
	v.SetDefault("theme.color_paused", defaults.ColorPaused)
	v.SetDefault("theme.color_title", defaults.ColorTitle)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
	v.SetDefault("theme.work_gradient_start", defaults.WorkGradientStart)
	v.SetDefault("theme.work_gradient_end", defaults.WorkGradientEnd)
	v.SetDefault("theme.break_gradient_start", defaults.BreakGradientStart)
	v.SetDefault("theme.break_gradient_end", defaults.BreakGradientEnd)
	v.SetDefault("theme.paused_gradient_start", defaults.PausedGradientStart)
	v.SetDefault("theme.paused_gradient_end", defaults.PausedGradientEnd)
	v.SetDefault("theme.icon_app", defaults.IconApp)
	v.SetDefault("theme.icon_paused", defaults.IconPaused)
}
