// Package config provides configuration management for Habit Hub.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It stores starting
// dimensions and preferences only; completion state is never written back.
type Config struct {
	Variant       string             `mapstructure:"variant"`
	FirstRun      bool               `mapstructure:"first_run"`
	Grid          GridConfig         `mapstructure:"grid"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// GridConfig holds the starting grid dimensions and habit names. Values pass
// through the domain clamping rules when the grid is built, so out-of-range
// edits to the file are tolerated.
type GridConfig struct {
	Habits     int      `mapstructure:"habits"`
	Weeks      int      `mapstructure:"weeks"`
	HabitNames []string `mapstructure:"habit_names"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorCompleted string `mapstructure:"color_completed"`
	ColorRemaining string `mapstructure:"color_remaining"`
	ColorTitle     string `mapstructure:"color_title"`
	ColorHeader    string `mapstructure:"color_header"`
	ColorName      string `mapstructure:"color_name"`
	ColorCursor    string `mapstructure:"color_cursor"`
	ColorHelp      string `mapstructure:"color_help"`
	IconApp        string `mapstructure:"icon_app"`
	IconChecked    string `mapstructure:"icon_checked"`
	IconUnchecked  string `mapstructure:"icon_unchecked"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorCompleted: "#2ECC71",
		ColorRemaining: "#E74C3C",
		ColorTitle:     "#7C6FE0",
		ColorHeader:    "#A0AEC0",
		ColorName:      "#CBD5E0",
		ColorCursor:    "#7C6FE0",
		ColorHelp:      "#95A5A6",
		IconApp:        "🌱",
		IconChecked:    "✓",
		IconUnchecked:  "·",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Variant:  string(domain.VariantWeekly),
		FirstRun: true,
		Grid: GridConfig{
			Habits:     domain.DefaultHabitCount,
			Weeks:      domain.DefaultWeekCount,
			HabitNames: domain.DefaultHabitNames(),
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// NewGrid builds the starting domain grid for the given variant from the
// configured defaults, clamped through the domain rules.
func (c *Config) NewGrid(variant domain.Variant) *domain.GridConfig {
	return domain.NewGridConfig(variant, c.Grid.Habits, c.Grid.Weeks, c.Grid.HabitNames)
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set defaults
	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set all values
	viper.Set("variant", cfg.Variant)
	viper.Set("first_run", cfg.FirstRun)
	viper.Set("grid.habits", cfg.Grid.Habits)
	viper.Set("grid.weeks", cfg.Grid.Weeks)
	viper.Set("grid.habit_names", cfg.Grid.HabitNames)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("theme.color_completed", cfg.Theme.ColorCompleted)
	viper.Set("theme.color_remaining", cfg.Theme.ColorRemaining)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_header", cfg.Theme.ColorHeader)
	viper.Set("theme.color_name", cfg.Theme.ColorName)
	viper.Set("theme.color_cursor", cfg.Theme.ColorCursor)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_checked", cfg.Theme.IconChecked)
	viper.Set("theme.icon_unchecked", cfg.Theme.IconUnchecked)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".habithub", "config.toml"), nil
}

// GetLogPath returns the path of the debug log file.
func GetLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".habithub", "debug.log"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("variant", string(domain.VariantWeekly))
	viper.SetDefault("first_run", true)
	viper.SetDefault("grid.habits", domain.DefaultHabitCount)
	viper.SetDefault("grid.weeks", domain.DefaultWeekCount)
	viper.SetDefault("grid.habit_names", domain.DefaultHabitNames())
	viper.SetDefault("notifications.enabled", true)

	// Theme defaults
	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_completed", defaults.ColorCompleted)
	viper.SetDefault("theme.color_remaining", defaults.ColorRemaining)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_header", defaults.ColorHeader)
	viper.SetDefault("theme.color_name", defaults.ColorName)
	viper.SetDefault("theme.color_cursor", defaults.ColorCursor)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_checked", defaults.IconChecked)
	viper.SetDefault("theme.icon_unchecked", defaults.IconUnchecked)
}
