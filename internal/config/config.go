package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Default seek step in seconds for rewind/forward when no value
	// is given on the command line
	SeekStep float64

	// Poll interval for 'favorite --poll' (in seconds)
	PollInterval int

	// Spotify API credentials
	Spotify SpotifyConfig
}

// SpotifyConfig holds Spotify specific configuration
type SpotifyConfig struct {
	ClientID     string
	RefreshToken string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("seek_step", 1.0)
	v.SetDefault("poll_interval", 2)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("PLAYING")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		SeekStep:     v.GetFloat64("seek_step"),
		PollInterval: v.GetInt("poll_interval"),
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			RefreshToken: v.GetString("spotify.refresh_token"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "playing")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("seek_step", c.SeekStep)
	v.Set("poll_interval", c.PollInterval)
	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.refresh_token", c.Spotify.RefreshToken)

	// Write to file
	return v.WriteConfigAs(configFile)
}
