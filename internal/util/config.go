package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins     []string `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress  string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisServerAddress string   `mapstructure:"REDIS_SERVER_ADDRESS"`

	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseDatabaseURL     string `mapstructure:"FIREBASE_DATABASE_URL"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseCredentialsJSON string `mapstructure:"FIREBASE_CREDENTIALS_JSON"`

	RenderAPIURL     string        `mapstructure:"RENDER_API_URL"`
	RenderAPIUserID  string        `mapstructure:"RENDER_API_USER_ID"`
	RenderAPIKey     string        `mapstructure:"RENDER_API_KEY"`
	RenderAPITimeout time.Duration `mapstructure:"RENDER_API_TIMEOUT"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("REDIS_SERVER_ADDRESS", "localhost:6379")
	viper.SetDefault("RENDER_API_URL", "https://hcti.io/v1")
	viper.SetDefault("RENDER_API_TIMEOUT", "30s")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.FirebaseDatabaseURL == "" {
		return fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}
	if config.RenderAPIUserID == "" {
		return fmt.Errorf("RENDER_API_USER_ID is required")
	}
	if config.RenderAPIKey == "" {
		return fmt.Errorf("RENDER_API_KEY is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}

	return nil
}
