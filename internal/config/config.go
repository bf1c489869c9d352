package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Uploads UploadsConfig
	Mail    MailConfig
	Demo    DemoConfig
	Env     string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// AdminConfig holds the bootstrap admin credentials used by cmd/createadmin
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// UploadsConfig holds image upload configuration
type UploadsConfig struct {
	Dir          string
	MaxSizeBytes int64
}

// MailConfig holds the mail gateway configuration
type MailConfig struct {
	BaseURL    string
	APIKey     string
	From       string
	AdminEmail string
	Mock       bool
}

// DemoConfig selects the in-memory store instead of MongoDB at startup
type DemoConfig struct {
	Enabled bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, environment variables take over
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "3001")
	viper.SetDefault("Server.AllowedHosts", []string{"http://localhost:3002"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "amz-properties")
	viper.SetDefault("JWT.ExpiresIn", 7*24*60*60) // 7 days
	viper.SetDefault("Admin.Name", "Admin User")
	viper.SetDefault("Admin.Email", "admin@amzproperties.com")
	viper.SetDefault("Uploads.Dir", "uploads")
	viper.SetDefault("Uploads.MaxSizeBytes", 5*1024*1024) // 5MB
	viper.SetDefault("Mail.From", "noreply@amzproperties.com")
	viper.SetDefault("Mail.AdminEmail", "admin@amzproperties.com")
	viper.SetDefault("Mail.Mock", true)
	viper.SetDefault("Demo.Enabled", false)
	viper.SetDefault("Env", "development")
}
