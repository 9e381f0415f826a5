package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ArowuTest/teamdesk-backend/internal/ladder"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Ladder   LadderConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
	Mode         string // gin mode: debug, release or test
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI            string
	Database       string
	TimeoutSeconds int
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// LadderConfig holds the ladder game tuning
type LadderConfig struct {
	RungsPerLine    int
	MinHeight       float64
	MaxHeight       float64
	MinGap          float64
	MaxParticipants int
	HistoryLimit    int
}

// BoardOptions converts the tuning into generator options
func (c LadderConfig) BoardOptions() []ladder.Option {
	return []ladder.Option{
		ladder.WithRungsPerLine(c.RungsPerLine),
		ladder.WithHeightRange(c.MinHeight, c.MaxHeight),
		ladder.WithMinGap(c.MinGap),
	}
}

// Load reads an optional .env file, then config.yaml from path or ./config, then
// the environment. Nested keys map to env names with "_", e.g. MONGODB_URI.
func Load(path string) (*Config, error) {
	envFile := GetEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && GetEnv("ENV_FILE", "") != "" {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if hosts := GetEnvAsSlice("SERVER_ALLOWEDHOSTS", ",", nil); hosts != nil {
		cfg.Server.AllowedHosts = hosts
	}
	return &cfg, nil
}

// Validate checks settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not configured")
	}
	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI is not configured")
	}
	if c.Ladder.MaxParticipants < 2 {
		return fmt.Errorf("ladder max participants must be at least 2, got %d", c.Ladder.MaxParticipants)
	}
	if err := ladder.ValidateOptions(c.Ladder.BoardOptions()...); err != nil {
		return fmt.Errorf("invalid ladder board settings: %w", err)
	}
	return nil
}

// setDefaults sets default values for configuration. Every key needs a default so
// that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "teamdesk")
	v.SetDefault("MongoDB.TimeoutSeconds", 10)
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.Issuer", "teamdesk")
	v.SetDefault("Ladder.RungsPerLine", ladder.DefaultRungsPerLine)
	v.SetDefault("Ladder.MinHeight", ladder.DefaultMinHeight)
	v.SetDefault("Ladder.MaxHeight", ladder.DefaultMaxHeight)
	v.SetDefault("Ladder.MinGap", ladder.DefaultMinGap)
	v.SetDefault("Ladder.MaxParticipants", 30)
	v.SetDefault("Ladder.HistoryLimit", 20)
	v.SetDefault("LogLevel", "info")
}
