package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN renders the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type KafkaConfig struct {
	BrokerList       string `mapstructure:"broker_list"`
	Topic            string `mapstructure:"topic"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`
}

type S3Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Region  string `mapstructure:"region"`
	Bucket  string `mapstructure:"bucket"`
}

type Config struct {
	UserID         string         `mapstructure:"user_id"`
	Currency       string         `mapstructure:"currency"`
	Locale         string         `mapstructure:"locale"`
	CacheDir       string         `mapstructure:"cache_dir"`
	ExportFolder   string         `mapstructure:"export_folder"`
	EventLog       string         `mapstructure:"event_log"` // console | file | kafka
	EventLogPath   string         `mapstructure:"event_log_path"`
	RemoteEnabled  bool           `mapstructure:"remote_enabled"`
	Database       DatabaseConfig `mapstructure:"database"`
	Kafka          KafkaConfig    `mapstructure:"kafka"`
	S3             S3Config       `mapstructure:"s3"`
	GatewayURL     string         `mapstructure:"gateway_url"`
	GatewayTimeout time.Duration  `mapstructure:"gateway_timeout"`

	// Default budget caps applied before the user configures their own.
	DefaultDailyCap   float64 `mapstructure:"default_daily_cap"`
	DefaultWeeklyCap  float64 `mapstructure:"default_weekly_cap"`
	DefaultMonthlyCap float64 `mapstructure:"default_monthly_cap"`

	// Catalog seeding.
	Seed               int `mapstructure:"seed"`
	InitialRestaurants int `mapstructure:"initial_restaurants"`
	ItemsPerRestaurant int `mapstructure:"items_per_restaurant"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config locations
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".bhukkad")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("user_id", "local")
	viper.SetDefault("currency", "INR")
	viper.SetDefault("cache_dir", ".bhukkad")
	viper.SetDefault("export_folder", "exports")
	viper.SetDefault("event_log", "console")
	viper.SetDefault("gateway_timeout", "15s")
	viper.SetDefault("default_daily_cap", 500.0)
	viper.SetDefault("default_weekly_cap", 3000.0)
	viper.SetDefault("default_monthly_cap", 10000.0)
	viper.SetDefault("initial_restaurants", 25)
	viper.SetDefault("items_per_restaurant", 8)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine when nothing was named
		// explicitly; flags, env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// BudgetDefaults returns the configured fallback caps as a BudgetConfig.
func (cfg *Config) BudgetDefaults() BudgetConfig {
	return BudgetConfig{
		UserID:  cfg.UserID,
		Daily:   cfg.DefaultDailyCap,
		Weekly:  cfg.DefaultWeeklyCap,
		Monthly: cfg.DefaultMonthlyCap,
	}
}
