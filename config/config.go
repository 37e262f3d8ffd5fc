package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBDriver   string
	DBPath     string
	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodingURL    string
	ForecastURL     string
	UpstreamTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-query-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "weather.db")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:     v.GetString("SERVICE_NAME"),
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		DBDriver:        v.GetString("DATABASE_DRIVER"),
		DBPath:          v.GetString("DATABASE_PATH"),
		DBName:          v.GetString("DATABASE_NAME"),
		DBPassword:      v.GetString("DATABASE_PASSWORD"),
		DBUser:          v.GetString("DATABASE_USER"),
		DBPort:          v.GetString("DATABASE_PORT"),
		DBHost:          v.GetString("DATABASE_HOST"),
		Env:             v.GetString("ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		HTTPTimeout:     v.GetInt32("HTTP_TIMEOUT"),
		GeocodingURL:    v.GetString("GEOCODING_URL"),
		ForecastURL:     v.GetString("FORECAST_URL"),
		UpstreamTimeout: v.GetDuration("UPSTREAM_TIMEOUT"),
	}

	switch config.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DBDriver)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// PostgresDSN is only meaningful when DBDriver is postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
