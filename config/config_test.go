package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-query-service/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("weather-query-service", conf.ServiceName)
	s.Equal("0.0.0.0:8000", conf.ServerAddress)
	s.Equal(config.DriverSQLite, conf.DBDriver)
	s.Equal("weather.db", conf.DBPath)
	s.Equal("https://geocoding-api.open-meteo.com/v1/search", conf.GeocodingURL)
	s.Equal("https://api.open-meteo.com/v1/forecast", conf.ForecastURL)
	s.Equal(10*time.Second, conf.UpstreamTimeout)
	s.Equal(175*time.Second, conf.HTTPTimeoutDuration())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("DATABASE_DRIVER", "postgres")
	s.T().Setenv("DATABASE_HOST", "db")
	s.T().Setenv("DATABASE_USER", "weather")
	s.T().Setenv("DATABASE_PASSWORD", "secret")
	s.T().Setenv("DATABASE_NAME", "queries")
	s.T().Setenv("UPSTREAM_TIMEOUT", "3s")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal(config.DriverPostgres, conf.DBDriver)
	s.Equal(3*time.Second, conf.UpstreamTimeout)
	s.Equal("host=db port=5432 user=weather password=secret dbname=queries sslmode=disable", conf.PostgresDSN())
}

func (s *ConfigTestSuite) TestUnsupportedDriver() {
	s.T().Setenv("DATABASE_DRIVER", "mysql")

	conf, err := config.LoadConfig()
	s.Error(err)
	s.Nil(conf)
	s.Contains(err.Error(), "unsupported DATABASE_DRIVER")
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
