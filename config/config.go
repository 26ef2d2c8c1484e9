package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	BodyLimit             int
	LogLevel              string
	LogFormat             string
}

// Load reads the scheduler configuration. With an empty path it looks for
// config.yaml in the working directory and falls back to defaults when none
// exists. Environment variables prefixed with SCHEDSIM_ override file values,
// e.g. SCHEDSIM_PORT or SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		BodyLimit:             v.GetInt("server.body_limit"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", config.RoundRobinTimeQuantum)
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", config.Port)
	}
	return config, nil
}

// Address is the listen address of the HTTP API.
func (c *SchedulerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
