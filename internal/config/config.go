package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Steps    StepsConfig    `mapstructure:"steps"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects the persistence backend. The driver is chosen once
// at process start; no component branches on it afterwards.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "mongo" or "memory"
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// ScoringConfig carries the planned daily totals the progress scorer
// measures completion against.
type ScoringConfig struct {
	MaxExercises int `mapstructure:"max_exercises"`
	MaxMeals     int `mapstructure:"max_meals"`
}

type StepsConfig struct {
	DailyTarget int `mapstructure:"daily_target"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values,
	// e.g. server.address -> SERVER_ADDRESS, scoring.max_meals -> SCORING_MAX_MEALS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", "mongo")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "coaching_app")
	viper.SetDefault("scoring.max_exercises", 5)
	viper.SetDefault("scoring.max_meals", 3)
	viper.SetDefault("steps.daily_target", 3000)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
