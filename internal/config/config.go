package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	Log LogConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level string
}

// Load reads the application config from an optional .env file and the environment.
// A missing .env file is not an error; any other read error is returned
// together with a config built from the environment and defaults.
func Load() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "lgh_sales")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8081")
	v.SetDefault("LOG_LEVEL", "info")

	readErr := v.ReadInConfig()
	if errors.Is(readErr, fs.ErrNotExist) {
		readErr = nil
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("APP_NAME"),
			Env:  v.GetString("APP_ENV"),
			Port: v.GetString("APP_PORT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
	return cfg, readErr
}
