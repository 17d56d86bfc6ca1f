package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the service configuration, read from the environment
type Config struct {
	HTTPAddr   string `env:"TOOLBOX_HTTP_ADDR" env-default:":8080"`
	DBPath     string `env:"TOOLBOX_DB_PATH" env-default:"toolbox.db"`
	OutputDir  string `env:"TOOLBOX_OUTPUT_DIR" env-default:"outputs"`
	JobTimeout string `env:"TOOLBOX_JOB_TIMEOUT" env-default:"5m"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
