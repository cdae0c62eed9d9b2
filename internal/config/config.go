package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile    string     `yaml:"log-file" env:"LOG_FILE"`
	Console    Console    `yaml:"console"`
	Redis      Redis      `yaml:"redis"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
}

type Console struct {
	NoColor bool `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Scoreboard struct {
	Enabled bool   `yaml:"enabled" env:"SCOREBOARD_ENABLED" env-default:"false"`
	Key     string `yaml:"key" env:"SCOREBOARD_KEY" env-default:"tictactoe:scoreboard"`
}

// MustLoad - load all configurations in the yaml file at path.
// A missing file falls back to environment variables and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// ColorEnabled reports whether the board may be colored. Any non-empty NO_COLOR disables it.
func (that *Console) ColorEnabled() bool {
	return !that.NoColor && os.Getenv("NO_COLOR") == ""
}
