package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ModeSelfPlay  = "selfplay"
	ModeSolve     = "solve"
	ModeTablebase = "tablebase"
	ModeLookup    = "lookup"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string  `yaml:"mode" env:"MODE" env-default:"selfplay"`
	Board    string  `yaml:"board" env:"BOARD" env-default:"........."`
	Search   Search  `yaml:"search"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
}

type Search struct {
	Opening string `yaml:"opening" env:"SEARCH_OPENING" env-default:"corner"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"minimax"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"minimax"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load reads the yaml file at path. Values from the environment, including an optional
// .env file next to the working directory, take precedence.
func Load(path, envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load env file: %w", err)
	}

	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path, envPath string) *Config {
	config, err := Load(path, envPath)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
