package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTP     HTTP   `yaml:"http"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type HTTP struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env-default:"5s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// TTL - an unfinished game is dropped after this much inactivity.
	TTL time.Duration `yaml:"ttl" env:"GAME_TTL" env-default:"1h"`
	// Strategy - the computer player: "newell-simon" or "novice".
	Strategy string `yaml:"strategy" env:"GAME_STRATEGY" env-default:"newell-simon"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
