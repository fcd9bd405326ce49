package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

type Game struct {
	Mode    string        `yaml:"mode" env:"GAME_MODE" env-default:"ai-hard"`
	AIMark  string        `yaml:"ai-mark" env:"GAME_AI_MARK" env-default:"O"`
	AIDelay time.Duration `yaml:"ai-delay" env:"GAME_AI_DELAY" env-default:"0s"`
	Seed    int64         `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path; when there is no such file only the
// environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
