package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

const (
	defaultStorage  = StorageJSON
	defaultDataFile = "data/books.json"
	defaultLogFile  = "logs/library.log"
	defaultLogValue = true
	defaultMaxConn  = "10"
	defaultEnvFile  = ".env"
)

var ErrUnknownStorage = errors.New("unknown storage")

type (
	Config struct {
		Storage struct {
			Kind     string `env:"LIBRARY_STORAGE"`
			DataFile string `env:"LIBRARY_DATA_FILE"`
		}

		PG struct {
			URL      string
			Host     string `env:"POSTGRES_HOST"`
			Port     string `env:"POSTGRES_PORT"`
			DB       string `env:"POSTGRES_DB"`
			User     string `env:"POSTGRES_USER"`
			Password string `env:"POSTGRES_PASSWORD"`
			MaxConn  string `env:"POSTGRES_MAX_CONN"`
		}

		Log struct {
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogRepo       bool   `env:"LOG_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
		}
	}
)

// NewConfig reads the configuration from the environment. Variables from
// an optional .env file in the working directory do not override ones
// already set.
func NewConfig() (*Config, error) {
	return newConfig(defaultEnvFile)
}

func newConfig(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.Storage.Kind, err = parseEnvString(v, "storage", "LIBRARY_STORAGE", defaultStorage); err != nil {
		return nil, err
	}

	if cfg.Storage.Kind != StorageJSON && cfg.Storage.Kind != StoragePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage.Kind)
	}

	if cfg.Storage.DataFile, err = parseEnvString(v, "data_file", "LIBRARY_DATA_FILE", defaultDataFile); err != nil {
		return nil, err
	}

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	cfg.PG.URL = fmt.Sprintf("postgres://%s:%s@", cfg.PG.User, cfg.PG.Password) +
		net.JoinHostPort(cfg.PG.Host, cfg.PG.Port) + fmt.Sprintf("/%s?sslmode=disable", cfg.PG.DB) + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogRepo, err = parseEnvBool(v, "log_repo", "LOG_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	cfg.Observability.MetricsPort = os.Getenv("METRICS_PORT")

	return cfg, nil
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("can not load %s: %w", path, err)
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
