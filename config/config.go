package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. NUMBERGUESS_GAME_DEFAULT_BOUND.
const EnvPrefix = "NUMBERGUESS"

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Log     LogConfig     `mapstructure:"log"`
	Monitor MonitorConfig `mapstructure:"monitor"`
}

type GameConfig struct {
	DefaultBound int `mapstructure:"default_bound"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type MonitorConfig struct {
	Address   string `mapstructure:"address"`
	Namespace string `mapstructure:"namespace"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"bound":        "game.default_bound",
	"log-level":    "log.level",
	"metrics-addr": "monitor.address",
}

// NewFlagSet declares the command-line flags LoadConfig understands.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", ".", "directory holding config.yaml and .env")
	flags.Int("bound", 100, "upper limit of the guessing range")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address")
	return flags
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.default_bound", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("monitor.address", "")
	v.SetDefault("monitor.namespace", "numberguess")
}

// LoadConfig reads path/config.yaml, path/.env, the environment and flags,
// in increasing order of precedence. Missing files are not an error; flags
// may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Game.DefaultBound < 1 {
		return fmt.Errorf("game.default_bound must be at least 1, got %d", c.Game.DefaultBound)
	}
	if c.Monitor.Address != "" && c.Monitor.Namespace == "" {
		return errors.New("monitor.namespace is required when monitor.address is set")
	}
	return nil
}
