// Package config loads settings for the ntree command from defaults, an
// optional YAML file, NTREE_ environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrInvalidArity     = errors.New("config: tree arity must be at least 1")
	ErrInvalidIndent    = errors.New("config: render indent must be at least 1")
	ErrInvalidLogFormat = errors.New("config: log format must be text or json")
	ErrInvalidLogLevel  = errors.New("config: log level must be debug, info, warn or error")
)

const (
	configName      = ".ntree"
	configType      = "yaml"
	envPrefix       = "NTREE"
	envKeySeparator = "_"
)

const (
	DefaultArity     = 2
	DefaultLength    = 7
	DefaultIndent    = 4
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

type Config struct {
	Tree    TreeConfig    `mapstructure:"tree"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TreeConfig describes the tree of positions the commands work on.
type TreeConfig struct {
	Arity  uint64 `mapstructure:"arity"`
	Length uint64 `mapstructure:"length"`
}

type RenderConfig struct {
	Indent int `mapstructure:"indent"`
}

type LoggingConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

// FlagKeys maps command line flag names to configuration keys. Flags missing
// from the flag set passed to Load are ignored.
var FlagKeys = map[string]string{
	"arity":      "tree.arity",
	"len":        "tree.length",
	"indent":     "render.indent",
	"log-format": "logging.format",
	"log-level":  "logging.level",
}

// Load reads the configuration. If configPath is empty, .ntree.yaml is looked
// for in the working directory and then $HOME; a missing file is not an
// error. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("tree.arity", DefaultArity)
	viperCfg.SetDefault("tree.length", DefaultLength)
	viperCfg.SetDefault("render.indent", DefaultIndent)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
}

func (c *Config) Validate() error {
	if c.Tree.Arity == 0 {
		return ErrInvalidArity
	}
	if c.Render.Indent < 1 {
		return ErrInvalidIndent
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}
