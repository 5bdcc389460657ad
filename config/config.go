package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Datasets DatasetsConfig `mapstructure:"datasets"`
	Random   RandomConfig   `mapstructure:"random"`
	Log      LogConfig      `mapstructure:"log"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"` // directory the dataset files are written to
}

type DatasetsConfig struct {
	Sizes []int `mapstructure:"sizes"` // one batch is generated per size
}

type RandomConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 means derive from wall clock
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LUHNSYNTH.
// Nested keys use underscore: LUHNSYNTH_OUTPUT_DIR, LUHNSYNTH_RANDOM_SEED, etc.
// With no file and no env vars the defaults reproduce the stock invocation:
// datasets of 100, 250, and 500 records written to the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("datasets.sizes", []int{100, 250, 500})
	v.SetDefault("random.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LUHNSYNTH_OUTPUT_DIR -> output.dir
	v.SetEnvPrefix("LUHNSYNTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional — defaults and env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Datasets.Sizes) == 0 {
		return fmt.Errorf("datasets.sizes must name at least one dataset size")
	}
	for _, n := range c.Datasets.Sizes {
		if n < 0 {
			return fmt.Errorf("datasets.sizes contains negative size %d", n)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	return nil
}
