package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".sortviz"
	configType = "yaml"
	envPrefix  = "SORTVIZ"
)

// LoadLayered merges defaults, an optional config file and SORTVIZ_*
// environment variables, in increasing priority. An empty path searches the
// working directory and then $HOME for .sortviz.yaml; a missing file there is
// not an error.
func LoadLayered(path string) (*Config, error) {
	return loadLayered(viper.New(), path)
}

func loadLayered(v *viper.Viper, path string) (*Config, error) {
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("algorithm", d.Algorithm)
	v.SetDefault("num_bars", d.NumBars)
	v.SetDefault("min_value", d.MinValue)
	v.SetDefault("max_value", d.MaxValue)
	v.SetDefault("speed", d.Speed)
	v.SetDefault("sort_order", string(d.SortOrder))
	v.SetDefault("seed", d.Seed)
}
