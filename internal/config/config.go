// Package config loads the ecctl configuration from a YAML file, ECCTL_
// environment variables and command line flags, in increasing order of
// precedence.
package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
	"github.com/smallyu/go-weierstrass/internal/logging"
)

// EnvPrefix is prepended to every environment variable, so "log.level" is
// read from ECCTL_LOG_LEVEL.
const EnvPrefix = "ECCTL"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is the resolved ecctl configuration.
type Config struct {
	Curve   string           `mapstructure:"curve"`
	Hash    digest.Algorithm `mapstructure:"hash"`
	Workers int              `mapstructure:"workers"`
	Timeout time.Duration    `mapstructure:"timeout"`
	Output  string           `mapstructure:"output"`
	Log     Log              `mapstructure:"log"`
}

// Log holds the logging section.
type Log struct {
	Level string `mapstructure:"level"`
}

// New returns a viper instance with the defaults and environment binding
// in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("curve", curves.NameSecp256k1)
	v.SetDefault("hash", string(digest.Default))
	v.SetDefault("workers", 0)
	v.SetDefault("timeout", "0s")
	v.SetDefault("output", OutputText)
	v.SetDefault("log.level", logging.DefaultLevel)
	return v
}

// Load reads the optional config file at path into v and resolves the
// configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		algorithmHook,
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.Wrap(err, "error decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field of the configuration.
func (c *Config) Validate() error {
	if _, err := curves.ByName(c.Curve); err != nil {
		return errors.WithMessage(err, "invalid curve")
	}
	if _, err := digest.Parse(string(c.Hash)); err != nil {
		return errors.WithMessage(err, "invalid hash")
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return errors.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}
	if _, err := logging.NameToLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Params returns the curve named by the configuration.
func (c *Config) Params() (*curves.Params, error) {
	return curves.ByName(c.Curve)
}

var algorithmType = reflect.TypeOf(digest.Algorithm(""))

// algorithmHook canonicalizes hash names such as "SHA256" while decoding.
func algorithmHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != algorithmType {
		return data, nil
	}
	return digest.Parse(data.(string))
}
