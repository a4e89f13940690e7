package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "MCCMNC"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"source-url":         "source.url",
	"source-format":      "source.format",
	"source-timeout":     "source.timeout",
	"source-max-retries": "source.max_retries",
	"store-path":         "store.path",
	"raw-path":           "store.raw_path",
	"http-port":          "server.http_port",
	"server-mode":        "server.mode",
	"log-level":          "log_level",
	"log-format":         "log_format",
}

// RegisterFlags adds the configuration flags to fs, using the defaults of cfg.
func RegisterFlags(fs *pflag.FlagSet, cfg *Configuration) {
	fs.String("source-url", cfg.Source.URL, "registry url")
	fs.String("source-format", cfg.Source.Format, "registry payload format: html, csv or xlsx")
	fs.Duration("source-timeout", cfg.Source.Timeout, "timeout of a single registry request")
	fs.Uint("source-max-retries", cfg.Source.MaxRetries, "retries of a transient registry failure")
	fs.String("store-path", cfg.Store.Path, "path of the JSON store")
	fs.String("raw-path", cfg.Store.RawPath, "keep the downloaded payload at this path")
	fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", cfg.LogFormat, "log format: console or json")
}

// RegisterServerFlags adds the flags of the serve command.
func RegisterServerFlags(fs *pflag.FlagSet, cfg *Configuration) {
	fs.Int("http-port", cfg.Server.HTTPPort, "port of the HTTP API")
	fs.String("server-mode", cfg.Server.ServerMode, "server mode: dev or prod")
}

// Load builds the configuration from defaults, the optional YAML file at
// path, MCCMNC_* environment variables and the flags in fs, the latter
// winning. The result is validated.
func Load(path string, fs *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := NewConfigurationWithOptionsAndDefaults()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if fs != nil {
		for flag, key := range flagKeys {
			f := fs.Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so environment variables are picked up by
// Unmarshal even when the key appears nowhere else.
func setDefaults(v *viper.Viper, cfg *Configuration) {
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.format", cfg.Source.Format)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.max_retries", cfg.Source.MaxRetries)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.raw_path", cfg.Store.RawPath)
	v.SetDefault("server.http_port", cfg.Server.HTTPPort)
	v.SetDefault("server.mode", cfg.Server.ServerMode)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
}
