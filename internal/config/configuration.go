package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
	"github.com/jbjulia/mccmnc/pkg/parser"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Source Store Server

type Configuration struct {
	Source    Source `mapstructure:"source" debugmap:"visible"`
	Store     Store  `mapstructure:"store" debugmap:"visible"`
	Server    Server `mapstructure:"server" debugmap:"visible"`
	LogFormat string `mapstructure:"log_format" debugmap:"visible" default:"console"`
	LogLevel  string `mapstructure:"log_level" debugmap:"visible" default:"info"`
}

type Source struct {
	URL        string        `mapstructure:"url" debugmap:"visible" default:"https://www.mcc-mnc.com/"`
	Format     string        `mapstructure:"format" debugmap:"visible" default:"html"`
	Timeout    time.Duration `mapstructure:"timeout" debugmap:"visible" default:"30s"`
	MaxRetries uint          `mapstructure:"max_retries" debugmap:"visible" default:"3"`
}

type Store struct {
	Path    string `mapstructure:"path" debugmap:"visible" default:"mccmnc.json"`
	RawPath string `mapstructure:"raw_path" debugmap:"visible"`
}

type Server struct {
	HTTPPort   int    `mapstructure:"http_port" debugmap:"visible" default:"8000"`
	ServerMode string `mapstructure:"mode" debugmap:"visible" default:"dev"`
}

var (
	logFormats  = []string{"console", "json"}
	serverModes = []string{"dev", "prod"}
)

func (c *Configuration) Validate() error {
	if !slices.Contains(parser.Formats(), strings.ToLower(c.Source.Format)) {
		return srvErrors.NewInvalidInputError("source.format", c.Source.Format, fmt.Sprintf("must be one of %s", strings.Join(parser.Formats(), ", ")))
	}

	u, err := url.Parse(c.Source.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return srvErrors.NewInvalidInputError("source.url", c.Source.URL, "must be an absolute http or https url")
	}

	if c.Source.Timeout <= 0 {
		return srvErrors.NewInvalidInputError("source.timeout", c.Source.Timeout.String(), "must be positive")
	}

	if strings.TrimSpace(c.Store.Path) == "" {
		return srvErrors.NewInvalidInputError("store.path", c.Store.Path, "must not be empty")
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewInvalidInputError("server.http_port", fmt.Sprint(c.Server.HTTPPort), "must be between 1 and 65535")
	}

	if !slices.Contains(serverModes, c.Server.ServerMode) {
		return srvErrors.NewInvalidInputError("server.mode", c.Server.ServerMode, fmt.Sprintf("must be one of %s", strings.Join(serverModes, ", ")))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewInvalidInputError("log_level", c.LogLevel, "unknown level")
	}

	if !slices.Contains(logFormats, c.LogFormat) {
		return srvErrors.NewInvalidInputError("log_format", c.LogFormat, fmt.Sprintf("must be one of %s", strings.Join(logFormats, ", ")))
	}

	return nil
}
