package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jbjulia/mccmnc/internal/config"
)

// globalOptions is filled by the root PersistentPreRunE before any
// subcommand runs.
type globalOptions struct {
	configFile string
	cfg        *config.Configuration
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	defaults := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:   "mccmnc",
		Short: "Look up mobile networks by MCC, MNC, PLMN or country code",
		Long: `mccmnc keeps a local table of mobile network operators built from a public
registry and answers lookups by Mobile Country Code (MCC), Mobile Network
Code (MNC), their concatenation (PLMN) or the country calling code (CC).

Run "mccmnc update" once to download the registry, then "mccmnc query".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(config.EnvPrefix),
			opts.load,
		),
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path of a YAML configuration file")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(
		newUpdateCommand(opts),
		newQueryCommand(opts),
		newServeCommand(opts, defaults),
		newVersionCommand(),
	)

	return cmd
}

func (o *globalOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	zap.S().Named("config").Debugw("configuration loaded", "config", cfg.DebugMap())
	o.cfg = cfg
	return nil
}

// newLogger builds the process logger. Logs always go to stderr so stdout
// carries command output only.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zc zap.Config
	if format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
