// Package config defines the configuration of mccmnc.
//
// Configuration is organized into sections (Source, Store, Server) and uses
// code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Source         - registry location and fetch policy
//	├── Store          - where the JSON store lives
//	├── Server         - HTTP API settings (serve command)
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Source Configuration
//
//	┌──────────────┬────────────────────────────┬──────────────────────────────────┐
//	│ Field        │ Default                    │ Description                      │
//	├──────────────┼────────────────────────────┼──────────────────────────────────┤
//	│ URL          │ "https://www.mcc-mnc.com/" │ Registry url                     │
//	│ Format       │ "html"                     │ Payload format: html, csv, xlsx  │
//	│ Timeout      │ 30s                        │ Timeout of one request           │
//	│ MaxRetries   │ 3                          │ Retries of transient failures    │
//	└──────────────┴────────────────────────────┴──────────────────────────────────┘
//
// # Store Configuration
//
//	┌──────────┬───────────────┬──────────────────────────────────────────────┐
//	│ Field    │ Default       │ Description                                  │
//	├──────────┼───────────────┼──────────────────────────────────────────────┤
//	│ Path     │ "mccmnc.json" │ JSON store read by queries, written by update│
//	│ RawPath  │ ""            │ Copy of the downloaded payload, off if empty │
//	└──────────┴───────────────┴──────────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Sources
//
// Load merges, from lowest to highest precedence:
//
//  1. struct tag defaults (creasty/defaults)
//  2. the YAML file given with --config
//  3. MCCMNC_* environment variables (MCCMNC_SOURCE_URL, MCCMNC_STORE_PATH, ...)
//  4. command line flags set explicitly
//
// and then runs Validate, which reports an InvalidInputError naming the
// offending key.
//
// Example file:
//
//	source:
//	  url: https://www.mcc-mnc.com/
//	  format: html
//	  timeout: 10s
//	store:
//	  path: /var/lib/mccmnc/mccmnc.json
//	log_level: debug
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Source Store Server
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithSource(Source), WithStore(Store), etc. - Set nested structs
//   - NewSourceWithOptionsAndDefaults(WithFormat("csv")) - Build a section
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithSource(*config.NewSourceWithOptionsAndDefaults(
//	        config.WithFormat("csv"),
//	    )),
//	)
//	zap.S().Debugw("configuration", "config", cfg.DebugMap())
package config
