package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rolematch/internal/app"
	"rolematch/internal/config"
	"rolematch/internal/logging"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	verbose    bool
	configFile string
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "rolematch",
	Short: "Normalize job titles and spreadsheet headers",
	Long: `rolematch resolves free-text job titles to canonical roles using the learned
mapping library and the curated taxonomy, maps spreadsheet headers onto
canonical fields, and imports CSV tables.

Set DATABASE_URL to use the Postgres stores. Without it matching runs on the
built-in taxonomy in memory, and commands that write to the mapping library
refuse to run.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default is $CONFIG_FILE or config.yaml)")
}

// loadApp builds the service from the environment and the YAML config file.
func loadApp(ctx context.Context) (*app.App, error) {
	cfg := config.Load()
	level := "warn"
	if verbose {
		level = "debug"
	}
	logging.Init(cfg.LogFormat, level)

	var yamlCfg *config.YAMLConfig
	var err error
	if configFile != "" {
		yamlCfg, err = config.LoadYAMLConfigFile(configFile)
	} else {
		yamlCfg, err = config.LoadYAMLConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return app.New(ctx, cfg, yamlCfg)
}

// errNoDatabase rejects writes that would only reach the in-memory library,
// which is discarded when the command exits.
var errNoDatabase = errors.New("DATABASE_URL is not set, so the mapping library would be discarded on exit")

// loadWritableApp is loadApp for commands that write to the mapping library.
func loadWritableApp(ctx context.Context) (*app.App, error) {
	svc, err := loadApp(ctx)
	if err != nil {
		return nil, err
	}
	if !svc.UsesDatabase() {
		svc.Close()
		return nil, errNoDatabase
	}
	return svc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
