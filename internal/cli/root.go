// Package cli implements the recipecard command line using Cobra.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pageza/recipecard/config"
	"github.com/pageza/recipecard/internal/logging"
	"github.com/pageza/recipecard/internal/service"
)

var version = "dev"

var verbose bool

// newExtractService builds the service and reports the publisher domain it
// is restricted to. An empty publisher keeps the configured one. Tests swap it out.
var newExtractService = func(publisher string) (service.IExtractService, string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	if publisher != "" {
		cfg.PublisherDomain = strings.ToLower(strings.TrimSpace(publisher))
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, "", err
		}
	}

	level := cfg.LogLevel
	if verbose {
		level = zerolog.LevelDebugValue
	}
	logger, err := logging.New(os.Stderr, level, "console")
	if err != nil {
		return nil, "", err
	}
	return service.NewFromConfig(cfg, logger), cfg.PublisherDomain, nil
}

var rootCmd = &cobra.Command{
	Use:   "recipecard",
	Short: "Turn a publisher recipe page into a clean recipe card",
	Long: `recipecard fetches a recipe page from the configured publisher, pulls out
its schema.org Recipe JSON-LD and prints it as JSON or as a readable card.

Usage:
  recipecard extract <url> [flags]`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fetch details to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
