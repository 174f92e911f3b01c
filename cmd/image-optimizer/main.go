package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/menta2k/image-optimizer/internal/cli"
	"github.com/menta2k/image-optimizer/internal/config"
	"github.com/menta2k/image-optimizer/internal/logging"
)

// Set during build time using -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "image-optimizer",
	Short: "Convert images under ./public to WebP, interactively.",
	Long: `image-optimizer scans the public/ directory below the current working
directory for images (jpg, jpeg, png, gif, svg), lets you pick a subset
interactively, and re-encodes the raster images to WebP at quality 80.

Converted files are written either into "<folder>_optimized" sibling
directories or beside the originals. Source files are never modified
or removed.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.NoArgs,
	// The logger owns all error output; cobra stays quiet.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			return err
		}
		log := logging.New(false)
		return cli.Run(ctx, cfg, log)
	},
}

func main() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
