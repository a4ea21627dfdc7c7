// Package cmd implements the asfinfo command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/asfmeta/internal/config"
)

var (
	cfg    = config.DefaultConfig()
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asfinfo",
	Short: "Inspect ASF (WMA/WMV) file headers",
	Long: `asfinfo decodes the header of ASF files: file properties,
descriptive tags, the header object catalog and stream properties.

It can also scan directories into a local index and export scan
statistics for the Prometheus node exporter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		var err error
		if cmd.Flags().Changed("config") {
			cfg, err = config.Load(path)
		} else {
			cfg, err = config.LoadOrDefault(path)
		}
		if err != nil {
			return err
		}

		level := cfg.Level()
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every header object and decoded field")
}
