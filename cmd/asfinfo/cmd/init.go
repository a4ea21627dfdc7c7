package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonhull/asfmeta/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default asfinfo configuration to the --config path.

Examples:
	  asfinfo init
	  asfinfo init --config ./asfinfo.yaml --index ./index --force`,
	Args: cobra.NoArgs,
	// The config file may not exist yet, so skip loading it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")
		indexPath, _ := cmd.Flags().GetString("index")

		c := config.DefaultConfig()
		c.IndexPath = indexPath
		return runInit(cmd.OutOrStdout(), path, c, force)
	},
}

func runInit(w io.Writer, path string, c *config.Config, force bool) error {
	if config.Exists(path) && !force {
		return fmt.Errorf("config already exists at %s, use --force to overwrite", path)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := config.Save(c, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote config to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("index", "", "Index path to store in the config")
}
