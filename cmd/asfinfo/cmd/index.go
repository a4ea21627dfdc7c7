package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/asfmeta/internal/catalog"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Query the scan index",
}

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer idx.Close()

		return listIndex(cmd.OutOrStdout(), idx)
	},
}

var indexGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the indexed record for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer idx.Close()

		return getIndex(cmd.OutOrStdout(), idx, args[0])
	},
}

var indexRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded scan runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer idx.Close()

		return listRuns(cmd.OutOrStdout(), idx)
	},
}

var indexDeleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Remove a file from the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer idx.Close()

		return deleteIndex(cmd.OutOrStdout(), idx, args[0])
	},
}

func openIndex(cmd *cobra.Command) (*catalog.Index, error) {
	path := cfg.IndexPath
	if cmd.Flags().Changed("index") {
		path, _ = cmd.Flags().GetString("index")
	}
	if path == "" {
		return nil, errors.New("no index path: set --index or index_path in the config file")
	}
	return catalog.Open(path)
}

func listIndex(w io.Writer, idx *catalog.Index) error {
	records, err := idx.List()
	if err != nil {
		return err
	}

	for _, r := range records {
		drm := ""
		if r.DRM {
			drm = " [DRM]"
		}
		fmt.Fprintf(w, "%s\t%s\t%ds\t%.1fkbps\t%s%s\n", r.Path, r.Format, r.Duration, r.Bitrate, r.Title, drm)
	}
	fmt.Fprintf(w, "%d files\n", len(records))
	return nil
}

func getIndex(w io.Writer, idx *catalog.Index, path string) error {
	r, err := lookup(idx, path)
	if err != nil {
		return err
	}
	return writeJSON(w, r)
}

func deleteIndex(w io.Writer, idx *catalog.Index, path string) error {
	r, err := lookup(idx, path)
	if err != nil {
		return err
	}
	if err := idx.Delete(r.Path); err != nil {
		return fmt.Errorf("delete %s: %w", r.Path, err)
	}
	fmt.Fprintf(w, "Deleted %s\n", r.Path)
	return nil
}

func listRuns(w io.Writer, idx *catalog.Index) error {
	runs, err := idx.Runs()
	if err != nil {
		return err
	}

	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d files\t%d failed\t%s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Root, r.Files, r.Errors, r.Elapsed.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "%d runs\n", len(runs))
	return nil
}

// lookup finds the record for path. Records are keyed by the path given to
// scan, so a miss is retried with the absolute form.
func lookup(idx *catalog.Index, path string) (catalog.Record, error) {
	r, err := idx.Get(path)
	if errors.Is(err, catalog.ErrNotFound) {
		if abs, absErr := filepath.Abs(path); absErr == nil && abs != path {
			r, err = idx.Get(abs)
		}
	}
	if err != nil {
		return catalog.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexListCmd, indexGetCmd, indexRunsCmd, indexDeleteCmd)

	indexCmd.PersistentFlags().String("index", "", "Path of the index database")
}
