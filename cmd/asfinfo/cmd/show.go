package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonhull/asfmeta"
	"github.com/simonhull/asfmeta/internal/config"
)

// showOptions selects what show prints.
type showOptions struct {
	sections config.Show
	json     bool
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the header of an ASF file",
	Long: `Print the Info, Tags and Objects sections of an ASF file header,
and optionally its stream properties.

Example:
  asfinfo show song.wma
  asfinfo show --stream --no-objects clip.wmv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := showOptions{sections: cfg.Show}
		flags := cmd.Flags()

		if flags.Changed("no-info") {
			noInfo, _ := flags.GetBool("no-info")
			opts.sections.Info = !noInfo
		}
		if flags.Changed("no-tags") {
			noTags, _ := flags.GetBool("no-tags")
			opts.sections.Tags = !noTags
		}
		if flags.Changed("no-objects") {
			noObjects, _ := flags.GetBool("no-objects")
			opts.sections.Objects = !noObjects
		}
		if flags.Changed("stream") {
			opts.sections.Stream, _ = flags.GetBool("stream")
		}
		opts.json, _ = flags.GetBool("json")

		return runShow(cmd.OutOrStdout(), args[0], opts)
	},
}

func runShow(w io.Writer, path string, opts showOptions) error {
	file, err := asfmeta.Open(path, asfmeta.WithLogger(logger))
	if err != nil {
		return err
	}
	defer file.Close()

	for _, warning := range file.Warnings {
		logger.Warn("parse warning", "path", path, "warning", warning.String())
	}

	if opts.json {
		return showJSON(w, file, opts.sections.Stream)
	}

	if opts.sections.Info {
		printSection(w, "Info", func() { printValues(w, file.Info) })
	}
	if opts.sections.Tags {
		printSection(w, "Tags", func() { printValues(w, file.Tags) })
	}
	if opts.sections.Objects {
		printSection(w, "Objects", func() { printObjects(w, file) })
	}
	if opts.sections.Stream {
		stream, err := file.ParseStream()
		if err != nil && !errors.Is(err, asfmeta.ErrMissingObject) {
			return err
		}
		printSection(w, "Stream", func() {
			if stream != nil {
				printStream(w, stream)
			}
		})
	}

	if file.HasDRM() {
		fmt.Fprintln(w, "WARNING: This file has DRM protection")
	}

	return nil
}

func showJSON(w io.Writer, file *asfmeta.File, withStream bool) error {
	if withStream {
		if _, err := file.ParseStream(); err != nil && !errors.Is(err, asfmeta.ErrMissingObject) {
			return err
		}
	}
	return writeJSON(w, file)
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("no-info", false, "Skip file info output")
	showCmd.Flags().Bool("no-tags", false, "Skip tags output")
	showCmd.Flags().Bool("no-objects", false, "Skip objects output")
	showCmd.Flags().Bool("stream", false, "Parse and show stream info")
	showCmd.Flags().Bool("json", false, "Print the decoded header as JSON")
}
