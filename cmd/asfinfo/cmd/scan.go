package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/asfmeta"
	"github.com/simonhull/asfmeta/internal/catalog"
	"github.com/simonhull/asfmeta/internal/metrics"
)

// scanOptions configures a scan.
type scanOptions struct {
	indexPath   string
	metricsFile string
	jobs        int
}

// scanResult summarizes a finished scan.
type scanResult struct {
	run     catalog.Run
	records []catalog.Record
	failed  map[string]error
	drm     int
}

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Parse every ASF file under a directory",
	Long: `Walk a directory for .asf, .wma and .wmv files and parse their
headers concurrently. Results can be stored in an index and scan
statistics written as a Prometheus textfile.

Example:
  asfinfo scan ~/Music --index ~/.asfinfo/index --metrics-file /var/lib/node_exporter/asfmeta.prom`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := scanOptions{
			indexPath:   cfg.IndexPath,
			metricsFile: cfg.MetricsFile,
			jobs:        cfg.Jobs,
		}
		flags := cmd.Flags()
		if flags.Changed("index") {
			opts.indexPath, _ = flags.GetString("index")
		}
		if flags.Changed("metrics-file") {
			opts.metricsFile, _ = flags.GetString("metrics-file")
		}
		if flags.Changed("jobs") {
			opts.jobs, _ = flags.GetInt("jobs")
		}

		_, err := runScan(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		return err
	},
}

func runScan(ctx context.Context, w io.Writer, root string, opts scanOptions) (*scanResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := findASFFiles(root)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	res := &scanResult{
		run:    catalog.NewRun(root),
		failed: make(map[string]error),
	}
	started := time.Now()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))

	for _, path := range paths {
		g.Go(func() error {
			file, err := asfmeta.OpenContext(ctx, path, asfmeta.WithLogger(logger))

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("skipping file", "path", path, "error", err)
				m.RecordError(errorKind(err))
				res.failed[path] = err
				return nil
			}

			m.RecordFile(file.Format.String(), file.Root.Size, file.DRM)
			if file.DRM {
				res.drm++
			}
			res.records = append(res.records, newRecord(res.run, file))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(res.records, func(a, b catalog.Record) int {
		return strings.Compare(a.Path, b.Path)
	})

	res.run.Files = len(res.records)
	res.run.Errors = len(res.failed)
	res.run.Elapsed = time.Since(started)
	m.SetScanDuration(res.run.Elapsed)

	if opts.indexPath != "" {
		if err := storeResults(opts.indexPath, res); err != nil {
			return nil, err
		}
	}
	if opts.metricsFile != "" {
		if err := m.WriteTextfile(opts.metricsFile); err != nil {
			return nil, fmt.Errorf("write metrics: %w", err)
		}
	}

	fmt.Fprintf(w, "Scanned %d files in %s (%d failed, %d with DRM)\n",
		len(paths), res.run.Elapsed.Round(time.Millisecond), len(res.failed), res.drm)
	for _, path := range slices.Sorted(maps.Keys(res.failed)) {
		fmt.Fprintf(w, "  %s: %v\n", path, res.failed[path])
	}

	return res, nil
}

// findASFFiles returns the ASF files under root in lexical order.
func findASFFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && asfmeta.HasASFExtension(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

func newRecord(run catalog.Run, f *asfmeta.File) catalog.Record {
	bitrate, _ := f.Info["bitrate"].Float()
	title, _ := f.Tags["Title"].Text()
	author, _ := f.Tags["Author"].Text()

	return catalog.Record{
		ScanID:    run.ID,
		Path:      f.Path,
		Size:      f.Size,
		Format:    f.Format.String(),
		DRM:       f.DRM,
		Duration:  int64(f.Duration().Seconds()),
		Bitrate:   bitrate,
		Title:     title,
		Author:    author,
		Objects:   len(f.Objects),
		ScannedAt: time.Now().UTC(),
	}
}

func storeResults(indexPath string, res *scanResult) error {
	idx, err := catalog.Open(indexPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	if err := idx.PutBatch(res.records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}
	if err := idx.PutRun(res.run); err != nil {
		return fmt.Errorf("store run: %w", err)
	}
	return nil
}

func errorKind(err error) string {
	var unsupported *asfmeta.UnsupportedFormatError
	var unknown *asfmeta.UnknownTypeError
	switch {
	case errors.As(err, &unsupported), errors.As(err, &unknown):
		return metrics.KindUnsupported
	case errors.Is(err, asfmeta.ErrFormat):
		return metrics.KindFormat
	default:
		return metrics.KindIO
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("index", "", "Store results in the index at this path")
	scanCmd.Flags().String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	scanCmd.Flags().Int("jobs", 4, "Number of files parsed concurrently")
}
