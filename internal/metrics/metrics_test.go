package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFile(t *testing.T) {
	m := New()

	m.RecordFile("WMA", 5000, false)
	m.RecordFile("WMA", 6000, true)
	m.RecordFile("WMV", 90000, false)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.filesScanned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.drmFiles))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.formats.WithLabelValues("WMA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.formats.WithLabelValues("WMV")))
}

func TestRecordError(t *testing.T) {
	m := New()

	m.RecordError(KindFormat)
	m.RecordError(KindFormat)
	m.RecordError(KindIO)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parseErrors.WithLabelValues(KindFormat)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseErrors.WithLabelValues(KindIO)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.parseErrors.WithLabelValues(KindUnsupported)))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordFile("WMA", 4096, true)
	m.SetScanDuration(1500 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "asfmeta.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "asfmeta_files_scanned_total 1")
	assert.Contains(t, out, "asfmeta_drm_files_total 1")
	assert.Contains(t, out, "asfmeta_scan_duration_seconds 1.5")
	assert.Contains(t, out, "asfmeta_header_bytes_count 1")
	assert.Contains(t, out, `asfmeta_files_by_format_total{format="WMA"} 1`)
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	assert.Error(t, New().WriteTextfile(""))
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.RecordFile("ASF", 30, false)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.filesScanned))
	assert.NotSame(t, a.Registry(), b.Registry())
}
