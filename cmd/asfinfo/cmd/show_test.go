package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/asfmeta"
	"github.com/simonhull/asfmeta/internal/asf/asftest"
	"github.com/simonhull/asfmeta/internal/config"
)

func allSections() config.Show {
	return config.Show{Info: true, Tags: true, Objects: true, Stream: true}
}

func TestPrintValues_Aligned(t *testing.T) {
	var buf bytes.Buffer
	printValues(&buf, asfmeta.Values{
		"a":    asfmeta.Text("x"),
		"long": asfmeta.Uint(1),
	})

	assert.Equal(t, "a:     x\nlong:  1\n", buf.String())
}

func TestRunShow(t *testing.T) {
	path := asftest.WriteFile(t, "song.wma", asftest.Sample())

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, path, showOptions{sections: allSections()}))

	out := buf.String()
	for _, section := range []string{"### Info ###", "### Tags ###", "### Objects ###", "### Stream ###"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "Title:")
	assert.Contains(t, out, "AlbumTitle:")
	assert.Contains(t, out, "playtime_seconds:")
	assert.Contains(t, out, "ASF_Header_Object: 75B22630-668E-11CF-A6D9-00AA0062CE6C")
	assert.Contains(t, out, "ASF_File_Properties_Object: 8CABDCA1-A947-11CF-8EE4-00C00C205365")
	assert.Contains(t, out, "audio_summary:")
	assert.NotContains(t, out, "DRM")
}

func TestRunShow_HeaderLineShowsCount(t *testing.T) {
	path := asftest.WriteFile(t, "song.wma", asftest.Sample())

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, path, showOptions{sections: config.Show{Objects: true}}))

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "ASF_Header_Object:") {
			assert.True(t, strings.HasSuffix(line, " 4"), "header line %q should end with the object count", line)
		}
	}
	assert.NotContains(t, buf.String(), "### Info ###")
}

func TestRunShow_DRM(t *testing.T) {
	path := asftest.WriteFile(t, "locked.wma", asftest.Header(asftest.Encryption()))

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, path, showOptions{sections: allSections()}))

	assert.True(t, strings.HasSuffix(buf.String(), "WARNING: This file has DRM protection\n"))
}

func TestRunShow_JSON(t *testing.T) {
	path := asftest.WriteFile(t, "song.wma", asftest.Sample())

	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, path, showOptions{sections: allSections(), json: true}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "WMA", decoded["format"])
	assert.Contains(t, decoded, "stream")
	assert.Contains(t, decoded, "objects")
}

func TestRunShow_Invalid(t *testing.T) {
	path := asftest.WriteFile(t, "bad.wma", bytes.Repeat([]byte{0x42}, 64))

	err := runShow(&bytes.Buffer{}, path, showOptions{sections: allSections()})
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	path := asftest.WriteFile(t, "song.wma", asftest.Sample())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "show", "--no-info", "--no-objects", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	// An explicit --config that does not exist is an error.
	require.Error(t, rootCmd.Execute())

	cfgPath := filepath.Join(t.TempDir(), "asfinfo.yaml")
	require.NoError(t, config.Save(config.DefaultConfig(), cfgPath))
	rootCmd.SetArgs([]string{"--config", cfgPath, "show", "--no-info", "--no-objects", path})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "### Tags ###")
	assert.NotContains(t, out, "### Info ###")
	assert.NotContains(t, out, "### Objects ###")
}
