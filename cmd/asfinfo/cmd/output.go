package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/asfmeta"
)

// printSection writes a "### name ###" banner, the body and a blank line.
func printSection(w io.Writer, name string, body func()) {
	fmt.Fprintf(w, "### %s ###\n\n", name)
	body()
	fmt.Fprintln(w)
}

// printValues writes one "key:  value" line per entry with the values
// aligned two spaces past the longest key.
func printValues(w io.Writer, vs asfmeta.Values) {
	width := 0
	for key := range vs {
		width = max(width, len(key))
	}

	for key, value := range vs.All() {
		fmt.Fprintf(w, "%s:%s%s\n", key, strings.Repeat(" ", width-len(key)+2), value)
	}
}

// printObjects writes the catalog in file order. The header object shows
// its object count where the others show their offset.
func printObjects(w io.Writer, f *asfmeta.File) {
	for _, obj := range f.ObjectsByOffset() {
		if f.Root != nil && obj.Offset == 0 && obj.Name == f.Root.Name {
			fmt.Fprintf(w, "%s: %s %d %d\n", obj.Name, obj.ID, obj.Size, f.Root.ObjectCount)
			continue
		}
		fmt.Fprintf(w, "%s: %s %d %d\n", obj.Name, obj.ID, obj.Size, obj.Offset)
	}
}

// printStream writes the decoded stream properties.
func printStream(w io.Writer, s *asfmeta.StreamInfo) {
	vs := asfmeta.Values{
		"stream_type":        asfmeta.Text(s.TypeName),
		"stream_type_guid":   asfmeta.Text(s.TypeID.String()),
		"error_correct_type": asfmeta.Text(s.ErrorCorrectionName),
		"error_correct_guid": asfmeta.Text(s.ErrorCorrectionID.String()),
		"time_offset":        asfmeta.Uint(s.TimeOffset),
		"type_data_length":   asfmeta.Uint(uint64(s.TypeDataLength)),
		"error_data_length":  asfmeta.Uint(uint64(s.ErrorDataLength)),
		"stream_number":      asfmeta.Uint(uint64(s.StreamNumber)),
		"encrypted":          asfmeta.Bool(s.Encrypted),
	}
	if a := s.Audio; a != nil {
		vs["audio_codec_id"] = asfmeta.Uint(uint64(a.CodecID))
		vs["audio_channels"] = asfmeta.Uint(uint64(a.Channels))
		vs["audio_sample_rate"] = asfmeta.Uint(uint64(a.SampleRate))
		vs["audio_bitrate"] = asfmeta.Uint(a.Bitrate)
		vs["audio_block_align"] = asfmeta.Uint(uint64(a.BlockAlign))
		vs["audio_bits_per_sample"] = asfmeta.Uint(uint64(a.BitsPerSample))
		vs["audio_summary"] = asfmeta.Text(a.String())
	}
	printValues(w, vs)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
