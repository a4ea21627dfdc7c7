package asfmeta_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/simonhull/asfmeta"
	"github.com/simonhull/asfmeta/internal/asf/asftest"
)

func TestOpen_Sample(t *testing.T) {
	path := asftest.WriteFile(t, "sample.wma", asftest.Sample())

	file, err := asfmeta.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer file.Close()

	if file.Format != asfmeta.FormatWMA {
		t.Errorf("Format = %v, want WMA", file.Format)
	}
	if file.Path != path {
		t.Errorf("Path = %q, want %q", file.Path, path)
	}
	if !file.HasTag("Title") || !file.HasTag("AlbumTitle") {
		t.Errorf("missing tags: %v", file.Tags.Keys())
	}
	if !file.HasInfo("playtime_seconds") {
		t.Error("missing playtime_seconds")
	}
	if file.Duration() != 212*time.Second {
		t.Errorf("Duration() = %v, want 3m32s", file.Duration())
	}
	if file.HasDRM() {
		t.Error("HasDRM() = true")
	}
	if file.Root == nil || file.Root.ObjectCount != 4 {
		t.Errorf("Root = %+v", file.Root)
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := asfmeta.Open("/nonexistent/path.wma")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestOpen_NotASF(t *testing.T) {
	path := asftest.WriteFile(t, "test.xyz", []byte("not a valid ASF file, just some text bytes"))

	_, err := asfmeta.Open(path)
	if !errors.Is(err, asfmeta.ErrFormat) {
		t.Fatalf("Open() error = %v, want ErrFormat", err)
	}
	var ferr *asfmeta.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestOpenBytes_NotASF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"foreign bytes", bytes.Repeat([]byte{0xAB}, 64)},
		{"shorter than preamble", []byte{0x30, 0x26}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := asfmeta.OpenBytes(tt.data)
			if file != nil {
				t.Errorf("OpenBytes() returned a file for invalid input")
			}
			var ferr *asfmeta.FormatError
			if !errors.As(err, &ferr) || !errors.Is(err, asfmeta.ErrFormat) {
				t.Errorf("OpenBytes() error = %v (%T), want *FormatError", err, err)
			}
		})
	}
}

func TestOpenBytes_Truncated(t *testing.T) {
	data := asftest.Sample()

	_, err := asfmeta.OpenBytes(data[:len(data)-10])
	if !errors.Is(err, asfmeta.ErrFormat) {
		t.Fatalf("OpenBytes() error = %v, want ErrFormat", err)
	}
	var ferr *asfmeta.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}

func TestOpenBytes_BoundsErrorWrapped(t *testing.T) {
	data := asftest.HeaderWithCount(2, asftest.ContentDescription("x", "", "", "", ""))

	_, err := asfmeta.OpenBytes(data)
	var ferr *asfmeta.FormatError
	var berr *asfmeta.OutOfBoundsError
	if !errors.As(err, &ferr) || !errors.As(err, &berr) {
		t.Fatalf("error = %v, want FormatError wrapping OutOfBoundsError", err)
	}
}

func TestHasTag_EmptyString(t *testing.T) {
	data := asftest.Header(asftest.ExtendedContentDescription(
		asftest.Text("WM/Genre", ""),
		asftest.DWORD("WM/TrackNumber", 0),
	))

	file, err := asfmeta.OpenBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if file.HasTag("Genre") {
		t.Error("HasTag(Genre) = true for empty string")
	}
	if !file.HasTag("TrackNumber") {
		t.Error("HasTag(TrackNumber) = false for zero integer")
	}
	if file.HasTag("Missing") || file.HasInfo("Missing") {
		t.Error("absent key reported present")
	}
}

func TestHasDRM(t *testing.T) {
	data := asftest.Header(asftest.ContentDescription("Locked", "", "", "", ""), asftest.Encryption())

	file, err := asfmeta.OpenBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if !file.HasDRM() {
		t.Error("HasDRM() = false")
	}
	if got, _ := file.Tags["Title"].Text(); got != "Locked" {
		t.Errorf("Title = %q", got)
	}
	if len(file.Info) != 0 {
		t.Errorf("encryption object changed Info: %v", file.Info)
	}
}

func TestParseStream(t *testing.T) {
	file, err := asfmeta.OpenBytes(asftest.Sample())
	if err != nil {
		t.Fatal(err)
	}

	stream, err := file.ParseStream()
	if err != nil {
		t.Fatalf("ParseStream() error = %v", err)
	}
	if stream.Audio == nil {
		t.Fatal("Audio = nil")
	}
	if got := stream.Audio.String(); got != "44.1kHz 16-bit stereo 128kbps" {
		t.Errorf("Audio.String() = %q", got)
	}
	if file.Stream != stream {
		t.Error("Stream not stored on File")
	}
}

func TestParseStream_Missing(t *testing.T) {
	file, err := asfmeta.OpenBytes(asftest.Header())
	if err != nil {
		t.Fatal(err)
	}

	stream, err := file.ParseStream()
	if !errors.Is(err, asfmeta.ErrMissingObject) {
		t.Fatalf("ParseStream() error = %v, want ErrMissingObject", err)
	}
	if stream != nil || file.Stream != nil {
		t.Error("ParseStream returned a stream for a header without one")
	}
	if file.Format != asfmeta.FormatASF {
		t.Errorf("Format = %v, want ASF", file.Format)
	}
}

func TestObjectsByOffset(t *testing.T) {
	file, err := asfmeta.OpenBytes(asftest.Sample())
	if err != nil {
		t.Fatal(err)
	}

	objs := file.ObjectsByOffset()
	if len(objs) != 5 {
		t.Fatalf("len = %d, want 5", len(objs))
	}
	if objs[0].Name != "ASF_Header_Object" || objs[0].Offset != 0 {
		t.Errorf("first = %+v, want the header object at 0", objs[0])
	}
	for i := 1; i < len(objs); i++ {
		if objs[i].Offset <= objs[i-1].Offset {
			t.Errorf("objects not sorted: %d after %d", objs[i].Offset, objs[i-1].Offset)
		}
	}

	if _, ok := file.Object("ASF_File_Properties_Object"); !ok {
		t.Error("Object(file properties) not found")
	}
}

func TestOptions(t *testing.T) {
	unknown := asftest.ObjectGUID(asftest.UnknownGUID(7), make([]byte, 8))
	data := asftest.Header(unknown)

	file, err := asfmeta.OpenBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Warnings) != 1 {
		t.Errorf("len(Warnings) = %d, want 1", len(file.Warnings))
	}

	if _, err := asfmeta.OpenBytes(data, asfmeta.WithStrictParsing()); err == nil {
		t.Error("WithStrictParsing: expected error")
	}

	file, err = asfmeta.OpenBytes(data, asfmeta.WithIgnoreWarnings())
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("WithIgnoreWarnings: got %d warnings", len(file.Warnings))
	}

	if _, err := asfmeta.OpenBytes(asftest.Sample(), asfmeta.WithMaxHeaderSize(100)); !errors.Is(err, asfmeta.ErrFormat) {
		t.Errorf("WithMaxHeaderSize: error = %v, want ErrFormat", err)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := asfmeta.OpenBytes(asftest.Sample(), asfmeta.WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ASF_File_Properties_Object") {
		t.Errorf("log output missing object trace:\n%s", buf.String())
	}
}

func TestFile_JSON(t *testing.T) {
	file, err := asfmeta.OpenBytes(asftest.Sample())
	if err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var decoded struct {
		Format string         `json:"format"`
		Tags   map[string]any `json:"tags"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Format != "WMA" {
		t.Errorf("format = %q, want WMA", decoded.Format)
	}
	if decoded.Tags["Title"] != "Song" {
		t.Errorf("tags.Title = %v", decoded.Tags["Title"])
	}
}

func TestObjectName(t *testing.T) {
	g, ok := asfmeta.ObjectGUID("ASF_Header_Object")
	if !ok {
		t.Fatal("ObjectGUID failed")
	}
	if g.String() != "75B22630-668E-11CF-A6D9-00AA0062CE6C" {
		t.Errorf("GUID = %s", g)
	}
	name, ok := asfmeta.ObjectName(g)
	if !ok || name != "ASF_Header_Object" {
		t.Errorf("ObjectName = %q, %v", name, ok)
	}
}
