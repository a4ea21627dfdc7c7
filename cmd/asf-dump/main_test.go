package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/simonhull/asfmeta/internal/asf/asftest"
	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
)

func TestDumpObjects(t *testing.T) {
	header := asftest.Sample()
	data := append(header, asftest.Object(registry.Data, make([]byte, 26))...)

	var out bytes.Buffer
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.wma")
	if err := dumpObjects(&out, sr, 0, int64(len(data)), 0); err != nil {
		t.Fatalf("dumpObjects() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "ASF_Header_Object ") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ASF_File_Properties_Object ") || !strings.Contains(lines[1], "offset: 30") {
		t.Errorf("second line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[5], "ASF_Data_Object ") {
		t.Errorf("last line = %q", lines[5])
	}
}

func TestDumpObjects_BadSize(t *testing.T) {
	data := asftest.Header(asftest.ObjectSized(registry.MustLookup(registry.Padding), 4000, nil))

	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "bad.wma")
	if err := dumpObjects(&bytes.Buffer{}, sr, 0, int64(len(data)), 0); err == nil {
		t.Fatal("expected error for oversized object")
	}
}

func TestDumpObjects_SizeOverflow(t *testing.T) {
	padding := registry.MustLookup(registry.Padding)
	data := slices.Concat(
		asftest.ObjectSized(padding, 24, nil),
		asftest.ObjectSized(padding, 0xFFFFFFFFFFFFFFE8, nil),
	)

	done := make(chan error, 1)
	go func() {
		sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "overflow.wma")
		done <- dumpObjects(&bytes.Buffer{}, sr, 0, int64(len(data)), 0)
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error for object size past the end of the file")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dumpObjects did not return")
	}
}
