package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// headerExtensionPreamble is the reserved GUID, reserved WORD and data
// size that precede the objects nested in a Header Extension object.
const headerExtensionPreamble = 16 + 2 + 4

// Lists every object in an ASF file, including the ones nested in the
// header, to check what the parser actually sees.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: asf-dump <file.wma>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	sr := binary.NewSafeReader(f, stat.Size(), os.Args[1])
	if err := dumpObjects(os.Stdout, sr, 0, stat.Size(), 0); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dumpObjects(w io.Writer, sr *binary.SafeReader, offset, end int64, depth int) error {
	indent := strings.Repeat("  ", depth)

	for offset+types.ObjectHeaderSize <= end {
		id, err := sr.ReadGUID(offset, "object GUID")
		if err != nil {
			return err
		}
		size, err := binary.ReadLE[uint64](sr, offset+types.GUIDSize, "object size")
		if err != nil {
			return err
		}

		name := registry.NameOrUnknown(id)
		fmt.Fprintf(w, "%s%s %s (size: %d, offset: %d)\n", indent, name, id, size, offset)

		if size < types.ObjectHeaderSize || size > uint64(end-offset) {
			return fmt.Errorf("%s at offset %d has invalid size %d", name, offset, size)
		}
		next := offset + int64(size)

		switch name {
		case registry.HeaderObject:
			if err := dumpObjects(w, sr, offset+types.RootHeaderSize, next, depth+1); err != nil {
				return err
			}
		case registry.HeaderExtension:
			start := offset + types.ObjectHeaderSize + headerExtensionPreamble
			if err := dumpObjects(w, sr, start, next, depth+1); err != nil {
				return err
			}
		}

		offset = next
	}

	return nil
}
