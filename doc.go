// Package asfmeta reads the header metadata of ASF files (WMA, WMV, ASF).
//
// An ASF file starts with a header object that carries file properties,
// descriptive tags, encryption markers and stream descriptions. asfmeta
// decodes that header without touching the audio or video payload.
//
// # Quick Start
//
// Reading metadata from a file:
//
//	file, err := asfmeta.Open("song.wma")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Println(file.Tags["Title"], file.Tags["Author"])
//	fmt.Println("playtime:", file.Info["playtime_seconds"])
//
// # Info and Tags
//
// Decoded fields land in two maps of tagged values. Info holds technical
// properties (file size, durations, bitrate, encoder attributes) and Tags
// holds descriptive metadata (title, author, album, genre, track number).
// Extended attributes have their "WM/" prefix removed, so WM/AlbumTitle is
// found under Tags["AlbumTitle"].
//
//	for key, value := range file.Tags.All() {
//		fmt.Printf("%s: %s\n", key, value)
//	}
//
// HasTag and HasInfo treat an empty string like a missing key.
//
// # Object Catalog
//
// Every header sub-object is recorded by name with its GUID, size and
// absolute offset. Unknown GUIDs are cataloged as "Unknown" and skipped.
//
//	for _, obj := range file.ObjectsByOffset() {
//		fmt.Printf("%s at %d (%d bytes)\n", obj.Name, obj.Offset, obj.Size)
//	}
//
// # Streams
//
// Stream properties are decoded on demand:
//
//	stream, err := file.ParseStream()
//	if errors.Is(err, asfmeta.ErrMissingObject) {
//		// header has no stream description
//	}
//	if stream.Audio != nil {
//		fmt.Println(stream.Audio) // 44.1kHz 16-bit stereo 128kbps
//	}
//
// # Error Handling
//
// Structural problems abort the parse with a *FormatError carrying the
// file path and offset; no partial result is returned. Malformed UTF-16
// text is not fatal: it decodes to the valid characters and adds a
// Warning.
//
// # Logging
//
// asfmeta is silent by default. Pass WithLogger to receive debug records
// for every object and decoded field:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	file, err := asfmeta.Open("song.wma", asfmeta.WithLogger(logger))
//
// # Concurrency
//
// A File is immutable after Open and safe for concurrent reads. OpenMany
// parses several files in parallel.
package asfmeta
