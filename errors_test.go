package asfmeta

import (
	"errors"
	"strings"
	"testing"
)

func TestOutOfBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OutOfBoundsError
		contains []string
	}{
		{
			name: "offset beyond file size",
			err: &OutOfBoundsError{
				Path:   "test.wma",
				Offset: 1000,
				Length: 16,
				Size:   500,
				What:   "header object GUID",
			},
			contains: []string{"test.wma", "offset 1000", "500", "header object GUID"},
		},
		{
			name: "read would exceed file size",
			err: &OutOfBoundsError{
				Path:   "clip.wmv",
				Offset: 100,
				Length: 50,
				Size:   120,
				What:   "descriptor value",
			},
			contains: []string{"clip.wmv", "50 bytes", "offset 100", "120", "descriptor value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "test.mp3",
		Reason: "missing ASF header object",
	}

	msg := err.Error()
	if !strings.Contains(msg, "test.mp3") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "missing ASF header object") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}

func TestFormatError_Wrapping(t *testing.T) {
	inner := &OutOfBoundsError{Path: "a.wma", What: "object size", Offset: 46, Length: 8, Size: 50}
	err := &FormatError{Path: "a.wma", Offset: 30, Reason: "cannot decode object 1 of 1", Err: inner}

	msg := err.Error()
	for _, want := range []string{"a.wma", "offset 30", "cannot decode object 1 of 1", "object size"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}

	if !errors.Is(err, ErrFormat) {
		t.Error("errors.Is(err, ErrFormat) = false")
	}
	var berr *OutOfBoundsError
	if !errors.As(err, &berr) || berr != inner {
		t.Error("errors.As did not find the bounds error")
	}
}

func TestMissingObjectError_Error(t *testing.T) {
	err := &MissingObjectError{Name: "ASF_Stream_Properties_Object"}

	if got := err.Error(); got != "no ASF_Stream_Properties_Object found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrMissingObject) {
		t.Error("errors.Is(err, ErrMissingObject) = false")
	}
}
