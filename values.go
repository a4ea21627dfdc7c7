package asfmeta

import (
	"github.com/simonhull/asfmeta/internal/registry"
	"github.com/simonhull/asfmeta/internal/types"
)

// Re-exported model types.
type (
	GUID         = types.GUID
	Value        = types.Value
	Values       = types.Values
	Kind         = types.Kind
	Object       = types.Object
	HeaderObject = types.HeaderObject
	RootObject   = types.RootObject
	StreamInfo   = types.StreamInfo
	AudioMedia   = types.AudioMedia
)

// ParseGUID parses the canonical text form of a GUID.
func ParseGUID(s string) (GUID, error) {
	return types.ParseGUID(s)
}

// ObjectName returns the registered name of g.
func ObjectName(g GUID) (string, bool) {
	return registry.Name(g)
}

// ObjectGUID returns the GUID registered under name.
func ObjectGUID(name string) (GUID, bool) {
	return registry.Lookup(name)
}

// Value constructors.
func Int(v int64) Value     { return types.Int(v) }
func Uint(v uint64) Value   { return types.Uint(v) }
func Float(v float64) Value { return types.Float(v) }
func Text(v string) Value   { return types.Text(v) }
func Bool(v bool) Value     { return types.Bool(v) }
func Bytes(b []byte) Value  { return types.Bytes(b) }
