package types

import (
	"fmt"
	"strings"
)

// StreamInfo holds decoded stream properties.
//
// It is only populated on request because most callers never need it.
type StreamInfo struct {
	// Audio is set when the stream is audio and its type-specific data
	// holds at least a full format header.
	Audio *AudioMedia `json:"audio,omitempty"`

	TypeName            string `json:"stream_type_name"`
	ErrorCorrectionName string `json:"error_correct_name"`

	TypeSpecificData    []byte `json:"type_specific_data"`
	ErrorCorrectionData []byte `json:"error_correct_data"`

	TimeOffset uint64 `json:"time_offset"`

	TypeID            GUID `json:"stream_type_guid"`
	ErrorCorrectionID GUID `json:"error_correct_guid"`

	TypeDataLength  uint32 `json:"type_data_length"`
	ErrorDataLength uint32 `json:"error_data_length"`

	// StreamNumber is the low 7 bits of the flags word.
	StreamNumber uint8 `json:"stream_number"`

	// Encrypted is the high bit of the flags word.
	Encrypted bool `json:"encrypted"`
}

// AudioMedia is the audio format header carried in the type-specific data
// of an audio stream.
type AudioMedia struct {
	CodecID       uint16 `json:"codec_id"`
	Channels      uint16 `json:"channels"`
	SampleRate    uint32 `json:"sample_rate"`
	Bitrate       uint64 `json:"bitrate"`
	BlockAlign    uint16 `json:"block_align"`
	BitsPerSample uint16 `json:"bits_per_sample"`
}

// String returns a human-readable representation of the audio format.
// Example output: "44.1kHz 16-bit stereo 128kbps".
func (a AudioMedia) String() string {
	var parts []string

	if a.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(a.SampleRate)/1000))
	}
	if a.BitsPerSample > 0 {
		parts = append(parts, fmt.Sprintf("%d-bit", a.BitsPerSample))
	}
	if ch := channelDescription(int(a.Channels)); ch != "" {
		parts = append(parts, ch)
	}
	if a.Bitrate > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", a.Bitrate/1000))
	}

	return strings.Join(parts, " ")
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
