package asf

import (
	"github.com/simonhull/asfmeta/internal/binary"
	"github.com/simonhull/asfmeta/internal/types"
)

// File properties flag bits.
const (
	flagBroadcast = 0x0001
	flagSeekable  = 0x0002
)

// decodeFileProperties decodes the File Properties object into Info.
func decodeFileProperties(s *state, c *binary.Cursor) error {
	ch := binary.NewChain(c)

	fileID := ch.GUID("file ID")
	fileSize := binary.ReadChained[uint64](ch, "file size")
	created := binary.ReadChained[uint64](ch, "creation date")
	packets := binary.ReadChained[uint64](ch, "data packets count")
	playDuration := binary.ReadChained[uint64](ch, "play duration")
	sendDuration := binary.ReadChained[uint64](ch, "send duration")
	preroll := binary.ReadChained[uint64](ch, "preroll")
	flags := binary.ReadChained[uint32](ch, "flags")
	minPacket := binary.ReadChained[uint32](ch, "minimum data packet size")
	maxPacket := binary.ReadChained[uint32](ch, "maximum data packet size")
	maxBitrate := binary.ReadChained[uint32](ch, "maximum bitrate")

	if err := ch.Error(); err != nil {
		return err
	}

	unix := FileTimeToUnix(created)

	info := s.header.Info
	info["fileid_guid"] = types.Text(fileID.String())
	info["filesize"] = types.Uint(fileSize)
	info["creation_date"] = types.Uint(created)
	info["creation_date_unix"] = types.Int(unix)
	info["creation_string"] = types.Text(FormatCreation(unix))
	info["data_packets"] = types.Uint(packets)
	info["play_duration"] = types.Uint(playDuration)
	info["send_duration"] = types.Uint(sendDuration)
	info["preroll"] = types.Uint(preroll)
	info["playtime_seconds"] = types.Int(PlaytimeSeconds(playDuration, preroll))
	info["broadcast"] = types.Bool(flags&flagBroadcast != 0)
	info["seekable"] = types.Bool(flags&flagSeekable != 0)
	info["min_packet_size"] = types.Uint(uint64(minPacket))
	info["max_packet_size"] = types.Uint(uint64(maxPacket))
	info["max_bitrate"] = types.Uint(uint64(maxBitrate))
	info["bitrate"] = types.Float(float64(maxBitrate) / 1000)

	s.log.Debug("file properties",
		"file_id", fileID,
		"filesize", fileSize,
		"created", unix,
		"play_duration", playDuration,
		"preroll", preroll,
		"flags", flags,
		"max_bitrate", maxBitrate)

	return nil
}

// PlaytimeSeconds derives the playable length from a play duration in
// 100ns ticks and a preroll in milliseconds, truncated toward zero.
func PlaytimeSeconds(playDuration, prerollMillis uint64) int64 {
	return int64(float64(playDuration)/ticksPerSecond - float64(prerollMillis)/1000)
}
