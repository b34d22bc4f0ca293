package speech

import "time"

// Audio parameters for the chime player.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Defaults for push-to-talk dictation.
const (
	DefaultRecordDuration = 3 * time.Second
	DefaultTempDir        = ".resepi-stt"
)
