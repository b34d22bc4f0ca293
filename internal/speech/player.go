// Package speech provides optional audio for the browser: push-to-talk
// dictation through a local Whisper model and a short chime through oto.
package speech

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/resepi/internal/logger"
)

// Player plays raw 16-bit little-endian PCM via oto.
type Player struct {
	ctx *oto.Context
	log *logger.Logger
}

// NewPlayer creates an audio player. Initializes the system audio context.
// Returns an error if the audio device is unavailable.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play plays PCM synchronously and blocks until playback finishes.
func (p *Player) Play(pcm []byte) error {
	p.log.Debug("audio player: playing %d bytes", len(pcm))
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}

// Sink is anything that can play PCM. *Player is one.
type Sink interface {
	Play(pcm []byte) error
}

// Chime plays a short soft tone, used when a card settles. Calls that
// arrive while a tone is still playing are dropped, so a cascade of
// reveals never queues up sound.
type Chime struct {
	sink Sink
	log  *logger.Logger
	tone []byte

	mu      sync.Mutex
	playing bool
	wg      sync.WaitGroup
}

// NewChime creates a chime that plays an 880 Hz tone on sink.
func NewChime(sink Sink, log *logger.Logger) *Chime {
	return &Chime{
		sink: sink,
		log:  log,
		tone: Tone(880, 90*time.Millisecond, 0.2),
	}
}

// Play starts the tone in the background and returns at once.
func (c *Chime) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		if err := c.sink.Play(c.tone); err != nil {
			c.log.Warn("chime: %v", err)
		}
		c.mu.Lock()
		c.playing = false
		c.mu.Unlock()
	}()
}

// Wait blocks until the current tone, if any, has finished.
func (c *Chime) Wait() { c.wg.Wait() }

// Tone synthesizes a mono sine wave as 16-bit little-endian PCM at
// SampleRate. The envelope fades in and out linearly so the tone starts
// and ends at silence. volume is in [0, 1].
func Tone(freq float64, d time.Duration, volume float64) []byte {
	n := int(d.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))
	fade := n / 4
	if fade == 0 {
		fade = 1
	}

	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-1-i < fade {
			env = float64(n-1-i) / float64(fade)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * env * volume
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return out
}
