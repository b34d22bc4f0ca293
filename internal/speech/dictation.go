package speech

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	audiotranscriber "github.com/sklyt/whisper/pkg"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.SpeechInput = (*Dictation)(nil)
	_ domain.SpeechInput = NoOp{}
)

// envAnnotation matches whisper environmental annotations like
// "(keyboard clicking)" or "[laughter]".
var envAnnotation = regexp.MustCompile(`[\(\[][a-zA-Z][a-zA-Z_\s]*[\)\]]`)

// RecordFunc records for d and returns the raw transcription.
type RecordFunc func(ctx context.Context, d time.Duration) (string, error)

// DictationOption configures a Dictation.
type DictationOption func(*Dictation)

// WithRecordDuration sets how long one utterance may last.
func WithRecordDuration(d time.Duration) DictationOption {
	return func(s *Dictation) { s.duration = d }
}

// WithTempDir sets the directory for temporary WAV files.
func WithTempDir(dir string) DictationOption {
	return func(s *Dictation) { s.tempDir = dir }
}

// WithRecorder replaces the whisper recorder. Tests use it.
func WithRecorder(fn RecordFunc) DictationOption {
	return func(s *Dictation) { s.record = fn }
}

// Dictation is push-to-talk speech input backed by a local Whisper model.
// Each Listen call records one fixed-length clip and transcribes it.
type Dictation struct {
	whisperBin string
	modelPath  string
	tempDir    string
	duration   time.Duration
	record     RecordFunc
	log        *logger.Logger

	// One recording at a time; the microphone is shared.
	mu sync.Mutex
}

// NewDictation creates a dictation source.
//
//   - whisperBin: path to the whisper-cli executable
//   - modelPath:  path to the GGML model file
func NewDictation(whisperBin, modelPath string, log *logger.Logger, opts ...DictationOption) *Dictation {
	d := &Dictation{
		whisperBin: whisperBin,
		modelPath:  modelPath,
		tempDir:    DefaultTempDir,
		duration:   DefaultRecordDuration,
		log:        log,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.record == nil {
		if _, err := exec.LookPath(d.whisperBin); err != nil {
			log.Error("dictation: whisper binary %q not found in PATH: %v", d.whisperBin, err)
		}
		d.record = d.recordWhisper
	}
	return d
}

// Listen records one utterance and returns the cleaned text. An empty
// string means nothing intelligible was said.
func (d *Dictation) Listen(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.log.Info("dictation: listening for %s", d.duration)
	raw, err := d.record(ctx, d.duration)
	if err != nil {
		return "", err
	}
	text := cleanTranscription(raw)
	d.log.Info("dictation: heard %q", text)
	return text, nil
}

func (d *Dictation) recordWhisper(ctx context.Context, duration time.Duration) (string, error) {
	var result string
	var wg sync.WaitGroup
	wg.Add(1)

	callback := func(text string) {
		result = text
		wg.Done()
	}

	verbose := d.log.GetLevel() >= logger.LevelVerbose
	t, err := audiotranscriber.NewTranscriber(
		d.whisperBin,
		d.modelPath,
		d.tempDir,
		"wav",
		callback,
		verbose,
	)
	if err != nil {
		return "", err
	}
	if err := t.Start(); err != nil {
		return "", err
	}

	select {
	case <-time.After(duration):
	case <-ctx.Done():
		t.Stop()
		wg.Wait()
		return "", ctx.Err()
	}

	t.Stop()
	wg.Wait()
	return result, nil
}

// cleanTranscription collapses whitespace and removes whisper artifacts
// such as "[BLANK_AUDIO]" and "(music)".
func cleanTranscription(s string) string {
	s = envAnnotation.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,!?")
}

// NoOp is the speech input used when voice is disabled.
type NoOp struct{}

// Listen always fails with domain.ErrVoiceDisabled.
func (NoOp) Listen(ctx context.Context) (string, error) {
	return "", domain.ErrVoiceDisabled
}
