package speech

import (
	"context"
	"errors"
)

// ErrNoSpeech is returned when the recognition result contains no speech.
var ErrNoSpeech = errors.New("대화 내용이 감지되지 않았습니다")

// Transcriber turns a prepared 16kHz mono WAV file into a speaker-labelled
// transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
