package speech

import (
	"github.com/kchglobal/minutes-flow/internal/config"
	"github.com/kchglobal/minutes-flow/internal/logger"
)

type implTranscriber struct {
	credentialsFile string
	bucket          string
	language        string
	minSpeakers     int
	maxSpeakers     int
	logger          logger.Logger
}

// New creates a Transcriber backed by Google Cloud Speech-to-Text with
// speaker diarization, staging audio through the configured GCS bucket.
func New(cfg *config.Config, log logger.Logger) Transcriber {
	return &implTranscriber{
		credentialsFile: cfg.Google.CredentialsFile,
		bucket:          cfg.Google.Bucket,
		language:        cfg.Speech.Language,
		minSpeakers:     cfg.Speech.MinSpeakers,
		maxSpeakers:     cfg.Speech.MaxSpeakers,
		logger:          log,
	}
}
