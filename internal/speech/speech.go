package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Transcribe uploads the WAV to GCS and runs a long-running recognition
// with automatic punctuation and speaker diarization. The recognition can
// take minutes for long meetings; cancellation rides on ctx.
func (t *implTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	uri, err := t.upload(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	t.logger.Info(ctx, "Audio staged: %s", uri)

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(t.credentialsFile))
	if err != nil {
		return "", fmt.Errorf("create speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:            16000,
			LanguageCode:               t.language,
			EnableAutomaticPunctuation: true,
			DiarizationConfig: &speechpb.SpeakerDiarizationConfig{
				EnableSpeakerDiarization: true,
				MinSpeakerCount:          int32(t.minSpeakers),
				MaxSpeakerCount:          int32(t.maxSpeakers),
			},
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: uri},
		},
	}

	t.logger.Info(ctx, "Starting recognition (diarization %d..%d speakers)", t.minSpeakers, t.maxSpeakers)

	op, err := client.LongRunningRecognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("start recognition: %w", err)
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("recognition: %w", err)
	}

	transcript := extractTranscript(resp)
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// upload stages the WAV in the configured bucket and returns its gs:// URI.
func (t *implTranscriber) upload(ctx context.Context, wavPath string) (string, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	client, err := storage.NewClient(ctx, option.WithCredentialsFile(t.credentialsFile))
	if err != nil {
		return "", fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	objectName := fmt.Sprintf("minutes/%s-%s",
		time.Now().UTC().Format("20060102T150405"),
		filepath.Base(wavPath),
	)

	w := client.Bucket(t.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "audio/wav"
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", t.bucket, objectName), nil
}

// extractTranscript takes the final result's best alternative. With
// diarization the API repeats all words there, each carrying a speaker tag;
// without word-level tags the plain transcript is returned.
func extractTranscript(resp *speechpb.LongRunningRecognizeResponse) string {
	if resp == nil || len(resp.Results) == 0 {
		return ""
	}
	alts := resp.Results[len(resp.Results)-1].Alternatives
	if len(alts) == 0 {
		return ""
	}
	best := alts[0]
	if len(best.Words) == 0 {
		var parts []string
		for _, r := range resp.Results {
			if len(r.Alternatives) == 0 {
				continue
			}
			if s := strings.TrimSpace(r.Alternatives[0].Transcript); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}

	words := make([]taggedWord, 0, len(best.Words))
	for _, w := range best.Words {
		words = append(words, taggedWord{Speaker: w.SpeakerTag, Text: w.Word})
	}
	return groupBySpeaker(words)
}
