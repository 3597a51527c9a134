// Package audio converts uploaded recordings into the 16kHz mono PCM WAV
// the speech API expects.
package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kchglobal/minutes-flow/internal/logger"
	"github.com/kchglobal/minutes-flow/pkg/executor"
)

type Converter struct {
	executor executor.Executor
	logger   logger.Logger
}

func NewConverter(exec executor.Executor, log logger.Logger) *Converter {
	return &Converter{executor: exec, logger: log}
}

// ToWAV converts an arbitrary audio file to 16kHz mono linear PCM WAV next
// to the input and returns the new path.
func (c *Converter) ToWAV(ctx context.Context, inputPath string) (string, error) {
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16k.wav"

	c.logger.Info(ctx, "Converting audio to 16kHz mono WAV: %s", inputPath)

	args := []string{
		"-y",
		"-i", inputPath,
		"-ac", "1", // mono
		"-ar", "16000", // 16kHz sample rate
		"-f", "wav",
		outputPath,
	}

	if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	c.logger.Info(ctx, "Audio converted: %s", outputPath)
	return outputPath, nil
}
