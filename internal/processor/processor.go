package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kchglobal/minutes-flow/internal/meeting"
	"github.com/kchglobal/minutes-flow/internal/prompt"
	"github.com/kchglobal/minutes-flow/internal/summarizer"
)

// Process runs the pipeline for one audio file: convert, transcribe,
// summarize, save the document, then run the optional email stage from the
// sidecar job. Pipeline failures abort the run for this file before
// anything is saved; email failures after the document exists are isolated
// per recipient.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	job, err := meeting.LoadJob(meeting.JobPath(audioPath))
	if err != nil {
		return fmt.Errorf("load meeting job: %w", err)
	}

	workPath, err := p.moveToProcessing(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("move to processing: %w", err)
	}

	wavPath, err := p.converter.ToWAV(ctx, workPath)
	if err != nil {
		return fmt.Errorf("convert audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, wavPath)

	transcript, err := p.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	summaryPrompt, err := prompt.Build(prompt.KindTranscript, job.Meta, map[string]string{
		"transcript_text": transcript,
	})
	if err != nil {
		return fmt.Errorf("build summary prompt: %w", err)
	}

	summary, err := p.generator.Generate(ctx, summaryPrompt)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	title := strings.TrimSpace(fmt.Sprintf("[AI회의록] %s %s",
		time.Now().Format("2006-01-02 15시04분"), job.Meta.Title))
	full := summary + "\n\n" + strings.Repeat("-", 30) + "\n[참고: 대화 원본]\n" + transcript

	docURL, err := p.store.SaveDoc(ctx, title, full)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	p.writeLocalCopy(ctx, workPath, title, summary)

	if err := p.runEmailStage(ctx, job, summary, docURL); err != nil {
		p.logger.Error(ctx, "Email stage failed: %v", err)
	}

	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive audio: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Meeting processed: %s", docURL)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// writeLocalCopy exports the summary as a local docx next to the document
// store copy. Failure only warns; the Google Doc is the canonical artifact.
func (p *implProcessor) writeLocalCopy(ctx context.Context, workPath, title, summary string) {
	base := strings.TrimSuffix(filepath.Base(workPath), filepath.Ext(workPath))
	docxPath := filepath.Join(p.cfg.Paths.Output, base+".docx")
	if err := summarizer.WriteDocx(title, summary, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write local docx copy: %v", err)
		return
	}
	p.logger.Info(ctx, "Local minutes copy: %s", docxPath)
}

// moveToProcessing moves the audio file from input to the processing folder
// so a watcher restart never picks it up twice.
func (p *implProcessor) moveToProcessing(ctx context.Context, audioPath string) (string, error) {
	destPath := filepath.Join(p.cfg.Paths.Processing, filepath.Base(audioPath))
	p.logger.Debug(ctx, "Moving to processing folder: %s -> %s", audioPath, destPath)
	if err := os.Rename(audioPath, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

// moveToArchived moves the processed audio and its sidecar out of the
// processing folder.
func (p *implProcessor) moveToArchived(ctx context.Context, workPath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(workPath))
	if err := os.Rename(workPath, destPath); err != nil {
		return err
	}

	sidecar := filepath.Join(p.cfg.Paths.Input, filepath.Base(meeting.JobPath(workPath)))
	if _, err := os.Stat(sidecar); err == nil {
		if err := os.Rename(sidecar, filepath.Join(p.cfg.Paths.Archived, filepath.Base(sidecar))); err != nil {
			p.logger.Warn(ctx, "Failed to archive sidecar: %v", err)
		}
	}

	return nil
}

func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
