package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kchglobal/minutes-flow/internal/audio"
	"github.com/kchglobal/minutes-flow/internal/config"
	"github.com/kchglobal/minutes-flow/internal/docstore"
	"github.com/kchglobal/minutes-flow/internal/logger"
	"github.com/kchglobal/minutes-flow/internal/mailer"
	"github.com/kchglobal/minutes-flow/internal/processor"
	"github.com/kchglobal/minutes-flow/internal/roster"
	"github.com/kchglobal/minutes-flow/internal/speech"
	"github.com/kchglobal/minutes-flow/internal/summarizer"
	"github.com/kchglobal/minutes-flow/internal/watcher"
	"github.com/kchglobal/minutes-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "KCH Meeting Minutes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Google.Model)
	log.Info(ctx, "Speech language: %s (%d..%d speakers)", cfg.Speech.Language, cfg.Speech.MinSpeakers, cfg.Speech.MaxSpeakers)
	log.Info(ctx, "Max concurrent meetings: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	converter := audio.NewConverter(exec, log)
	transcriber := speech.New(cfg, log)
	generator := summarizer.New(cfg.Google.APIKey, cfg.Google.Model, log)
	store := docstore.New(cfg, log)

	sender, senderName, senderEmail := buildSender(ctx, cfg, log)
	syncRoster(ctx, cfg, store, log)

	proc := processor.New(cfg, converter, transcriber, generator, store, sender, senderName, senderEmail, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Minutes pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Drop a recording (optionally with <name>.meeting.yaml) to begin")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Minutes pipeline stopped")
}

// buildSender picks the mail backend: delegated Gmail when an impersonation
// user is configured, direct SMTP otherwise. Gmail pins the sender address
// to the impersonated account.
func buildSender(ctx context.Context, cfg *config.Config, log logger.Logger) (mailer.Sender, string, string) {
	if cfg.GmailEnabled() {
		sender, err := mailer.NewGmailSender(cfg.Google.CredentialsFile, cfg.Mail.GmailImpersonate)
		if err != nil {
			log.Error(ctx, "Gmail backend unavailable: %v", err)
		} else {
			log.Info(ctx, "Mail backend: Gmail API (as %s)", cfg.Mail.GmailImpersonate)
			return sender, cfg.Mail.FromName, cfg.Mail.GmailImpersonate
		}
	}

	if cfg.SMTPEnabled() {
		sender, err := mailer.NewSMTPSender(cfg.Mail.SMTP)
		if err != nil {
			log.Error(ctx, "SMTP backend unavailable: %v", err)
		} else {
			from := cfg.Mail.SMTP.From
			if from == "" {
				from = cfg.Mail.SMTP.User
			}
			log.Info(ctx, "Mail backend: SMTP via %s", cfg.Mail.SMTP.Host)
			return sender, cfg.Mail.FromName, from
		}
	}

	log.Warn(ctx, "No mail backend configured; email stages will be skipped")
	return nil, "", ""
}

// syncRoster pushes the local roster workbook to Drive at startup so the
// shared copy tracks what this host mails from. Best effort only.
func syncRoster(ctx context.Context, cfg *config.Config, store docstore.Store, log logger.Logger) {
	raw, err := os.ReadFile(cfg.Google.RosterFile)
	if os.IsNotExist(err) {
		log.Debug(ctx, "No local roster file (%s); skipping Drive sync", cfg.Google.RosterFile)
		return
	}
	if err != nil {
		log.Warn(ctx, "기본 명부 로드 실패: %v", err)
		return
	}

	records, err := roster.LoadXLSX(raw)
	if err != nil {
		log.Warn(ctx, "명부 형식 오류: %v", err)
		return
	}

	normalized, err := roster.ToXLSX(records)
	if err != nil {
		log.Warn(ctx, "명부 직렬화 실패: %v", err)
		return
	}

	url, err := store.SaveRoster(ctx, normalized)
	if err != nil {
		log.Warn(ctx, "드라이브 저장 실패: %v", err)
		return
	}
	log.Info(ctx, "Roster synced (%d people): %s", len(records), url)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
