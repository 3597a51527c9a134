package processor

import (
	"github.com/kchglobal/minutes-flow/internal/audio"
	"github.com/kchglobal/minutes-flow/internal/config"
	"github.com/kchglobal/minutes-flow/internal/docstore"
	"github.com/kchglobal/minutes-flow/internal/logger"
	"github.com/kchglobal/minutes-flow/internal/mailer"
	"github.com/kchglobal/minutes-flow/internal/speech"
	"github.com/kchglobal/minutes-flow/internal/summarizer"
)

type implProcessor struct {
	cfg         *config.Config
	converter   *audio.Converter
	transcriber speech.Transcriber
	generator   summarizer.Generator
	store       docstore.Store
	sender      mailer.Sender
	senderName  string
	senderEmail string
	logger      logger.Logger
}

// New creates a Processor. sender may be nil when no mail backend is
// configured; the email stage is then skipped with a warning.
func New(
	cfg *config.Config,
	converter *audio.Converter,
	transcriber speech.Transcriber,
	generator summarizer.Generator,
	store docstore.Store,
	sender mailer.Sender,
	senderName, senderEmail string,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		converter:   converter,
		transcriber: transcriber,
		generator:   generator,
		store:       store,
		sender:      sender,
		senderName:  senderName,
		senderEmail: senderEmail,
		logger:      log,
	}
}
