package docstore

import (
	"github.com/kchglobal/minutes-flow/internal/config"
	"github.com/kchglobal/minutes-flow/internal/logger"
)

type implStore struct {
	credentialsFile string
	sharedDriveID   string
	rosterFolderID  string
	rosterFile      string
	logger          logger.Logger
}

// New creates a Store backed by the Google Docs and Drive APIs.
func New(cfg *config.Config, log logger.Logger) Store {
	return &implStore{
		credentialsFile: cfg.Google.CredentialsFile,
		sharedDriveID:   cfg.Google.SharedDriveID,
		rosterFolderID:  cfg.Google.RosterFolderID,
		rosterFile:      cfg.Google.RosterFile,
		logger:          log,
	}
}
