package docstore

import "context"

// Store persists generated artifacts to the cloud document store.
type Store interface {
	// SaveDoc creates a Google Doc with the given title and full-text body
	// and returns its URL.
	SaveDoc(ctx context.Context, title, body string) (string, error)
	// SaveRoster creates or updates the roster spreadsheet on Drive by
	// filename lookup and returns the file URL.
	SaveRoster(ctx context.Context, xlsx []byte) (string, error)
}
