package processor

import "context"

// Processor runs the full minutes pipeline for one dropped audio file.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
