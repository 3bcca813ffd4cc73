package storage

import (
	"context"

	"github.com/poiesic/scenematch/core"
)

// EmbeddingCache stores embedding vectors keyed by content-derived IDs.
// Implementations must be thread-safe and support concurrent access.
type EmbeddingCache interface {
	// GetEmbedding retrieves a cached embedding record by ID.
	// Returns ErrNotFound if no record exists for the ID.
	GetEmbedding(ctx context.Context, id core.ID) (*core.EmbeddingRecord, error)

	// PutEmbedding stores an embedding record, overwriting any existing
	// record with the same ID.
	PutEmbedding(ctx context.Context, record *core.EmbeddingRecord) error

	// Close closes the storage backend and releases resources.
	Close() error
}
