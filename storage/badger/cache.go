package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/scenematch/core"
	"github.com/poiesic/scenematch/storage"
)

// EmbeddingCache implements storage.EmbeddingCache for BadgerDB.
type EmbeddingCache struct {
	backend *Backend
}

var _ storage.EmbeddingCache = (*EmbeddingCache)(nil)

// NewEmbeddingCache opens a persistent embedding cache at the given path.
func NewEmbeddingCache(path string) (storage.EmbeddingCache, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &EmbeddingCache{backend: backend}, nil
}

// GetEmbedding retrieves a cached embedding record by ID.
func (c *EmbeddingCache) GetEmbedding(ctx context.Context, id core.ID) (*core.EmbeddingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *core.EmbeddingRecord
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalEmbeddingRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// PutEmbedding stores an embedding record, overwriting any existing one.
func (c *EmbeddingCache) PutEmbedding(ctx context.Context, record *core.EmbeddingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalEmbeddingRecord(record)
		if err := tx.Set(makeEmbeddingKey(record.ID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *EmbeddingCache) Close() error {
	return c.backend.Close()
}
