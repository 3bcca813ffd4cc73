package core

// EmbeddingRecord is a cached embedding vector for a piece of text.
// The ID is content-derived so identical text embedded with the same
// model always maps to the same record.
type EmbeddingRecord struct {
	ID     ID
	Model  string
	Vector []float32
}

// EmbeddingCacheKey derives the cache ID for a (model, text) pair.
// The separator keeps "modelA"+"btext" and "modelAb"+"text" distinct.
func EmbeddingCacheKey(model, text string) ID {
	return IDFromContent(model + "\x00" + text)
}
