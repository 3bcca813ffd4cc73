package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for storage. Hand-written in the serializer-object
// style so the wire layout stays explicit and stable.

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

type idMUS struct{}

// IDMUS serializes IDs as varint-encoded uint64.
var IDMUS = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

type embeddingRecordMUS struct{}

// EmbeddingRecordMUS serializes EmbeddingRecord values field by field,
// in declaration order.
var EmbeddingRecordMUS = embeddingRecordMUS{}

func (embeddingRecordMUS) Marshal(record EmbeddingRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(record.ID, bs)
	n += ord.String.Marshal(record.Model, bs[n:])
	n += vectorMUS.Marshal(record.Vector, bs[n:])
	return n
}

func (embeddingRecordMUS) Unmarshal(bs []byte) (record EmbeddingRecord, n int, err error) {
	record.ID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return record, n, err
	}
	var n1 int
	record.Model, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return record, n, err
	}
	record.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return record, n, err
}

func (embeddingRecordMUS) Size(record EmbeddingRecord) (size int) {
	size = IDMUS.Size(record.ID)
	size += ord.String.Size(record.Model)
	size += vectorMUS.Size(record.Vector)
	return size
}
