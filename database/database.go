package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned when no document carries the requested id.
var ErrNotFound = errors.New("document not found")

// Sort orders a listing by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Newest sorts by field, most recent first.
func Newest(field string) *Sort {
	return &Sort{Field: field, Desc: true}
}

// Driver is the untyped per-collection surface of a backend. Documents are
// keyed by their string _id.
type Driver interface {
	Find(ctx context.Context, sort *Sort) ([]bson.Raw, error)
	FindOne(ctx context.Context, id string) (bson.Raw, error)
	Insert(ctx context.Context, docs ...bson.Raw) error
	// Update $sets fields on the document with the given id.
	Update(ctx context.Context, id string, fields bson.D) error
	// Replace swaps the whole document, inserting it when id is unknown.
	Replace(ctx context.Context, id string, doc bson.Raw) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Distinct(ctx context.Context, field string) ([]string, error)
}

// Database hands out collection drivers and owns the backend connection.
type Database interface {
	Driver(name string) Driver
	Close(ctx context.Context) error
}

// MemoryURL selects the in-memory backend instead of MongoDB.
const MemoryURL = "memory://"

// Open connects to the backend named by url.
func Open(ctx context.Context, url, name string) (Database, error) {
	if strings.HasPrefix(url, MemoryURL) {
		return NewMemory(), nil
	}
	return Connect(ctx, url, name)
}
