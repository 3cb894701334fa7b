package database

import (
	"context"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection is a typed view over a Driver. T must carry a string `_id`
// bson field.
type Collection[T any] struct {
	name   string
	driver Driver
}

// NewCollection binds T to the named collection of db.
func NewCollection[T any](db Database, name string) *Collection[T] {
	return &Collection[T]{name: name, driver: db.Driver(name)}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// All returns every document, ordered by sort when it is non-nil.
func (c *Collection[T]) All(ctx context.Context, sort *Sort) ([]T, error) {
	raws, err := c.driver.Find(ctx, sort)
	if err != nil {
		return nil, err
	}

	docs := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.name, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get returns the document keyed by id or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	raw, err := c.driver.FindOne(ctx, id)
	if err != nil {
		return doc, err
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode %s %s: %w", c.name, id, err)
	}
	return doc, nil
}

func (c *Collection[T]) Insert(ctx context.Context, docs ...T) error {
	raws := make([]bson.Raw, 0, len(docs))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.name, err)
		}
		raws = append(raws, raw)
	}
	return c.driver.Insert(ctx, raws...)
}

// Replace overwrites every field of the document keyed by id with the
// fields of doc, except _id and the preserved keys. It never inserts.
func (c *Collection[T]) Replace(ctx context.Context, id string, doc T, preserve ...string) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	elems, err := bson.Raw(raw).Elements()
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	fields := bson.D{}
	for _, e := range elems {
		key := e.Key()
		if key == "_id" || slices.Contains(preserve, key) {
			continue
		}
		fields = append(fields, bson.E{Key: key, Value: e.Value()})
	}
	return c.driver.Update(ctx, id, fields)
}

// Upsert stores doc under id, replacing any document already there.
func (c *Collection[T]) Upsert(ctx context.Context, id string, doc T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	elems, err := bson.Raw(raw).Elements()
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	keyed := bson.D{{Key: "_id", Value: id}}
	for _, e := range elems {
		if e.Key() != "_id" {
			keyed = append(keyed, bson.E{Key: e.Key(), Value: e.Value()})
		}
	}
	out, err := bson.Marshal(keyed)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	return c.driver.Replace(ctx, id, out)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.driver.Delete(ctx, id)
}

func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	return c.driver.Count(ctx)
}

// Distinct returns the unique string values of field across the collection.
func (c *Collection[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	return c.driver.Distinct(ctx, field)
}
