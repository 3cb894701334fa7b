package database

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory is a Database kept in process memory. It mirrors the subset of
// MongoDB behaviour the service relies on and preserves insertion order.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]*table
}

type table struct {
	ids  []string
	docs map[string]bson.Raw
}

// NewMemory returns an empty in-memory database.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string]*table)}
}

func (m *Memory) Driver(name string) Driver {
	return &memoryDriver{mem: m, name: name}
}

func (m *Memory) Close(context.Context) error {
	return nil
}

var emptyTable = &table{docs: map[string]bson.Raw{}}

// lookup returns the named table, or an empty one that must not be written.
// Safe under the read lock.
func (m *Memory) lookup(name string) *table {
	if t, ok := m.tables[name]; ok {
		return t
	}
	return emptyTable
}

// table returns the named table, creating it. Callers hold the write lock.
func (m *Memory) table(name string) *table {
	t, ok := m.tables[name]
	if !ok {
		t = &table{docs: make(map[string]bson.Raw)}
		m.tables[name] = t
	}
	return t
}

type memoryDriver struct {
	mem  *Memory
	name string
}

func docID(doc bson.Raw) (string, error) {
	id, ok := doc.Lookup("_id").StringValueOK()
	if !ok {
		return "", fmt.Errorf("document has no string _id")
	}
	return id, nil
}

func (d *memoryDriver) Find(_ context.Context, s *Sort) ([]bson.Raw, error) {
	d.mem.mu.RLock()
	defer d.mem.mu.RUnlock()

	t := d.mem.lookup(d.name)
	docs := make([]bson.Raw, 0, len(t.ids))
	for _, id := range t.ids {
		docs = append(docs, t.docs[id])
	}

	if s != nil {
		sort.SliceStable(docs, func(i, j int) bool {
			c := compareValues(docs[i].Lookup(s.Field), docs[j].Lookup(s.Field))
			if s.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return docs, nil
}

func (d *memoryDriver) FindOne(_ context.Context, id string) (bson.Raw, error) {
	d.mem.mu.RLock()
	defer d.mem.mu.RUnlock()

	doc, ok := d.mem.lookup(d.name).docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (d *memoryDriver) Insert(_ context.Context, docs ...bson.Raw) error {
	d.mem.mu.Lock()
	defer d.mem.mu.Unlock()

	t := d.mem.table(d.name)
	for _, doc := range docs {
		id, err := docID(doc)
		if err != nil {
			return fmt.Errorf("insert %s: %w", d.name, err)
		}
		if _, dup := t.docs[id]; dup {
			return fmt.Errorf("insert %s: duplicate _id %q", d.name, id)
		}
		t.ids = append(t.ids, id)
		t.docs[id] = doc
	}
	return nil
}

func (d *memoryDriver) Update(_ context.Context, id string, fields bson.D) error {
	d.mem.mu.Lock()
	defer d.mem.mu.Unlock()

	t := d.mem.table(d.name)
	current, ok := t.docs[id]
	if !ok {
		return ErrNotFound
	}

	var doc bson.D
	if err := bson.Unmarshal(current, &doc); err != nil {
		return fmt.Errorf("update %s %s: %w", d.name, id, err)
	}
	for _, f := range fields {
		doc = setField(doc, f)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", d.name, id, err)
	}
	t.docs[id] = raw
	return nil
}

func setField(doc bson.D, f bson.E) bson.D {
	for i := range doc {
		if doc[i].Key == f.Key {
			doc[i].Value = f.Value
			return doc
		}
	}
	return append(doc, f)
}

func (d *memoryDriver) Replace(_ context.Context, id string, doc bson.Raw) error {
	d.mem.mu.Lock()
	defer d.mem.mu.Unlock()

	t := d.mem.table(d.name)
	if _, ok := t.docs[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.docs[id] = doc
	return nil
}

func (d *memoryDriver) Delete(_ context.Context, id string) error {
	d.mem.mu.Lock()
	defer d.mem.mu.Unlock()

	t := d.mem.table(d.name)
	if _, ok := t.docs[id]; !ok {
		return ErrNotFound
	}
	delete(t.docs, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (d *memoryDriver) Count(context.Context) (int64, error) {
	d.mem.mu.RLock()
	defer d.mem.mu.RUnlock()
	return int64(len(d.mem.lookup(d.name).ids)), nil
}

func (d *memoryDriver) Distinct(_ context.Context, field string) ([]string, error) {
	d.mem.mu.RLock()
	defer d.mem.mu.RUnlock()

	t := d.mem.lookup(d.name)
	seen := make(map[string]bool)
	values := []string{}
	for _, id := range t.ids {
		v, ok := t.docs[id].Lookup(field).StringValueOK()
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

// compareValues orders datetimes, numbers and strings. Missing or
// unsupported values sort before everything else.
func compareValues(a, b bson.RawValue) int {
	if at, ok := a.DateTimeOK(); ok {
		if bt, ok := b.DateTimeOK(); ok {
			return compareInt(at, bt)
		}
	}
	if an, ok := a.AsInt64OK(); ok {
		if bn, ok := b.AsInt64OK(); ok {
			return compareInt(an, bn)
		}
	}
	if as, ok := a.StringValueOK(); ok {
		if bs, ok := b.StringValueOK(); ok {
			return strings.Compare(as, bs)
		}
	}
	return compareInt(rank(a), rank(b))
}

func rank(v bson.RawValue) int64 {
	if v.IsZero() || v.Type == bson.TypeNull {
		return 0
	}
	return 1
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
