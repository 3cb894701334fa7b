package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Group     string    `bson:"group"`
	Tags      []string  `bson:"tags"`
	CreatedAt time.Time `bson:"created_at"`
}

func newItems(t *testing.T) (*Collection[item], context.Context) {
	t.Helper()
	return NewCollection[item](NewMemory(), "items"), context.Background()
}

func TestCollection_InsertGet(t *testing.T) {
	coll, ctx := newItems(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, coll.Insert(ctx, item{ID: "a", Name: "first", Tags: []string{}, CreatedAt: now}))

	got, err := coll.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, []string{}, got.Tags)
	assert.True(t, now.Equal(got.CreatedAt))

	_, err = coll.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_InsertDuplicate(t *testing.T) {
	coll, ctx := newItems(t)
	require.NoError(t, coll.Insert(ctx, item{ID: "a"}))
	assert.Error(t, coll.Insert(ctx, item{ID: "a"}))
}

func TestCollection_AllKeepsInsertionOrder(t *testing.T) {
	coll, ctx := newItems(t)
	require.NoError(t, coll.Insert(ctx, item{ID: "c"}, item{ID: "a"}, item{ID: "b"}))

	all, err := coll.All(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestCollection_AllSorted(t *testing.T) {
	coll, ctx := newItems(t)
	base := time.Now()
	require.NoError(t, coll.Insert(ctx,
		item{ID: "old", CreatedAt: base.Add(-time.Hour)},
		item{ID: "new", CreatedAt: base.Add(time.Hour)},
		item{ID: "mid", CreatedAt: base},
	))

	all, err := coll.All(ctx, Newest("created_at"))
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

	all, err = coll.All(ctx, &Sort{Field: "created_at"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "mid", "new"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestCollection_Replace(t *testing.T) {
	coll, ctx := newItems(t)
	created := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, coll.Insert(ctx, item{ID: "a", Name: "before", Group: "g", CreatedAt: created}))

	err := coll.Replace(ctx, "a", item{ID: "ignored", Name: "after"}, "created_at")
	require.NoError(t, err)

	got, err := coll.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "after", got.Name)
	assert.Empty(t, got.Group, "fields absent from the replacement are cleared")
	assert.True(t, created.Equal(got.CreatedAt), "preserved field kept")

	_, err = coll.Get(ctx, "ignored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_ReplaceMissingDoesNotInsert(t *testing.T) {
	coll, ctx := newItems(t)

	err := coll.Replace(ctx, "ghost", item{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollection_Upsert(t *testing.T) {
	coll, ctx := newItems(t)

	require.NoError(t, coll.Upsert(ctx, "only", item{Name: "one"}))
	require.NoError(t, coll.Upsert(ctx, "only", item{Name: "two"}))

	n, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := coll.Get(ctx, "only")
	require.NoError(t, err)
	assert.Equal(t, "only", got.ID)
	assert.Equal(t, "two", got.Name)
}

func TestCollection_Delete(t *testing.T) {
	coll, ctx := newItems(t)
	require.NoError(t, coll.Insert(ctx, item{ID: "a"}, item{ID: "b"}))

	require.NoError(t, coll.Delete(ctx, "a"))
	assert.ErrorIs(t, coll.Delete(ctx, "a"), ErrNotFound)

	all, err := coll.All(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestCollection_Distinct(t *testing.T) {
	coll, ctx := newItems(t)
	require.NoError(t, coll.Insert(ctx,
		item{ID: "1", Group: "x"},
		item{ID: "2", Group: "y"},
		item{ID: "3", Group: "x"},
	))

	values, err := coll.Distinct(ctx, "group")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, values)
}

func TestOpen_Memory(t *testing.T) {
	db, err := Open(context.Background(), MemoryURL, "ignored")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, db)
	assert.NoError(t, db.Close(context.Background()))
}

func TestMemory_ReadsOnUnknownCollections(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	drv := mem.Driver("nothing-yet")

	n, err := drv.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	docs, err := drv.Find(ctx, Newest("created_at"))
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = drv.FindOne(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	values, err := drv.Distinct(ctx, "group")
	require.NoError(t, err)
	assert.Empty(t, values)

	assert.Empty(t, mem.tables, "reads create no tables")
}

// Run with -race.
func TestMemory_ConcurrentAccess(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("c%d", i%8)
			coll := NewCollection[item](mem, name)

			_, err := mem.Driver(name).Count(ctx)
			assert.NoError(t, err)
			_, err = coll.All(ctx, Newest("created_at"))
			assert.NoError(t, err)
			_, err = coll.Distinct(ctx, "group")
			assert.NoError(t, err)
			assert.NoError(t, coll.Insert(ctx, item{ID: fmt.Sprintf("id-%d", i), Tags: []string{}}))
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 8; i++ {
		n, err := mem.Driver(fmt.Sprintf("c%d", i)).Count(ctx)
		require.NoError(t, err)
		total += int(n)
	}
	assert.Equal(t, 64, total)
}
