package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// item mirrors an inventory record: max+1 ids, a required name, a derived
// normalized price.
type item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

func (i *item) GetID() int64   { return i.ID }
func (i *item) SetID(id int64) { i.ID = id }

// doc mirrors an invoice: timestamp ids and a derived total.
type line struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type doc struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Lines []line  `json:"lines"`
	Total float64 `json:"total"`
}

func (d *doc) GetID() int64   { return d.ID }
func (d *doc) SetID(id int64) { d.ID = id }

func (d *doc) Recompute() {
	var total float64
	for _, l := range d.Lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	d.Total = total
}

func newItems(t *testing.T) *store.Collection[*item] {
	t.Helper()
	return store.NewCollection[*item](store.New(store.NewMemoryBackend()), "inventory")
}

func TestCreateAssignsFirstID(t *testing.T) {
	items := newItems(t)

	created, err := items.Create(&item{Name: "Widget", Quantity: 10, Price: 2.5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Widget", created.Name)

	all, err := items.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestIDsUniqueAmongLiveRecords(t *testing.T) {
	items := newItems(t)

	// Interleave creates and deletes. Max+1 ranges over live records, so a
	// deleted id may be handed out again; uniqueness holds within each
	// snapshot of the collection, not across its history.
	for i := 0; i < 10; i++ {
		_, err := items.Create(&item{Name: "n", Quantity: i})
		require.NoError(t, err)

		if i%3 == 0 {
			all, err := items.List()
			require.NoError(t, err)
			require.NoError(t, items.Delete(all[0].ID))
		}

		all, err := items.List()
		require.NoError(t, err)
		seen := map[int64]bool{}
		for _, r := range all {
			require.False(t, seen[r.ID], "id %d held by two records", r.ID)
			seen[r.ID] = true
		}
	}
}

func TestMaxPlusOneReusesDeletedMaxID(t *testing.T) {
	items := newItems(t)

	a, err := items.Create(&item{Name: "first"})
	require.NoError(t, err)
	require.NoError(t, items.Delete(a.ID))

	b, err := items.Create(&item{Name: "second"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestMaxPlusOneAfterDelete(t *testing.T) {
	items := newItems(t)

	a, _ := items.Create(&item{Name: "a"})
	b, _ := items.Create(&item{Name: "b"})
	require.NoError(t, items.Delete(b.ID))

	c, err := items.Create(&item{Name: "c"})
	require.NoError(t, err)
	assert.Greater(t, c.ID, a.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestFindNotFound(t *testing.T) {
	items := newItems(t)
	_, err := items.Find(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateMissingLeavesCollectionUnchanged(t *testing.T) {
	items := newItems(t)
	created, err := items.Create(&item{Name: "keep", Quantity: 1})
	require.NoError(t, err)

	_, err = items.Update(99, &item{Name: "ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := items.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestUpdateReplacesByID(t *testing.T) {
	items := newItems(t)
	created, _ := items.Create(&item{Name: "old", Quantity: 1})

	updated, err := items.Update(created.ID, &item{Name: "new", Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.Name)

	got, err := items.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	items := newItems(t)
	items.Create(&item{Name: "only"}) //nolint:errcheck

	require.NoError(t, items.Delete(404))

	all, err := items.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestValidationRejectsBeforePersist(t *testing.T) {
	items := newItems(t)

	_, err := items.Create(&item{Quantity: 5}) // no name
	require.Error(t, err)
	ve, ok := store.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")

	all, err := items.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMalformedBlobDegradesToEmpty(t *testing.T) {
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Write("users", []byte("{{{ not json")))

	users := store.NewCollection[*item](store.New(backend), "users")
	all, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeedAppliedOnceAndPersisted(t *testing.T) {
	backend := store.NewMemoryBackend()
	st := store.New(backend)

	calls := 0
	st.RegisterSeed("inventory", func() any {
		calls++
		return []*item{{ID: 1, Name: "Seeded", Quantity: 3, Price: 9.99}}
	})

	items := store.NewCollection[*item](st, "inventory")

	first, err := items.List()
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Seeded", first[0].Name)

	// Second read comes from the persisted blob, not the seed function.
	second, err := items.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, ok, err := backend.Read("inventory")
	require.NoError(t, err)
	assert.True(t, ok, "seed must be written back to the backend")
}

func TestNoSeedMeansEmptyNotError(t *testing.T) {
	items := newItems(t)
	all, err := items.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecomputeRunsOnMutation(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	docs := store.NewCollection[*doc](st, "invoices", store.WithIDPolicy(store.Timestamp))

	d := &doc{Name: "INV", Lines: []line{{2, 5.00}, {1, 3.50}}}

	created, err := docs.Create(d)
	require.NoError(t, err)
	assert.InDelta(t, 13.50, created.Total, 1e-9)

	// Recomputing again must not change the value.
	created.Recompute()
	assert.InDelta(t, 13.50, created.Total, 1e-9)
}

func TestTimestampPolicyMonotonic(t *testing.T) {
	st := store.New(store.NewMemoryBackend())

	// Frozen clock: every id after the first must still be unique.
	frozen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := store.NewCollection[*doc](st, "orders",
		store.WithIDPolicy(store.Timestamp),
		store.WithClock(func() time.Time { return frozen }))

	a, err := docs.Create(&doc{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, frozen.UnixMilli(), a.ID)

	b, err := docs.Create(&doc{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, a.ID+1, b.ID)
}

func TestAdHocValues(t *testing.T) {
	st := store.New(store.NewMemoryBackend())

	var key string
	ok, err := st.GetValue("apiKey", &key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.PutValue("apiKey", "sk-12345"))
	ok, err = st.GetValue("apiKey", &key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-12345", key)

	require.NoError(t, st.DeleteValue("apiKey"))
	ok, _ = st.GetValue("apiKey", &key)
	assert.False(t, ok)
}
