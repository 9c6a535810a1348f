package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

func newLocalProducts(t *testing.T) Repository[*models.Product] {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	return NewLocal[*models.Product](st, "inventory")
}

func TestLocalCreateFindUpdateDelete(t *testing.T) {
	repo := newLocalProducts(t)

	created, err := repo.Create(&models.Product{Name: "Widget", Quantity: 5, Price: 9.99})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := repo.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)

	found.Quantity = 3
	updated, err := repo.Update(found.ID, found)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.Find(created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLocalCountMatchesAll(t *testing.T) {
	repo := newLocalProducts(t)

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(&models.Product{Name: name})
		require.NoError(t, err)
	}

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLocalValidationError(t *testing.T) {
	repo := newLocalProducts(t)

	_, err := repo.Create(&models.Product{Name: ""})
	var verr *store.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	users := NewUserRepository(NewLocal[*models.User](st, "users"))

	_, err := users.Create(&models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	u, err := users.FindByEmail("ADA@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)

	_, err = users.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
