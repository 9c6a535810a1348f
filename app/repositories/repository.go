// Package repositories abstracts where dashboard records live. Three drivers
// satisfy the same interface:
//
//   - local:    the collection store (the default; one JSON blob per collection)
//   - remote:   an upstream BizDesk API, reached over HTTP
//   - database: relational tables through GORM
//
// Services depend only on Repository[T]; the driver is picked once from
// REPO_DRIVER at boot.
package repositories

import (
	"reflect"

	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// Repository is the CRUD surface every driver implements. Find and Update
// return store.ErrNotFound when the id is absent; Create and Update return a
// *store.ValidationError when the record fails validation.
type Repository[T store.Record] interface {
	All() ([]T, error)
	Find(id int64) (T, error)
	Count() (int, error)
	Create(rec T) (T, error)
	Update(id int64, rec T) (T, error)
	Delete(id int64) error
}

// New picks the driver for one collection from REPO_DRIVER. name is both the
// collection key in the store and the resource path segment on the remote API.
func New[T store.Record](st *store.Store, name string, opts ...store.CollectionOption) Repository[T] {
	switch config.RepoDriver() {
	case "remote":
		return NewRemote[T](config.RemoteBaseURL(), name, config.RemoteToken())
	case "database":
		return NewDatabase[T]()
	default:
		return NewLocal[T](st, name, opts...)
	}
}

// newRecord allocates a fresh record. T is a pointer type, so a plain zero
// value would be nil; reflect gives us a usable instance for decoding.
func newRecord[T store.Record]() T {
	var t T
	return reflect.New(reflect.TypeOf(t).Elem()).Interface().(T)
}
