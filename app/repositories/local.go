package repositories

import "github.com/shashiranjanraj/bizdesk/pkg/store"

// Local serves records from the collection store. This is the default driver
// and the only one with no external dependency: state is one JSON blob per
// collection in the configured backend.
type Local[T store.Record] struct {
	col *store.Collection[T]
}

func NewLocal[T store.Record](st *store.Store, name string, opts ...store.CollectionOption) *Local[T] {
	return &Local[T]{col: store.NewCollection[T](st, name, opts...)}
}

func (l *Local[T]) All() ([]T, error)              { return l.col.List() }
func (l *Local[T]) Find(id int64) (T, error)       { return l.col.Find(id) }
func (l *Local[T]) Count() (int, error)            { return l.col.Count() }
func (l *Local[T]) Create(rec T) (T, error)        { return l.col.Create(rec) }
func (l *Local[T]) Update(id int64, rec T) (T, error) {
	return l.col.Update(id, rec)
}
func (l *Local[T]) Delete(id int64) error { return l.col.Delete(id) }
