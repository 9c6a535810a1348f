package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bizdesk/pkg/orm"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
	"github.com/shashiranjanraj/bizdesk/pkg/validate"
)

// Database serves records from relational tables through GORM. Validation and
// derived-field recomputation run here so the driver honours the same
// invariants as the collection store.
type Database[T store.Record] struct{}

func NewDatabase[T store.Record]() *Database[T] {
	return &Database[T]{}
}

func (d *Database[T]) All() ([]T, error) {
	var recs []T
	err := orm.DB().Model(newRecord[T]()).Order("id").Get(&recs)
	return recs, err
}

func (d *Database[T]) Find(id int64) (T, error) {
	rec := newRecord[T]()
	err := orm.DB().Model(rec).Where("id = ?", id).First(rec)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero T
		return zero, store.ErrNotFound
	}
	return rec, err
}

func (d *Database[T]) Count() (int, error) {
	n, err := orm.DB().Model(newRecord[T]()).Count()
	return int(n), err
}

func (d *Database[T]) Create(rec T) (T, error) {
	var zero T
	if errs := validate.Struct(rec); validate.HasErrors(errs) {
		return zero, &store.ValidationError{Fields: errs}
	}
	if rc, ok := any(rec).(store.Recomputer); ok {
		rc.Recompute()
	}
	rec.SetID(0) // let the database assign the id
	if err := orm.DB().Create(rec); err != nil {
		return zero, err
	}
	return rec, nil
}

func (d *Database[T]) Update(id int64, rec T) (T, error) {
	var zero T
	if _, err := d.Find(id); err != nil {
		return zero, err
	}
	rec.SetID(id)
	if errs := validate.Struct(rec); validate.HasErrors(errs) {
		return zero, &store.ValidationError{Fields: errs}
	}
	if rc, ok := any(rec).(store.Recomputer); ok {
		rc.Recompute()
	}
	if err := orm.DB().Save(rec); err != nil {
		return zero, err
	}
	return rec, nil
}

func (d *Database[T]) Delete(id int64) error {
	rec := newRecord[T]()
	rec.SetID(id)
	// Deleting an absent row is a no-op, matching the collection store.
	return orm.DB().Delete(rec)
}
