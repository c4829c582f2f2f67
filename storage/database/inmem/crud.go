package inmemdb

import "github.com/saraquenta/Sistema-EAME/core"

// crud implements the list/get/insert/replace/delete contract shared by every repository.
type crud[T any] struct {
	db       *DB
	tbl      *table[T]
	resource string
	idOf     func(T) string
	withID   func(T, string) T
}

func (c crud[T]) create(row T, conflict func(T) bool) (T, bool) {
	id := newID()
	row = c.withID(row, id)
	if !c.tbl.insert(id, row, conflict) {
		var zero T
		return zero, false
	}
	c.db.touch()
	return row, true
}

func (c crud[T]) query() []T {
	return c.tbl.all()
}

func (c crud[T]) get(id string) (T, error) {
	if row, ok := c.tbl.get(id); ok {
		return row, nil
	}
	var zero T
	return zero, core.NewNotFoundError(c.resource, id)
}

// update replaces the stored row; conflict (optional) is tested against every other row.
func (c crud[T]) update(row T, conflict func(T) bool) (T, bool, error) {
	id := c.idOf(row)
	found, ok := c.tbl.replace(id, row, conflict)
	if !found {
		var zero T
		return zero, false, core.NewNotFoundError(c.resource, id)
	}
	if !ok {
		var zero T
		return zero, false, nil
	}
	c.db.touch()
	return row, true, nil
}

func (c crud[T]) delete(id string) (T, error) {
	row, ok := c.tbl.remove(id)
	if !ok {
		var zero T
		return zero, core.NewNotFoundError(c.resource, id)
	}
	c.db.touch()
	return row, nil
}
