// Package inmemdb is the process-local record store. Its contents live as long as the process.
package inmemdb

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

// DB holds one table per entity. Build one per process (or per test) and inject it into the repositories.
type DB struct {
	version atomic.Uint64

	user       *table[user.User]
	trainee    *table[trainee.Trainee]
	discipline *table[discipline.Discipline]
	evaluation *table[evaluation.Evaluation]
	merit      *table[merit.Merit]
	discharge  *table[discharge.Discharge]
	activity   *table[activity.Activity]
}

func New() *DB {
	return &DB{
		user:       newTable[user.User](),
		trainee:    newTable[trainee.Trainee](),
		discipline: newTable[discipline.Discipline](),
		evaluation: newTable[evaluation.Evaluation](),
		merit:      newTable[merit.Merit](),
		discharge:  newTable[discharge.Discharge](),
		activity:   newTable[activity.Activity](),
	}
}

// Version is bumped on every write to any table.
func (db *DB) Version() uint64 {
	return db.version.Load()
}

func (db *DB) touch() {
	db.version.Add(1)
}

var newID = func() string { return uuid.NewString() } // mockable

// table is an RWMutex guarded map that remembers insertion order.
type table[T any] struct {
	mutex sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

// all returns the rows in insertion order.
func (t *table[T]) all() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, t.rows[id])
	}
	return rows
}

func (t *table[T]) get(id string) (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// insert adds row under id unless an existing row makes conflict return true.
func (t *table[T]) insert(id string, row T, conflict func(T) bool) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if conflict != nil {
		for _, existing := range t.rows {
			if conflict(existing) {
				return false
			}
		}
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return true
}

// replace overwrites the row stored under id unless another row makes conflict return true.
func (t *table[T]) replace(id string, row T, conflict func(T) bool) (found, ok bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, found = t.rows[id]; !found {
		return false, false
	}
	if conflict != nil {
		for otherID, existing := range t.rows {
			if otherID != id && conflict(existing) {
				return true, false
			}
		}
	}
	t.rows[id] = row
	return true, true
}

func (t *table[T]) remove(id string) (T, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return row, true
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.rows)
}
