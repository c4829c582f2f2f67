package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core/activity"
)

type ActivityRepository struct {
	crud[activity.Activity]
}

var _ activity.Repository = (*ActivityRepository)(nil)

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{crud[activity.Activity]{
		db:       db,
		tbl:      db.activity,
		resource: activity.Resource,
		idOf:     func(a activity.Activity) string { return a.ID },
		withID:   func(a activity.Activity, id string) activity.Activity { a.ID = id; return a },
	}}
}

func (repo *ActivityRepository) CreateActivity(_ context.Context, a activity.Activity) (activity.Activity, error) {
	created, _ := repo.create(a, nil)
	return created, nil
}

func (repo *ActivityRepository) QueryActivities(_ context.Context) ([]activity.Activity, error) {
	return repo.query(), nil
}

func (repo *ActivityRepository) GetActivity(_ context.Context, id string) (activity.Activity, error) {
	return repo.get(id)
}

func (repo *ActivityRepository) UpdateActivity(_ context.Context, a activity.Activity) (activity.Activity, error) {
	updated, _, err := repo.update(a, nil)
	return updated, err
}

func (repo *ActivityRepository) DeleteActivity(_ context.Context, id string) (activity.Activity, error) {
	return repo.delete(id)
}
