package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

type TraineeRepository struct {
	crud[trainee.Trainee]
}

var _ trainee.Repository = (*TraineeRepository)(nil)

func NewTraineeRepository(db *DB) *TraineeRepository {
	return &TraineeRepository{crud[trainee.Trainee]{
		db:       db,
		tbl:      db.trainee,
		resource: trainee.Resource,
		idOf:     func(t trainee.Trainee) string { return t.ID },
		withID:   func(t trainee.Trainee, id string) trainee.Trainee { t.ID = id; return t },
	}}
}

func sameCI(tr trainee.Trainee) func(trainee.Trainee) bool {
	return func(other trainee.Trainee) bool { return other.CI == tr.CI }
}

// CreateTrainee checks CI uniqueness and inserts under the same lock.
func (repo *TraineeRepository) CreateTrainee(_ context.Context, tr trainee.Trainee) (trainee.Trainee, error) {
	created, ok := repo.create(tr, sameCI(tr))
	if !ok {
		return trainee.Trainee{}, core.NewConflictError(trainee.Resource, "ci", tr.CI)
	}
	return created, nil
}

func (repo *TraineeRepository) QueryTrainees(_ context.Context) ([]trainee.Trainee, error) {
	return repo.query(), nil
}

func (repo *TraineeRepository) GetTrainee(_ context.Context, id string) (trainee.Trainee, error) {
	return repo.get(id)
}

func (repo *TraineeRepository) UpdateTrainee(_ context.Context, tr trainee.Trainee) (trainee.Trainee, error) {
	updated, ok, err := repo.update(tr, sameCI(tr))
	if err != nil {
		return trainee.Trainee{}, err
	}
	if !ok {
		return trainee.Trainee{}, core.NewConflictError(trainee.Resource, "ci", tr.CI)
	}
	return updated, nil
}

func (repo *TraineeRepository) DeleteTrainee(_ context.Context, id string) (trainee.Trainee, error) {
	return repo.delete(id)
}
