package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core/evaluation"
)

type EvaluationRepository struct {
	crud[evaluation.Evaluation]
}

var _ evaluation.Repository = (*EvaluationRepository)(nil)

func NewEvaluationRepository(db *DB) *EvaluationRepository {
	return &EvaluationRepository{crud[evaluation.Evaluation]{
		db:       db,
		tbl:      db.evaluation,
		resource: evaluation.Resource,
		idOf:     func(e evaluation.Evaluation) string { return e.ID },
		withID:   func(e evaluation.Evaluation, id string) evaluation.Evaluation { e.ID = id; return e },
	}}
}

func (repo *EvaluationRepository) CreateEvaluation(_ context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	created, _ := repo.create(e, nil)
	return created, nil
}

func (repo *EvaluationRepository) QueryEvaluations(_ context.Context) ([]evaluation.Evaluation, error) {
	return repo.query(), nil
}

func (repo *EvaluationRepository) GetEvaluation(_ context.Context, id string) (evaluation.Evaluation, error) {
	return repo.get(id)
}

func (repo *EvaluationRepository) UpdateEvaluation(_ context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	updated, _, err := repo.update(e, nil)
	return updated, err
}

func (repo *EvaluationRepository) DeleteEvaluation(_ context.Context, id string) (evaluation.Evaluation, error) {
	return repo.delete(id)
}
