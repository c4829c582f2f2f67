package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core/discipline"
)

type DisciplineRepository struct {
	crud[discipline.Discipline]
}

var _ discipline.Repository = (*DisciplineRepository)(nil)

func NewDisciplineRepository(db *DB) *DisciplineRepository {
	return &DisciplineRepository{crud[discipline.Discipline]{
		db:       db,
		tbl:      db.discipline,
		resource: discipline.Resource,
		idOf:     func(d discipline.Discipline) string { return d.ID },
		withID:   func(d discipline.Discipline, id string) discipline.Discipline { d.ID = id; return d },
	}}
}

func (repo *DisciplineRepository) CreateDiscipline(_ context.Context, d discipline.Discipline) (discipline.Discipline, error) {
	created, _ := repo.create(d, nil)
	return created, nil
}

func (repo *DisciplineRepository) QueryDisciplines(_ context.Context) ([]discipline.Discipline, error) {
	return repo.query(), nil
}

func (repo *DisciplineRepository) GetDiscipline(_ context.Context, id string) (discipline.Discipline, error) {
	return repo.get(id)
}

func (repo *DisciplineRepository) UpdateDiscipline(_ context.Context, d discipline.Discipline) (discipline.Discipline, error) {
	updated, _, err := repo.update(d, nil)
	return updated, err
}

func (repo *DisciplineRepository) DeleteDiscipline(_ context.Context, id string) (discipline.Discipline, error) {
	return repo.delete(id)
}
