package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core/merit"
)

type MeritRepository struct {
	crud[merit.Merit]
}

var _ merit.Repository = (*MeritRepository)(nil)

func NewMeritRepository(db *DB) *MeritRepository {
	return &MeritRepository{crud[merit.Merit]{
		db:       db,
		tbl:      db.merit,
		resource: merit.Resource,
		idOf:     func(m merit.Merit) string { return m.ID },
		withID:   func(m merit.Merit, id string) merit.Merit { m.ID = id; return m },
	}}
}

func (repo *MeritRepository) CreateMerit(_ context.Context, m merit.Merit) (merit.Merit, error) {
	created, _ := repo.create(m, nil)
	return created, nil
}

func (repo *MeritRepository) QueryMerits(_ context.Context) ([]merit.Merit, error) {
	return repo.query(), nil
}

func (repo *MeritRepository) GetMerit(_ context.Context, id string) (merit.Merit, error) {
	return repo.get(id)
}

func (repo *MeritRepository) UpdateMerit(_ context.Context, m merit.Merit) (merit.Merit, error) {
	updated, _, err := repo.update(m, nil)
	return updated, err
}

func (repo *MeritRepository) DeleteMerit(_ context.Context, id string) (merit.Merit, error) {
	return repo.delete(id)
}
