package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core/discharge"
)

type DischargeRepository struct {
	crud[discharge.Discharge]
}

var _ discharge.Repository = (*DischargeRepository)(nil)

func NewDischargeRepository(db *DB) *DischargeRepository {
	return &DischargeRepository{crud[discharge.Discharge]{
		db:       db,
		tbl:      db.discharge,
		resource: discharge.Resource,
		idOf:     func(d discharge.Discharge) string { return d.ID },
		withID:   func(d discharge.Discharge, id string) discharge.Discharge { d.ID = id; return d },
	}}
}

func (repo *DischargeRepository) CreateDischarge(_ context.Context, d discharge.Discharge) (discharge.Discharge, error) {
	created, _ := repo.create(d, nil)
	return created, nil
}

func (repo *DischargeRepository) QueryDischarges(_ context.Context) ([]discharge.Discharge, error) {
	return repo.query(), nil
}

func (repo *DischargeRepository) GetDischarge(_ context.Context, id string) (discharge.Discharge, error) {
	return repo.get(id)
}

func (repo *DischargeRepository) UpdateDischarge(_ context.Context, d discharge.Discharge) (discharge.Discharge, error) {
	updated, _, err := repo.update(d, nil)
	return updated, err
}

func (repo *DischargeRepository) DeleteDischarge(_ context.Context, id string) (discharge.Discharge, error) {
	return repo.delete(id)
}
