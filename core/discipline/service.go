package discipline

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

const Resource = "disciplina"

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateDiscipline(ctx context.Context, d Discipline) (Discipline, error)
		QueryDisciplines(ctx context.Context) ([]Discipline, error)
		// GetDiscipline fails with a *core.NotFoundError.
		GetDiscipline(ctx context.Context, id string) (Discipline, error)
		UpdateDiscipline(ctx context.Context, d Discipline) (Discipline, error)
		DeleteDiscipline(ctx context.Context, id string) (Discipline, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(ctx context.Context, nd NewDiscipline) (Discipline, error) {
	if err := svc.validate.Struct(nd); err != nil {
		return Discipline{}, err
	}
	d := nd.toDiscipline()
	if err := svc.validate.Struct(d); err != nil {
		return Discipline{}, err
	}
	d.CreatedAt = nowFunc().UTC()
	return svc.repo.CreateDiscipline(ctx, d)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Discipline, error) {
	return svc.repo.QueryDisciplines(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Discipline, error) {
	return svc.repo.GetDiscipline(ctx, id)
}

// Update merges ud onto the stored Discipline; the merged weights must still sum to 100.
func (svc *Service) Update(ctx context.Context, id string, ud UpdateDiscipline) (Discipline, error) {
	orig, err := svc.repo.GetDiscipline(ctx, id)
	if err != nil {
		return Discipline{}, err
	}
	d := ud.merge(orig)
	if err := svc.validate.Struct(d); err != nil {
		return Discipline{}, err
	}
	return svc.repo.UpdateDiscipline(ctx, d)
}

func (svc *Service) Delete(ctx context.Context, id string) (Discipline, error) {
	return svc.repo.DeleteDiscipline(ctx, id)
}
