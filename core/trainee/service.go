package trainee

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

const Resource = "cursante"

var nowFunc = time.Now // mockable

type (
	Repository interface {
		// CreateTrainee fails with a *core.ConflictError if the CI is taken.
		CreateTrainee(ctx context.Context, tr Trainee) (Trainee, error)
		QueryTrainees(ctx context.Context) ([]Trainee, error)
		// GetTrainee fails with a *core.NotFoundError.
		GetTrainee(ctx context.Context, id string) (Trainee, error)
		// UpdateTrainee fails with a *core.ConflictError if the CI is taken by another trainee.
		UpdateTrainee(ctx context.Context, tr Trainee) (Trainee, error)
		DeleteTrainee(ctx context.Context, id string) (Trainee, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(ctx context.Context, nt NewTrainee) (Trainee, error) {
	tr := nt.toTrainee()
	if err := svc.validate.Struct(tr); err != nil {
		return Trainee{}, err
	}
	tr.CreatedAt = nowFunc().UTC()
	return svc.repo.CreateTrainee(ctx, tr)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Trainee, error) {
	return svc.repo.QueryTrainees(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Trainee, error) {
	return svc.repo.GetTrainee(ctx, id)
}

// Update merges ut onto the stored Trainee and validates the result before saving it.
func (svc *Service) Update(ctx context.Context, id string, ut UpdateTrainee) (Trainee, error) {
	orig, err := svc.repo.GetTrainee(ctx, id)
	if err != nil {
		return Trainee{}, err
	}
	tr := ut.merge(orig)
	if err := svc.validate.Struct(tr); err != nil {
		return Trainee{}, err
	}
	return svc.repo.UpdateTrainee(ctx, tr)
}

// SetStatus changes a Trainee's status only.
func (svc *Service) SetStatus(ctx context.Context, id, status string) (Trainee, error) {
	if !core.Contains(Statuses, status) {
		return Trainee{}, core.NewValidationError(nil, core.FieldError{Field: "estado", Error: "invalid status"})
	}
	return svc.Update(ctx, id, UpdateTrainee{Status: &status})
}

// Delete hard-deletes a Trainee. Records referencing it are left in place.
func (svc *Service) Delete(ctx context.Context, id string) (Trainee, error) {
	return svc.repo.DeleteTrainee(ctx, id)
}
