package merit

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

const Resource = "merito"

type (
	Repository interface {
		CreateMerit(ctx context.Context, m Merit) (Merit, error)
		QueryMerits(ctx context.Context) ([]Merit, error)
		// GetMerit fails with a *core.NotFoundError.
		GetMerit(ctx context.Context, id string) (Merit, error)
		UpdateMerit(ctx context.Context, m Merit) (Merit, error)
		DeleteMerit(ctx context.Context, id string) (Merit, error)
	}

	TraineeFinder interface {
		Get(ctx context.Context, id string) (trainee.Trainee, error)
	}

	Service struct {
		repo     Repository
		trainees TraineeFinder
		validate *validator.Validate
	}
)

func NewService(repo Repository, trainees TraineeFinder, validate *validator.Validate) *Service {
	return &Service{repo: repo, trainees: trainees, validate: validate}
}

// Create grants a Merit on behalf of the user identified by userID.
func (svc *Service) Create(ctx context.Context, nm NewMerit, userID string) (Merit, error) {
	m := nm.toMerit(userID)
	if err := svc.validate.Struct(m); err != nil {
		return Merit{}, err
	}
	if _, err := svc.trainees.Get(ctx, m.TraineeID); err != nil {
		return Merit{}, errors.Wrap(err, "finding trainee")
	}
	return svc.repo.CreateMerit(ctx, m)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Merit, error) {
	return svc.repo.QueryMerits(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Merit, error) {
	return svc.repo.GetMerit(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, um UpdateMerit) (Merit, error) {
	orig, err := svc.repo.GetMerit(ctx, id)
	if err != nil {
		return Merit{}, err
	}
	m := um.merge(orig)
	if err := svc.validate.Struct(m); err != nil {
		return Merit{}, err
	}
	if um.TraineeID != nil {
		if _, err := svc.trainees.Get(ctx, m.TraineeID); err != nil {
			return Merit{}, errors.Wrap(err, "finding trainee")
		}
	}
	return svc.repo.UpdateMerit(ctx, m)
}

func (svc *Service) Delete(ctx context.Context, id string) (Merit, error) {
	return svc.repo.DeleteMerit(ctx, id)
}
