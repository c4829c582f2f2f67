package activity

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

const Resource = "actividad"

type (
	Repository interface {
		CreateActivity(ctx context.Context, a Activity) (Activity, error)
		QueryActivities(ctx context.Context) ([]Activity, error)
		// GetActivity fails with a *core.NotFoundError.
		GetActivity(ctx context.Context, id string) (Activity, error)
		UpdateActivity(ctx context.Context, a Activity) (Activity, error)
		DeleteActivity(ctx context.Context, id string) (Activity, error)
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

// Create records an Activity on behalf of the user identified by userID.
func (svc *Service) Create(ctx context.Context, na NewActivity, userID string) (Activity, error) {
	a := na.toActivity(userID)
	if err := svc.validate.Struct(a); err != nil {
		return Activity{}, err
	}
	if _, err := svc.trainees.Get(ctx, a.TraineeID); err != nil {
		return Activity{}, errors.Wrap(err, "finding trainee")
	}
	return svc.repo.CreateActivity(ctx, a)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Activity, error) {
	return svc.repo.QueryActivities(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Activity, error) {
	return svc.repo.GetActivity(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ua UpdateActivity) (Activity, error) {
	orig, err := svc.repo.GetActivity(ctx, id)
	if err != nil {
		return Activity{}, err
	}
	a := ua.merge(orig)
	if err := svc.validate.Struct(a); err != nil {
		return Activity{}, err
	}
	if ua.TraineeID != nil {
		if _, err := svc.trainees.Get(ctx, a.TraineeID); err != nil {
			return Activity{}, errors.Wrap(err, "finding trainee")
		}
	}
	return svc.repo.UpdateActivity(ctx, a)
}

func (svc *Service) Delete(ctx context.Context, id string) (Activity, error) {
	return svc.repo.DeleteActivity(ctx, id)
}
