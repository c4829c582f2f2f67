package discharge

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

const Resource = "baja"

type (
	Repository interface {
		CreateDischarge(ctx context.Context, d Discharge) (Discharge, error)
		QueryDischarges(ctx context.Context) ([]Discharge, error)
		// GetDischarge fails with a *core.NotFoundError.
		GetDischarge(ctx context.Context, id string) (Discharge, error)
		UpdateDischarge(ctx context.Context, d Discharge) (Discharge, error)
		DeleteDischarge(ctx context.Context, id string) (Discharge, error)
	}

	TraineeService interface {
		Get(ctx context.Context, id string) (trainee.Trainee, error)
		SetStatus(ctx context.Context, id, status string) (trainee.Trainee, error)
	}

	UserFinder interface {
		GetByID(ctx context.Context, id string) (user.User, error)
		QueryActiveByRole(ctx context.Context, role string) ([]user.User, error)
	}

	Service struct {
		repo     Repository
		trainees TraineeService
		users    UserFinder
		mailSvc  core.EmailService
		logger   core.Logger
		validate *validator.Validate
	}
)

func NewService(
	repo Repository,
	trainees TraineeService,
	users UserFinder,
	mailSvc core.EmailService,
	logger core.Logger,
	validate *validator.Validate,
) *Service {
	return &Service{
		repo:     repo,
		trainees: trainees,
		users:    users,
		mailSvc:  mailSvc,
		logger:   logger,
		validate: validate,
	}
}

// Create records a Discharge then flips the Trainee's status to "baja".
// The two writes are independent: if the status change fails the Discharge stays recorded.
func (svc *Service) Create(ctx context.Context, nd NewDischarge, userID string) (Discharge, error) {
	d := nd.toDischarge(userID)
	if err := svc.validate.Struct(d); err != nil {
		return Discharge{}, err
	}
	tr, err := svc.trainees.Get(ctx, d.TraineeID)
	if err != nil {
		return Discharge{}, errors.Wrap(err, "finding trainee")
	}

	d, err = svc.repo.CreateDischarge(ctx, d)
	if err != nil {
		return Discharge{}, errors.Wrap(err, "creating discharge")
	}
	if tr, err = svc.trainees.SetStatus(ctx, d.TraineeID, trainee.StatusDischarged); err != nil {
		return d, errors.Wrap(err, "setting trainee status")
	}

	svc.notifyCommanders(ctx, d, tr)
	return d, nil
}

// notifyCommanders emails active commanders about d. Failures are logged only.
func (svc *Service) notifyCommanders(ctx context.Context, d Discharge, tr trainee.Trainee) {
	if svc.mailSvc == nil {
		return
	}
	commanders, err := svc.users.QueryActiveByRole(ctx, user.RoleCommander)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("querying commanders: %v", err), err)
		return
	}
	if len(commanders) == 0 {
		return
	}

	recordedBy := d.UserID
	if usr, err := svc.users.GetByID(ctx, d.UserID); err == nil {
		recordedBy = usr.FullName
	}

	to := make([]mail.Address, 0, len(commanders))
	for _, c := range commanders {
		if c.Email != "" {
			to = append(to, mail.Address{Name: c.FullName, Address: c.Email})
		}
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           to,
		Subject:      "Baja de cursante: " + tr.FullName,
		TemplateName: "discharge_notice",
		TemplateData: noticeData{
			TraineeName: tr.FullName,
			TraineeCI:   tr.CI,
			TraineeRank: tr.Rank,
			Reason:      d.Reason,
			Date:        d.Date,
			Notes:       d.Notes,
			RecordedBy:  recordedBy,
		},
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Discharge, error) {
	return svc.repo.QueryDischarges(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Discharge, error) {
	return svc.repo.GetDischarge(ctx, id)
}

// Update merges ud onto the stored Discharge. Trainee statuses are left untouched.
func (svc *Service) Update(ctx context.Context, id string, ud UpdateDischarge) (Discharge, error) {
	orig, err := svc.repo.GetDischarge(ctx, id)
	if err != nil {
		return Discharge{}, err
	}
	d := ud.merge(orig)
	if err := svc.validate.Struct(d); err != nil {
		return Discharge{}, err
	}
	if ud.TraineeID != nil {
		if _, err := svc.trainees.Get(ctx, d.TraineeID); err != nil {
			return Discharge{}, errors.Wrap(err, "finding trainee")
		}
	}
	return svc.repo.UpdateDischarge(ctx, d)
}

// Delete removes a Discharge. The Trainee keeps its current status.
func (svc *Service) Delete(ctx context.Context, id string) (Discharge, error) {
	return svc.repo.DeleteDischarge(ctx, id)
}
