package user

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
)

var nowFunc = time.Now // mockable

type (
	Repository interface {
		// CreateUser fails with a *core.ConflictError if the email or username is taken.
		// Lookups fail with a *core.NotFoundError.
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	nu.Clean()
	if err := svc.validate.Struct(nu); err != nil {
		return User{}, err
	}

	usr := User{
		FullName:  nu.FullName,
		Username:  nu.Username,
		Email:     nu.Email,
		Role:      nu.Role,
		IsActive:  true,
		CreatedAt: nowFunc().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

// CheckPassword applies the password policy to np.
func (svc *Service) CheckPassword(np NewPassword) error {
	return svc.validate.Struct(np)
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryUsers(ctx)
}

// QueryActiveByRole returns the active users holding role.
func (svc *Service) QueryActiveByRole(ctx context.Context, role string) ([]User, error) {
	users, err := svc.repo.QueryUsers(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]User, 0, len(users))
	for _, usr := range users {
		if usr.IsActive && usr.Role == role {
			filtered = append(filtered, usr)
		}
	}
	return filtered, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) SetLastLogin(ctx context.Context, usr User) (User, error) {
	now := nowFunc().UTC()
	usr.LastLogin = &now
	return svc.repo.UpdateUser(ctx, usr)
}

// SetActive (de)activates a User. Tokens of a deactivated User stop verifying immediately.
func (svc *Service) SetActive(ctx context.Context, id string, data UpdateStatus) (User, error) {
	if err := svc.validate.Struct(data); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	usr.IsActive = *data.IsActive
	return svc.repo.UpdateUser(ctx, usr)
}
