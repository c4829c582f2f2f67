// Package auth issues and verifies session tokens and holds the authorization policy.
package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPermissionDenied   = errors.New("permission denied")

	SigningMethod = jwt.SigningMethodHS256
	nowFunc       = time.Now // mockable
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	FullName string `json:"nombre_completo,omitempty"`
}

type (
	// UserFinder resolves the live user record behind a token.
	UserFinder interface {
		GetByID(ctx context.Context, id string) (user.User, error)
		GetByEmail(ctx context.Context, email string) (user.User, error)
		SetLastLogin(ctx context.Context, usr user.User) (user.User, error)
	}

	Service struct {
		users      UserFinder
		secretKey  []byte
		issuer     string
		expiration time.Duration
	}
)

func NewService(users UserFinder, conf *core.Config) *Service {
	return &Service{
		users:      users,
		secretKey:  []byte(conf.SecretKey),
		issuer:     conf.AppName,
		expiration: conf.Server.JWTExpirationDelta,
	}
}

// SecretKey is the HMAC key tokens are signed with.
func (svc *Service) SecretKey() []byte { return svc.secretKey }

func (svc *Service) claimsFor(usr user.User) *Claims {
	now := nowFunc()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    svc.issuer,
			Subject:   usr.ID,
			ExpiresAt: now.Add(svc.expiration).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email:    usr.Email,
		Role:     usr.Role,
		FullName: usr.FullName,
	}
}

// Issue generates a signed JWT encoding the user's id, role and display name.
func (svc *Service) Issue(usr user.User) (string, error) {
	token := jwt.NewWithClaims(SigningMethod, svc.claimsFor(usr))
	ss, err := token.SignedString(svc.secretKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// Parse checks the token's signature and expiry, without looking the user up.
func (svc *Service) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != SigningMethod.Alg() {
			return nil, ErrInvalidToken
		}
		return svc.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Resolve re-reads the user behind already verified claims: the account must still exist and be active.
func (svc *Service) Resolve(ctx context.Context, claims *Claims) (user.User, error) {
	usr, err := svc.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if core.IsNotFound(err) {
			return user.User{}, ErrInvalidToken
		}
		return user.User{}, errors.Wrap(err, "finding user by ID")
	}
	if !usr.IsActive {
		return user.User{}, ErrInvalidToken
	}
	return usr, nil
}

// Verify validates signature and expiry then resolves the live, active user.
func (svc *Service) Verify(ctx context.Context, tokenStr string) (user.User, error) {
	claims, err := svc.Parse(tokenStr)
	if err != nil {
		return user.User{}, err
	}
	return svc.Resolve(ctx, claims)
}

// Refresh issues a token with a fresh expiry for the holder of a currently valid token.
// The old token is not revoked.
func (svc *Service) Refresh(ctx context.Context, tokenStr string) (string, error) {
	usr, err := svc.Verify(ctx, tokenStr)
	if err != nil {
		return "", err
	}
	return svc.Issue(usr)
}

// Login checks credentials and returns a token along with the user profile.
func (svc *Service) Login(ctx context.Context, email, pwd string) (string, user.User, error) {
	usr, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if core.IsNotFound(err) {
			return "", user.User{}, ErrInvalidCredentials
		}
		return "", user.User{}, errors.Wrap(err, "finding user by email")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return "", user.User{}, ErrInvalidCredentials
	}
	if !usr.IsActive {
		return "", user.User{}, ErrAccountInactive
	}
	if usr, err = svc.users.SetLastLogin(ctx, usr); err != nil {
		return "", user.User{}, errors.Wrap(err, "setting lastLogin")
	}
	token, err := svc.Issue(usr)
	if err != nil {
		return "", user.User{}, err
	}
	return token, usr, nil
}
