package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/saraquenta/Sistema-EAME/core"
)

// Roles
const (
	RoleAdmin     = "administrador"
	RoleChief     = "jefe_evaluaciones"
	RoleCommander = "comandante"
)

var (
	AllRoles = []string{RoleAdmin, RoleChief, RoleCommander}

	Roles = []Role{
		{Name: "Administrador", Value: RoleAdmin},
		{Name: "Jefe de Evaluaciones", Value: RoleChief},
		{Name: "Comandante", Value: RoleCommander},
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FullName     string     `json:"nombre_completo"`
	IsActive     bool       `json:"activo"`
	PasswordHash []byte     `json:"-"`
	CreatedAt    time.Time  `json:"creado_en"`               // UTC
	LastLogin    *time.Time `json:"ultimo_acceso,omitempty"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsChief() bool     { return u.Role == RoleChief }
func (u *User) IsCommander() bool { return u.Role == RoleCommander }

// NewUser contains information needed to create a new User.
type NewUser struct {
	FullName        string `json:"nombre_completo" validate:"required,alphaspace"`
	Username        string `json:"username" validate:"required,min=4,alphanum_"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,role"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Clean() {
	nu.FullName = core.CleanString(nu.FullName)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
}

// NewPassword is a candidate password checked against the password policy outside of user creation.
type NewPassword struct {
	Password string `json:"password" validate:"required"`
	FullName string `json:"-"`
	Username string `json:"-"`
	Email    string `json:"-"`
}

// UpdateStatus toggles a User's active flag.
type UpdateStatus struct {
	IsActive *bool `json:"activo" validate:"required"`
}
