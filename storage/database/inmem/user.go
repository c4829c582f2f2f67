package inmemdb

import (
	"context"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

type UserRepository struct {
	crud[user.User]
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{crud[user.User]{
		db:       db,
		tbl:      db.user,
		resource: "usuario",
		idOf:     func(u user.User) string { return u.ID },
		withID:   func(u user.User, id string) user.User { u.ID = id; return u },
	}}
}

func userConflict(usr user.User) func(user.User) bool {
	return func(other user.User) bool {
		return other.Email == usr.Email || (usr.Username != "" && other.Username == usr.Username)
	}
}

func (repo *UserRepository) conflictErr(usr user.User) error {
	if _, taken := repo.tbl.find(func(o user.User) bool { return o.Email == usr.Email && o.ID != usr.ID }); taken {
		return core.NewConflictError("usuario", "email", usr.Email)
	}
	return core.NewConflictError("usuario", "username", usr.Username)
}

func (repo *UserRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	created, ok := repo.create(usr, userConflict(usr))
	if !ok {
		return user.User{}, repo.conflictErr(usr)
	}
	return created, nil
}

func (repo *UserRepository) QueryUsers(_ context.Context) ([]user.User, error) {
	return repo.query(), nil
}

func (repo *UserRepository) GetUserByID(_ context.Context, id string) (user.User, error) {
	return repo.get(id)
}

func (repo *UserRepository) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if usr, ok := repo.tbl.find(func(u user.User) bool { return u.Email == email }); ok {
		return usr, nil
	}
	return user.User{}, core.NewNotFoundError("usuario", email)
}

func (repo *UserRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	updated, ok, err := repo.update(usr, userConflict(usr))
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, repo.conflictErr(usr)
	}
	return updated, nil
}
