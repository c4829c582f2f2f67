// Package testutil builds fresh record stores, services and fixtures for tests.
package testutil

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/saraquenta/Sistema-EAME/apps/shared"
	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
	emailsvc "github.com/saraquenta/Sistema-EAME/services/email"
	logsvc "github.com/saraquenta/Sistema-EAME/services/logger"
	inmemdb "github.com/saraquenta/Sistema-EAME/storage/database/inmem"
)

// SeedRandSeed makes seeded stores reproducible across runs.
const SeedRandSeed = 2024

type Env struct {
	Conf    *core.Config
	DB      *inmemdb.DB
	Svcs    *shared.Services
	MailSvc *emailsvc.ConsoleService
	Logger  core.Logger
}

// NewEnv returns services over an empty record store, with a silent synchronous mailer and no report cache.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	conf := core.NewTestConfig()
	db := inmemdb.New()
	logger := logsvc.NewDiscardLogger()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	return &Env{
		Conf:    conf,
		DB:      db,
		Svcs:    shared.NewServices(conf, db, mailSvc, nil, logger),
		MailSvc: mailSvc,
		Logger:  logger,
	}
}

// NewSeededEnv is NewEnv over the reproducible sample dataset.
func NewSeededEnv(t *testing.T) *Env {
	t.Helper()
	env := NewEnv(t)
	if err := inmemdb.Seed(env.DB, inmemdb.SeedOptions{Rand: rand.New(rand.NewSource(SeedRandSeed))}); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	return env
}

// CreateUser stores a user directly, bypassing the password policy.
func CreateUser(t *testing.T, db *inmemdb.DB, name, uname, email, pwd, role string, isActive bool) user.User {
	t.Helper()
	usr := user.User{
		FullName:  name,
		Username:  uname,
		Email:     email,
		Role:      role,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := inmemdb.NewUserRepository(db).CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateTrainee(t *testing.T, svcs *shared.Services, name, ci, cohort string) trainee.Trainee {
	t.Helper()
	tr, err := svcs.Trainee.Create(context.Background(), trainee.NewTrainee{
		FullName:   name,
		CI:         ci,
		BirthDate:  "1995-03-15",
		Rank:       "Soldado",
		EnrolledOn: cohort + "-01-15",
		Cohort:     cohort,
	})
	if err != nil {
		t.Fatalf("CreateTrainee() failed: %v", err)
	}
	return tr
}

func CreateDiscipline(t *testing.T, svcs *shared.Services, name string, theory, practice, other int) discipline.Discipline {
	t.Helper()
	d, err := svcs.Discipline.Create(context.Background(), discipline.NewDiscipline{
		Name:           name,
		Type:           "Arte Marcial",
		TheoryWeight:   &theory,
		PracticeWeight: &practice,
		OtherWeight:    &other,
	})
	if err != nil {
		t.Fatalf("CreateDiscipline() failed: %v", err)
	}
	return d
}
