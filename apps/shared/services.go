package shared

import (
	"math/rand"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/report"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
	inmemdb "github.com/saraquenta/Sistema-EAME/storage/database/inmem"
)

// Services is the full service graph built on top of one record store.
type Services struct {
	Validate   *validator.Validate
	Translator ut.Translator

	Auth       *auth.Service
	User       *user.Service
	Trainee    *trainee.Service
	Discipline *discipline.Service
	Evaluation *evaluation.Service
	Merit      *merit.Service
	Discharge  *discharge.Service
	Activity   *activity.Service
	Report     *report.Service
}

// NewServices wires every service to db. cache may be nil, which disables report caching.
func NewServices(conf *core.Config, db *inmemdb.DB, mailSvc core.EmailService, cache report.Cache, logger core.Logger) *Services {
	validate, translator := NewValidator()

	usrSvc := user.NewService(inmemdb.NewUserRepository(db), validate)
	trSvc := trainee.NewService(inmemdb.NewTraineeRepository(db), validate)
	discSvc := discipline.NewService(inmemdb.NewDisciplineRepository(db), validate)
	evalSvc := evaluation.NewService(inmemdb.NewEvaluationRepository(db), trSvc, discSvc, validate)
	meritSvc := merit.NewService(inmemdb.NewMeritRepository(db), trSvc, validate)
	dischSvc := discharge.NewService(inmemdb.NewDischargeRepository(db), trSvc, usrSvc, mailSvc, logger, validate)
	actSvc := activity.NewService(inmemdb.NewActivityRepository(db), trSvc, validate)

	var version report.Versioner
	if cache != nil {
		version = db
	}
	reportSvc := report.NewService(
		report.Sources{
			Trainees:    trSvc,
			Disciplines: discSvc,
			Evaluations: evalSvc,
			Merits:      meritSvc,
			Discharges:  dischSvc,
		},
		cache, version, conf.Redis.ReportTTL, logger,
	)

	return &Services{
		Validate:   validate,
		Translator: translator,
		Auth:       auth.NewService(usrSvc, conf),
		User:       usrSvc,
		Trainee:    trSvc,
		Discipline: discSvc,
		Evaluation: evalSvc,
		Merit:      meritSvc,
		Discharge:  dischSvc,
		Activity:   actSvc,
		Report:     reportSvc,
	}
}

// NewStore returns a record store, seeded with the sample dataset when conf says so.
func NewStore(conf *core.Config) (*inmemdb.DB, error) {
	db := inmemdb.New()
	if !conf.Seed.Enabled {
		return db, nil
	}
	opts := inmemdb.SeedOptions{AdminPasswordHash: conf.Seed.AdminPasswordHash}
	if conf.Seed.RandomSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(conf.Seed.RandomSeed))
	}
	if err := inmemdb.Seed(db, opts); err != nil {
		return nil, err
	}
	return db, nil
}
