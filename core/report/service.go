// Package report computes the read-only aggregations shown on the dashboards.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/grading"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

var nowFunc = time.Now // mockable

type (
	TraineeLister interface {
		QueryAll(ctx context.Context) ([]trainee.Trainee, error)
	}
	DisciplineLister interface {
		QueryAll(ctx context.Context) ([]discipline.Discipline, error)
	}
	EvaluationLister interface {
		QueryAll(ctx context.Context) ([]evaluation.Evaluation, error)
	}
	MeritLister interface {
		QueryAll(ctx context.Context) ([]merit.Merit, error)
	}
	DischargeLister interface {
		QueryAll(ctx context.Context) ([]discharge.Discharge, error)
	}

	// Cache stores computed reports. Any Get error is treated as a miss.
	Cache interface {
		Get(ctx context.Context, key string, dest interface{}) error
		Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	}

	// Versioner returns a number that changes whenever the underlying records do.
	Versioner interface {
		Version() uint64
	}

	Sources struct {
		Trainees    TraineeLister
		Disciplines DisciplineLister
		Evaluations EvaluationLister
		Merits      MeritLister
		Discharges  DischargeLister
	}

	Service struct {
		src     Sources
		cache   Cache
		version Versioner
		ttl     time.Duration
		logger  core.Logger
	}

	// dataset is a snapshot of every record a report reads.
	dataset struct {
		trainees    []trainee.Trainee
		disciplines []discipline.Discipline
		evaluations []evaluation.Evaluation
		merits      []merit.Merit
		discharges  []discharge.Discharge
	}
)

// NewService builds the report service. cache and version may be nil, which disables caching.
func NewService(src Sources, cache Cache, version Versioner, ttl time.Duration, logger core.Logger) *Service {
	return &Service{src: src, cache: cache, version: version, ttl: ttl, logger: logger}
}

func (svc *Service) load(ctx context.Context) (ds dataset, err error) {
	if ds.trainees, err = svc.src.Trainees.QueryAll(ctx); err != nil {
		return ds, errors.Wrap(err, "querying trainees")
	}
	if ds.disciplines, err = svc.src.Disciplines.QueryAll(ctx); err != nil {
		return ds, errors.Wrap(err, "querying disciplines")
	}
	if ds.evaluations, err = svc.src.Evaluations.QueryAll(ctx); err != nil {
		return ds, errors.Wrap(err, "querying evaluations")
	}
	if ds.merits, err = svc.src.Merits.QueryAll(ctx); err != nil {
		return ds, errors.Wrap(err, "querying merits")
	}
	if ds.discharges, err = svc.src.Discharges.QueryAll(ctx); err != nil {
		return ds, errors.Wrap(err, "querying discharges")
	}
	return ds, nil
}

// cached serves key from the cache or fills dest with compute and stores it.
func (svc *Service) cached(ctx context.Context, key string, dest interface{}, compute func() error) error {
	if svc.cache == nil || svc.version == nil {
		return compute()
	}
	key = fmt.Sprintf("%s:%d", key, svc.version.Version())
	if err := svc.cache.Get(ctx, key, dest); err == nil {
		return nil
	}
	if err := compute(); err != nil {
		return err
	}
	if err := svc.cache.Set(ctx, key, dest, svc.ttl); err != nil && svc.logger != nil {
		svc.logger.Warn(fmt.Sprintf("report cache set %s: %v", key, err))
	}
	return nil
}

// Statistics aggregates the dashboard figures of the given cohort year.
func (svc *Service) Statistics(ctx context.Context, year string, scope TallyScope) (Statistics, error) {
	var stats Statistics
	err := svc.cached(ctx, fmt.Sprintf("stats:%s:%s", year, scope), &stats, func() error {
		ds, err := svc.load(ctx)
		if err != nil {
			return err
		}
		stats = computeStatistics(ds, year, scope, nowFunc().UTC())
		return nil
	})
	return stats, err
}

// Ranking orders the trainees of a cohort by their mean final grade, highest first.
func (svc *Service) Ranking(ctx context.Context, year string) ([]RankedTrainee, error) {
	var ranking []RankedTrainee
	err := svc.cached(ctx, fmt.Sprintf("ranking:%s", year), &ranking, func() error {
		ds, err := svc.load(ctx)
		if err != nil {
			return err
		}
		ranking = computeRanking(ds.trainees, cohortEvaluations(ds, year), year)
		return nil
	})
	return ranking, err
}

// DetailedDischarges lists every discharge with its trainee's identity, newest first.
func (svc *Service) DetailedDischarges(ctx context.Context) ([]DetailedDischarge, error) {
	ds, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	return detailDischarges(ds), nil
}

// DetailedMerits lists every merit with its trainee's identity, by trainee name.
func (svc *Service) DetailedMerits(ctx context.Context) ([]DetailedMerit, error) {
	ds, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	return detailMerits(ds), nil
}

func traineesByID(trainees []trainee.Trainee) map[string]trainee.Trainee {
	byID := make(map[string]trainee.Trainee, len(trainees))
	for _, tr := range trainees {
		byID[tr.ID] = tr
	}
	return byID
}

// cohortEvaluations keeps the evaluations whose (still existing) trainee belongs to the year cohort.
func cohortEvaluations(ds dataset, year string) []evaluation.Evaluation {
	byID := traineesByID(ds.trainees)
	evals := make([]evaluation.Evaluation, 0, len(ds.evaluations))
	for _, e := range ds.evaluations {
		if tr, ok := byID[e.TraineeID]; ok && tr.Cohort == year {
			evals = append(evals, e)
		}
	}
	return evals
}

func meanGrade(evals []evaluation.Evaluation) float64 {
	grades := make([]float64, len(evals))
	for i, e := range evals {
		grades[i] = e.FinalGrade
	}
	return grading.Mean(grades)
}

func computeRanking(trainees []trainee.Trainee, evals []evaluation.Evaluation, year string) []RankedTrainee {
	perTrainee := make(map[string][]evaluation.Evaluation)
	for _, e := range evals {
		perTrainee[e.TraineeID] = append(perTrainee[e.TraineeID], e)
	}

	ranking := make([]RankedTrainee, 0)
	for _, tr := range trainees {
		if tr.Cohort != year {
			continue
		}
		own := perTrainee[tr.ID]
		ranking = append(ranking, RankedTrainee{
			Trainee:     tr,
			Average:     core.Round2(meanGrade(own)),
			Evaluations: len(own),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Average > ranking[j].Average })
	return ranking
}

func computeStatistics(ds dataset, year string, scope TallyScope, now time.Time) Statistics {
	evals := cohortEvaluations(ds, year)
	byID := traineesByID(ds.trainees)
	inScope := func(traineeID string) bool {
		if scope != ScopeYear {
			return true
		}
		tr, ok := byID[traineeID]
		return ok && tr.Cohort == year
	}

	stats := Statistics{
		Summary: Summary{
			Period:         year,
			GeneratedAt:    now,
			OverallAverage: core.Round2(meanGrade(evals)),
		},
		MeritsByType:       make(map[string]int),
		DischargesByReason: make(map[string]int),
		ByDiscipline:       make([]DisciplineStats, 0, len(ds.disciplines)),
		Ranking:            computeRanking(ds.trainees, evals, year),
	}

	for _, tr := range ds.trainees {
		if tr.Cohort != year {
			continue
		}
		stats.Summary.TotalTrainees++
		if tr.Status == trainee.StatusActive {
			stats.Summary.ActiveTrainees++
		}
	}
	for _, m := range ds.merits {
		if inScope(m.TraineeID) {
			stats.Summary.TotalMerits++
			stats.MeritsByType[m.Type]++
		}
	}
	for _, d := range ds.discharges {
		if inScope(d.TraineeID) {
			stats.Summary.TotalDischarges++
			stats.DischargesByReason[d.Reason]++
		}
	}

	perDiscipline := make(map[string][]evaluation.Evaluation)
	for _, e := range evals {
		perDiscipline[e.DisciplineID] = append(perDiscipline[e.DisciplineID], e)
	}
	for _, d := range ds.disciplines {
		if d.IsActive {
			stats.Summary.ActiveDisciplines++
		}
		own := perDiscipline[d.ID]
		stats.ByDiscipline = append(stats.ByDiscipline, DisciplineStats{
			ID:          d.ID,
			Name:        d.Name,
			Type:        d.Type,
			Evaluations: len(own),
			Average:     core.Round2(meanGrade(own)),
		})
	}
	return stats
}

func detailDischarges(ds dataset) []DetailedDischarge {
	byID := traineesByID(ds.trainees)
	detailed := make([]DetailedDischarge, 0, len(ds.discharges))
	for _, d := range ds.discharges {
		tr, ok := byID[d.TraineeID]
		detailed = append(detailed, DetailedDischarge{Discharge: d, traineeRef: newTraineeRef(tr, ok)})
	}
	// YYYY-MM-DD dates sort lexically
	sort.SliceStable(detailed, func(i, j int) bool { return detailed[i].Date > detailed[j].Date })
	return detailed
}

func detailMerits(ds dataset) []DetailedMerit {
	byID := traineesByID(ds.trainees)
	detailed := make([]DetailedMerit, 0, len(ds.merits))
	for _, m := range ds.merits {
		tr, ok := byID[m.TraineeID]
		detailed = append(detailed, DetailedMerit{Merit: m, traineeRef: newTraineeRef(tr, ok)})
	}
	coll := collate.New(language.Spanish)
	sort.SliceStable(detailed, func(i, j int) bool {
		return coll.CompareString(detailed[i].TraineeName, detailed[j].TraineeName) < 0
	})
	return detailed
}
