package evaluation

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/grading"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
)

const Resource = "evaluacion"

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateEvaluation(ctx context.Context, e Evaluation) (Evaluation, error)
		QueryEvaluations(ctx context.Context) ([]Evaluation, error)
		// GetEvaluation fails with a *core.NotFoundError.
		GetEvaluation(ctx context.Context, id string) (Evaluation, error)
		UpdateEvaluation(ctx context.Context, e Evaluation) (Evaluation, error)
		DeleteEvaluation(ctx context.Context, id string) (Evaluation, error)
	}

	TraineeFinder interface {
		Get(ctx context.Context, id string) (trainee.Trainee, error)
	}

	DisciplineFinder interface {
		Get(ctx context.Context, id string) (discipline.Discipline, error)
	}

	Service struct {
		repo        Repository
		trainees    TraineeFinder
		disciplines DisciplineFinder
		validate    *validator.Validate
	}
)

func NewService(repo Repository, trainees TraineeFinder, disciplines DisciplineFinder, validate *validator.Validate) *Service {
	return &Service{
		repo:        repo,
		trainees:    trainees,
		disciplines: disciplines,
		validate:    validate,
	}
}

// resolve checks the Evaluation's references and returns its Discipline.
func (svc *Service) resolve(ctx context.Context, e Evaluation) (discipline.Discipline, error) {
	if _, err := svc.trainees.Get(ctx, e.TraineeID); err != nil {
		return discipline.Discipline{}, errors.Wrap(err, "finding trainee")
	}
	d, err := svc.disciplines.Get(ctx, e.DisciplineID)
	if err != nil {
		return discipline.Discipline{}, errors.Wrap(err, "finding discipline")
	}
	return d, nil
}

// Create stores a new Evaluation with its final grade computed from the referenced Discipline.
func (svc *Service) Create(ctx context.Context, ne NewEvaluation) (Evaluation, error) {
	if err := svc.validate.Struct(ne); err != nil {
		return Evaluation{}, err
	}
	e := ne.toEvaluation()
	if err := svc.validate.Struct(e); err != nil {
		return Evaluation{}, err
	}

	d, err := svc.resolve(ctx, e)
	if err != nil {
		return Evaluation{}, err
	}
	e.FinalGrade = grading.Final(e.Scores(), d.Weights())
	e.CreatedAt = nowFunc().UTC()
	return svc.repo.CreateEvaluation(ctx, e)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Evaluation, error) {
	return svc.repo.QueryEvaluations(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Evaluation, error) {
	return svc.repo.GetEvaluation(ctx, id)
}

// Update merges ue onto the stored Evaluation. The final grade is recomputed from the merged scores
// whenever a score or the discipline changes.
func (svc *Service) Update(ctx context.Context, id string, ue UpdateEvaluation) (Evaluation, error) {
	orig, err := svc.repo.GetEvaluation(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	e := ue.merge(orig)
	if err := svc.validate.Struct(e); err != nil {
		return Evaluation{}, err
	}

	if ue.touchesGrade() || ue.TraineeID != nil {
		d, err := svc.resolve(ctx, e)
		if err != nil {
			return Evaluation{}, err
		}
		e.FinalGrade = grading.Final(e.Scores(), d.Weights())
	}
	return svc.repo.UpdateEvaluation(ctx, e)
}

func (svc *Service) Delete(ctx context.Context, id string) (Evaluation, error) {
	return svc.repo.DeleteEvaluation(ctx, id)
}
