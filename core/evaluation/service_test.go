package evaluation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func fptr(f float64) *float64 { return &f }

func TestService_grades(t *testing.T) {
	env := testutil.NewEnv(t)
	svc := env.Svcs.Evaluation
	ctx := context.Background()

	tr := testutil.CreateTrainee(t, env.Svcs, "Juan Pérez", "12345678", "2024")
	karate := testutil.CreateDiscipline(t, env.Svcs, "Karate", 30, 60, 10)

	e, err := svc.Create(ctx, evaluation.NewEvaluation{
		TraineeID:    tr.ID,
		DisciplineID: karate.ID,
		Period:       "2024",
		Theory:       fptr(85),
		Practice:     fptr(90),
		Attendance:   fptr(95),
		Notebook:     fptr(88),
		Date:         "2024-03-15",
	})
	require.NoError(t, err)
	assert.InDelta(t, 88.65, e.FinalGrade, 1e-9)

	// a later change of the discipline's weights does not touch stored grades
	theory, practice := 50, 40
	_, err = env.Svcs.Discipline.Update(ctx, karate.ID, discipline.UpdateDiscipline{TheoryWeight: &theory, PracticeWeight: &practice})
	require.NoError(t, err)
	stored, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.InDelta(t, 88.65, stored.FinalGrade, 1e-9)

	// until the evaluation's scores change: 85*.5 + 90*.4 + 91.5*.1
	updated, err := svc.Update(ctx, e.ID, evaluation.UpdateEvaluation{Practice: fptr(90)})
	require.NoError(t, err)
	assert.InDelta(t, 87.65, updated.FinalGrade, 1e-9)

	notes := "Revisada"
	updated, err = svc.Update(ctx, e.ID, evaluation.UpdateEvaluation{Notes: &notes})
	require.NoError(t, err)
	assert.InDelta(t, 87.65, updated.FinalGrade, 1e-9)

	_, err = svc.Update(ctx, e.ID, evaluation.UpdateEvaluation{Attendance: fptr(-1)})
	assert.Error(t, err)

	_, err = svc.Update(ctx, "lol", evaluation.UpdateEvaluation{Notes: &notes})
	assert.True(t, core.IsNotFound(err))
}
