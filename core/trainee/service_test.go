package trainee_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func TestService_Create(t *testing.T) {
	env := testutil.NewEnv(t)
	svc := env.Svcs.Trainee
	ctx := context.Background()

	tr, err := svc.Create(ctx, trainee.NewTrainee{
		FullName:   "  María Elena Quispe  ",
		CI:         "87654321",
		BirthDate:  "1993-07-22",
		Rank:       "Cabo",
		EnrolledOn: "2024-01-15",
		Cohort:     "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "María Elena Quispe", tr.FullName)
	assert.Equal(t, trainee.StatusActive, tr.Status)
	assert.NotEmpty(t, tr.ID)

	_, err = svc.Create(ctx, trainee.NewTrainee{
		FullName: "Otra Persona", CI: "87654321", BirthDate: "1990-01-01", Rank: "Soldado",
		EnrolledOn: "2024-01-15", Cohort: "2024",
	})
	var conflict *core.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ci", conflict.Field)

	_, err = svc.Create(ctx, trainee.NewTrainee{
		FullName: "Otra Persona", CI: "11111111", BirthDate: "1990-01-01", Rank: "Soldado",
		Status: "retirado", EnrolledOn: "2024-01-15", Cohort: "2024",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "estado", verrs[0].Field())
}

func TestService_UpdateAndStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	svc := env.Svcs.Trainee
	ctx := context.Background()
	tr := testutil.CreateTrainee(t, env.Svcs, "Juan Pérez", "12345678", "2024")

	rank := "Teniente"
	updated, err := svc.Update(ctx, tr.ID, trainee.UpdateTrainee{Rank: &rank})
	require.NoError(t, err)
	assert.Equal(t, "Teniente", updated.Rank)
	assert.Equal(t, tr.CI, updated.CI)
	assert.Equal(t, tr.CreatedAt, updated.CreatedAt)

	bad := "abc"
	_, err = svc.Update(ctx, tr.ID, trainee.UpdateTrainee{CI: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	suspended, err := svc.SetStatus(ctx, tr.ID, trainee.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, trainee.StatusSuspended, suspended.Status)

	_, err = svc.SetStatus(ctx, tr.ID, "retirado")
	var verr *core.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.SetStatus(ctx, "lol", trainee.StatusDischarged)
	assert.True(t, core.IsNotFound(err))
}
