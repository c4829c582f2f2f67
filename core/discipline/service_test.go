package discipline_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/testutil"
)

func iptr(i int) *int { return &i }

func TestService_weights(t *testing.T) {
	env := testutil.NewEnv(t)
	svc := env.Svcs.Discipline
	ctx := context.Background()

	weightsErr := func(t *testing.T, err error) {
		t.Helper()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "weights_sum", verrs[0].Tag())
	}

	_, err := svc.Create(ctx, discipline.NewDiscipline{
		Name: "Judo", Type: "Arte Marcial",
		TheoryWeight: iptr(30), PracticeWeight: iptr(60), OtherWeight: iptr(20),
	})
	weightsErr(t, err)

	_, err = svc.Create(ctx, discipline.NewDiscipline{Name: "Judo", Type: "Arte Marcial"})
	assert.Error(t, err)

	d, err := svc.Create(ctx, discipline.NewDiscipline{
		Name: "Judo", Type: "Arte Marcial",
		TheoryWeight: iptr(0), PracticeWeight: iptr(100), OtherWeight: iptr(0),
	})
	require.NoError(t, err)
	assert.True(t, d.IsActive)

	_, err = svc.Update(ctx, d.ID, discipline.UpdateDiscipline{TheoryWeight: iptr(10)})
	weightsErr(t, err)

	inactive := false
	d, err = svc.Update(ctx, d.ID, discipline.UpdateDiscipline{
		TheoryWeight: iptr(10), PracticeWeight: iptr(90), IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, d.TheoryWeight)
	assert.False(t, d.IsActive)

	stored, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, stored)
}
