package inmemdb

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraquenta/Sistema-EAME/core"
	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

func TestTable_order(t *testing.T) {
	tbl := newTable[string]()
	for i := 0; i < 5; i++ {
		id := strconv.Itoa(i)
		require.True(t, tbl.insert(id, "row"+id, nil))
	}
	_, ok := tbl.remove("2")
	require.True(t, ok)
	found, ok := tbl.replace("3", "row3bis", nil)
	require.True(t, found)
	require.True(t, ok)

	assert.Equal(t, []string{"row0", "row1", "row3bis", "row4"}, tbl.all())
	assert.Equal(t, 4, tbl.len())

	_, ok = tbl.remove("2")
	assert.False(t, ok)
	found, _ = tbl.replace("2", "lol", nil)
	assert.False(t, found)
}

func TestTraineeRepository_ciUniqueness(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewTraineeRepository(db)

	tr1, err := repo.CreateTrainee(ctx, trainee.Trainee{FullName: "Ana", CI: "111"})
	require.NoError(t, err)
	tr2, err := repo.CreateTrainee(ctx, trainee.Trainee{FullName: "Luis", CI: "222"})
	require.NoError(t, err)
	assert.NotEqual(t, tr1.ID, tr2.ID)

	_, err = repo.CreateTrainee(ctx, trainee.Trainee{FullName: "Rosa", CI: "111"})
	var conflict *core.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ci", conflict.Field)

	// keeping its own CI is not a conflict
	tr1.FullName = "Ana María"
	_, err = repo.UpdateTrainee(ctx, tr1)
	require.NoError(t, err)

	tr2.CI = "111"
	_, err = repo.UpdateTrainee(ctx, tr2)
	require.ErrorAs(t, err, &conflict)

	all, err := repo.QueryTrainees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Ana María", all[0].FullName)
	assert.Equal(t, "222", all[1].CI)
}

func TestTraineeRepository_concurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewTraineeRepository(New())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateTrainee(ctx, trainee.Trainee{CI: "999"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

func TestCrud_notFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMeritRepository(New())

	_, err := repo.GetMerit(ctx, "lol")
	assert.True(t, core.IsNotFound(err))
	_, err = repo.UpdateMerit(ctx, merit.Merit{ID: "lol"})
	assert.True(t, core.IsNotFound(err))
	_, err = repo.DeleteMerit(ctx, "lol")
	assert.True(t, core.IsNotFound(err))
}

func TestDB_version(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewMeritRepository(db)
	assert.Zero(t, db.Version())

	m, err := repo.CreateMerit(ctx, merit.Merit{TraineeID: "1"})
	require.NoError(t, err)
	v1 := db.Version()
	assert.Greater(t, v1, uint64(0))

	_, err = repo.QueryMerits(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1, db.Version(), "reads do not bump the version")

	_, err = repo.DeleteMerit(ctx, m.ID)
	require.NoError(t, err)
	assert.Greater(t, db.Version(), v1)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(New())

	usr, err := repo.CreateUser(ctx, user.User{Username: "admin", Email: "admin@test.bo"})
	require.NoError(t, err)

	var conflict *core.ConflictError
	_, err = repo.CreateUser(ctx, user.User{Username: "other", Email: "admin@test.bo"})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)

	_, err = repo.CreateUser(ctx, user.User{Username: "admin", Email: "other@test.bo"})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)

	got, err := repo.GetUserByEmail(ctx, "admin@test.bo")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)

	_, err = repo.GetUserByEmail(ctx, "lol@test.bo")
	assert.True(t, core.IsNotFound(err))
}

func TestRepositories_deleteMissing(t *testing.T) {
	ctx := context.Background()
	db := New()
	db.trainee.insert("t1", trainee.Trainee{ID: "t1", CI: "111"}, nil)
	db.discipline.insert("d1", discipline.Discipline{ID: "d1"}, nil)
	db.evaluation.insert("e1", evaluation.Evaluation{ID: "e1"}, nil)
	db.merit.insert("m1", merit.Merit{ID: "m1"}, nil)
	db.discharge.insert("b1", discharge.Discharge{ID: "b1"}, nil)
	db.activity.insert("a1", activity.Activity{ID: "a1"}, nil)

	tests := []struct {
		name   string
		delete func(id string) error
		size   func() int
	}{
		{
			name: "trainee",
			delete: func(id string) error {
				_, err := NewTraineeRepository(db).DeleteTrainee(ctx, id)
				return err
			},
			size: db.trainee.len,
		},
		{
			name: "discipline",
			delete: func(id string) error {
				_, err := NewDisciplineRepository(db).DeleteDiscipline(ctx, id)
				return err
			},
			size: db.discipline.len,
		},
		{
			name: "evaluation",
			delete: func(id string) error {
				_, err := NewEvaluationRepository(db).DeleteEvaluation(ctx, id)
				return err
			},
			size: db.evaluation.len,
		},
		{
			name: "merit",
			delete: func(id string) error {
				_, err := NewMeritRepository(db).DeleteMerit(ctx, id)
				return err
			},
			size: db.merit.len,
		},
		{
			name: "discharge",
			delete: func(id string) error {
				_, err := NewDischargeRepository(db).DeleteDischarge(ctx, id)
				return err
			},
			size: db.discharge.len,
		},
		{
			name: "activity",
			delete: func(id string) error {
				_, err := NewActivityRepository(db).DeleteActivity(ctx, id)
				return err
			},
			size: db.activity.len,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			version := db.Version()
			err := tc.delete("lol")
			assert.True(t, core.IsNotFound(err), "got %v", err)
			assert.Equal(t, 1, tc.size())
			assert.Equal(t, version, db.Version())
		})
	}
}
