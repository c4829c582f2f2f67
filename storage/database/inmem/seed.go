package inmemdb

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/activity"
	"github.com/saraquenta/Sistema-EAME/core/discharge"
	"github.com/saraquenta/Sistema-EAME/core/discipline"
	"github.com/saraquenta/Sistema-EAME/core/evaluation"
	"github.com/saraquenta/Sistema-EAME/core/grading"
	"github.com/saraquenta/Sistema-EAME/core/merit"
	"github.com/saraquenta/Sistema-EAME/core/trainee"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

const (
	SeedPassword = "123456"
	seedPeriod   = "2024"
)

type SeedOptions struct {
	Rand *rand.Rand
	// AdminPasswordHash replaces the admin's password hash when set.
	AdminPasswordHash string
}

var (
	seedFirstNames = []string{
		"Juan", "María", "Carlos", "Ana", "Luis", "Rosa", "Jorge", "Elena", "Pedro", "Lucía",
		"Miguel", "Carmen", "José", "Silvia", "Marco", "Patricia", "Diego", "Gabriela", "Raúl", "Verónica",
	}
	seedLastNames = []string{
		"Pérez", "Quispe", "Mamani", "Condori", "López", "Flores", "Choque", "Gutiérrez", "Rojas", "Vargas",
		"Torrez", "Huanca", "Apaza", "Limachi", "Cruz", "Ticona", "Soliz", "Aguilar", "Paredes", "Nina",
	}
	seedRanks = []string{"Soldado", "Cabo", "Sargento Segundo", "Sargento Primero", "Teniente"}
)

// Seed loads the sample dataset into an empty db.
func Seed(db *DB, opts SeedOptions) error {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now().UTC()

	users, err := seedUsers(now, opts.AdminPasswordHash)
	if err != nil {
		return err
	}
	for _, usr := range users {
		db.user.insert(usr.ID, usr, nil)
	}

	trainees := seedTrainees(rnd, now)
	disciplines := seedDisciplines(rnd, now)
	evaluations := seedEvaluations(rnd, now, trainees, disciplines)

	traineeIDs := make([]string, len(trainees))
	for i := range trainees {
		traineeIDs[i] = trainees[i].ID
	}
	adminID := users[0].ID

	discharges := make([]discharge.Discharge, 0, 20)
	for i := 1; i <= 20; i++ {
		idx := rnd.Intn(len(trainees))
		discharges = append(discharges, discharge.Discharge{
			ID:        newID(),
			TraineeID: trainees[idx].ID,
			Reason:    discharge.Reasons[rnd.Intn(len(discharge.Reasons))],
			Date:      randomDate(rnd),
			Notes:     fmt.Sprintf("Observaciones de baja %d: detalles del motivo de la baja.", i),
			UserID:    adminID,
		})
		trainees[idx].Status = trainee.StatusDischarged
	}

	for _, tr := range trainees {
		db.trainee.insert(tr.ID, tr, nil)
	}
	for _, d := range disciplines {
		db.discipline.insert(d.ID, d, nil)
	}
	for _, e := range evaluations {
		db.evaluation.insert(e.ID, e, nil)
	}
	for i := 1; i <= 30; i++ {
		m := merit.Merit{
			ID:            newID(),
			TraineeID:     traineeIDs[rnd.Intn(len(traineeIDs))],
			Type:          merit.Types[rnd.Intn(len(merit.Types))],
			Period:        seedPeriod,
			Justification: fmt.Sprintf("Justificación del mérito %d: demostró excelente desempeño y dedicación.", i),
			UserID:        adminID,
		}
		db.merit.insert(m.ID, m, nil)
	}
	for _, d := range discharges {
		db.discharge.insert(d.ID, d, nil)
	}
	for i := 1; i <= 40; i++ {
		a := activity.Activity{
			ID:         newID(),
			TraineeID:  traineeIDs[rnd.Intn(len(traineeIDs))],
			Type:       activity.Types[rnd.Intn(len(activity.Types))],
			Discipline: disciplines[rnd.Intn(4)].Name,
			Date:       randomDate(rnd),
			Duration:   fmt.Sprintf("%d horas", rnd.Intn(3)+1),
			Notes:      fmt.Sprintf("Observaciones de actividad %d: detalles de la actividad realizada.", i),
			UserID:     adminID,
			Period:     seedPeriod,
		}
		db.activity.insert(a.ID, a, nil)
	}
	db.touch()
	return nil
}

func seedUsers(now time.Time, adminHash string) ([]user.User, error) {
	users := []user.User{
		{ID: "1", Username: "admin", Email: "admin@eame.mil.bo", Role: user.RoleAdmin, FullName: "Administrador del Sistema"},
		{ID: "2", Username: "jefe_eval", Email: "jefe.evaluaciones@eame.mil.bo", Role: user.RoleChief, FullName: "Jefe de Evaluaciones"},
		{ID: "3", Username: "comandante", Email: "comandante@eame.mil.bo", Role: user.RoleCommander, FullName: "Comandante EAME"},
	}
	for i := range users {
		users[i].IsActive = true
		users[i].CreatedAt = now
		if err := users[i].SetPassword(SeedPassword); err != nil {
			return nil, errors.Wrap(err, "inmemdb.seedUsers")
		}
	}
	if adminHash != "" {
		users[0].PasswordHash = []byte(adminHash)
	}
	return users, nil
}

func seedTrainees(rnd *rand.Rand, now time.Time) []trainee.Trainee {
	trainees := []trainee.Trainee{
		{FullName: "Juan Carlos Pérez López", CI: "12345678", BirthDate: "1995-03-15", Rank: "Soldado", Notes: "Excelente desempeño"},
		{FullName: "María Elena Quispe Mamani", CI: "87654321", BirthDate: "1993-07-22", Rank: "Cabo", Notes: "Muy dedicada"},
		{FullName: "Carlos Alberto Mamani Condori", CI: "11223344", BirthDate: "1994-11-08", Rank: "Sargento Segundo", Notes: "Buen liderazgo"},
	}
	for i := 4; i <= 50; i++ {
		name := fmt.Sprintf("%s %s %s",
			seedFirstNames[rnd.Intn(len(seedFirstNames))],
			seedLastNames[rnd.Intn(len(seedLastNames))],
			seedLastNames[rnd.Intn(len(seedLastNames))],
		)
		trainees = append(trainees, trainee.Trainee{
			FullName:  name,
			CI:        fmt.Sprint(10000000 + i),
			BirthDate: fmt.Sprintf("199%d-%02d-%02d", rnd.Intn(10), rnd.Intn(12)+1, rnd.Intn(28)+1),
			Rank:      seedRanks[rnd.Intn(len(seedRanks))],
			Notes:     fmt.Sprintf("Observaciones del cursante %d", i),
		})
	}
	for i := range trainees {
		trainees[i].ID = newID()
		trainees[i].Status = trainee.StatusActive
		trainees[i].EnrolledOn = "2024-01-15"
		trainees[i].Cohort = seedPeriod
		trainees[i].CreatedAt = now
	}
	return trainees
}

func seedDisciplines(rnd *rand.Rand, now time.Time) []discipline.Discipline {
	disciplines := []discipline.Discipline{
		{Name: "Karate", Type: "Arte Marcial", TheoryWeight: 30, PracticeWeight: 60, OtherWeight: 10, IsActive: true},
		{Name: "Judo", Type: "Arte Marcial", TheoryWeight: 25, PracticeWeight: 65, OtherWeight: 10, IsActive: true},
		{Name: "Taekwondo", Type: "Arte Marcial", TheoryWeight: 20, PracticeWeight: 70, OtherWeight: 10, IsActive: true},
		{Name: "Defensa Personal", Type: "Defensa Personal", TheoryWeight: 15, PracticeWeight: 75, OtherWeight: 10, IsActive: true},
	}
	for i := 5; i <= 20; i++ {
		theory := rnd.Intn(30) + 10
		disciplines = append(disciplines, discipline.Discipline{
			Name:           fmt.Sprintf("Disciplina %d", i),
			Type:           discipline.Types[rnd.Intn(4)],
			TheoryWeight:   theory,
			PracticeWeight: 90 - theory,
			OtherWeight:    10,
			IsActive:       rnd.Float64() > .2,
		})
	}
	for i := range disciplines {
		disciplines[i].ID = newID()
		disciplines[i].CreatedAt = now
	}
	return disciplines
}

func seedEvaluations(rnd *rand.Rand, now time.Time, trainees []trainee.Trainee, disciplines []discipline.Discipline) []evaluation.Evaluation {
	evaluations := []evaluation.Evaluation{
		{TraineeID: trainees[0].ID, DisciplineID: disciplines[0].ID, Theory: 85, Practice: 90, Attendance: 95, Notebook: 88,
			Date: "2024-03-15", Notes: "Excelente desempeño en todas las áreas"},
		{TraineeID: trainees[1].ID, DisciplineID: disciplines[1].ID, Theory: 78, Practice: 85, Attendance: 92, Notebook: 80,
			Date: "2024-03-16", Notes: "Muy buena técnica en judo"},
		{TraineeID: trainees[2].ID, DisciplineID: disciplines[2].ID, Theory: 82, Practice: 88, Attendance: 90, Notebook: 85,
			Date: "2024-03-17", Notes: "Destacado en patadas de taekwondo"},
	}
	for i := 4; i <= 50; i++ {
		evaluations = append(evaluations, evaluation.Evaluation{
			TraineeID:    trainees[rnd.Intn(len(trainees))].ID,
			DisciplineID: disciplines[rnd.Intn(4)].ID,
			Theory:       float64(rnd.Intn(40) + 60),
			Practice:     float64(rnd.Intn(40) + 60),
			Attendance:   float64(rnd.Intn(30) + 70),
			Notebook:     float64(rnd.Intn(40) + 60),
			Date:         randomDate(rnd),
			Notes:        fmt.Sprintf("Observaciones de evaluación %d", i),
		})
	}

	weights := make(map[string]grading.Weights, len(disciplines))
	for _, d := range disciplines {
		weights[d.ID] = d.Weights()
	}
	for i := range evaluations {
		e := &evaluations[i]
		e.ID = newID()
		e.Period = seedPeriod
		e.FinalGrade = grading.Final(e.Scores(), weights[e.DisciplineID])
		e.CreatedAt = now
	}
	return evaluations
}

func randomDate(rnd *rand.Rand) string {
	return fmt.Sprintf("%s-%02d-%02d", seedPeriod, rnd.Intn(9)+1, rnd.Intn(28)+1)
}
