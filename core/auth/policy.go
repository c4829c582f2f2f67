package auth

import "github.com/saraquenta/Sistema-EAME/core/user"

// Operation is a protected action, named `<resource>:<read|write>`.
type Operation string

const (
	TraineesRead     Operation = "cursantes:read"
	TraineesWrite    Operation = "cursantes:write"
	DisciplinesRead  Operation = "disciplinas:read"
	DisciplinesWrite Operation = "disciplinas:write"
	EvaluationsRead  Operation = "evaluaciones:read"
	EvaluationsWrite Operation = "evaluaciones:write"
	MeritsRead       Operation = "meritos:read"
	MeritsWrite      Operation = "meritos:write"
	DischargesRead   Operation = "bajas:read"
	DischargesWrite  Operation = "bajas:write"
	ActivitiesRead   Operation = "actividades:read"
	ActivitiesWrite  Operation = "actividades:write"
	ReportsRead      Operation = "reportes:read"
	UsersRead        Operation = "usuarios:read"
	UsersWrite       Operation = "usuarios:write"
)

var (
	readers = []string{user.RoleAdmin, user.RoleChief, user.RoleCommander}
	writers = []string{user.RoleAdmin, user.RoleChief}
	admins  = []string{user.RoleAdmin}

	// policy maps every operation to the roles allowed to perform it.
	policy = map[Operation][]string{
		TraineesRead:     readers,
		TraineesWrite:    writers,
		DisciplinesRead:  readers,
		DisciplinesWrite: writers,
		EvaluationsRead:  readers,
		EvaluationsWrite: writers,
		MeritsRead:       readers,
		MeritsWrite:      writers,
		DischargesRead:   readers,
		DischargesWrite:  writers,
		ActivitiesRead:   readers,
		ActivitiesWrite:  writers,
		ReportsRead:      readers,
		UsersRead:        admins,
		UsersWrite:       admins,
	}
)

// Allow reports whether role may perform op. Unknown operations and roles are denied.
func Allow(role string, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
