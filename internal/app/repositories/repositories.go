package repositories

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/hooplannedthis/api/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdvisorRepository   *AdvisorRepository
	CouncilRepository   *CouncilRepository
	CommitteeRepository *CommitteeRepository
	MemberRepository    *MemberRepository
	EventRepository     *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		AdvisorRepository:   NewAdvisorRepository(conn),
		CouncilRepository:   NewCouncilRepository(conn),
		CommitteeRepository: NewCommitteeRepository(conn),
		MemberRepository:    NewMemberRepository(conn),
		EventRepository:     NewEventRepository(conn),
	}
}

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
