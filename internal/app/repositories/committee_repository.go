package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/db"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/dberrors"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

var committeeColumns = []string{"committee_id", "grad_year", "committee_name", "committee_budget", "created_at"}

// CommitteeRepository handles committee database operations
type CommitteeRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCommitteeRepository creates a new CommitteeRepository
func NewCommitteeRepository(conn db.DBTX) *CommitteeRepository {
	return &CommitteeRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanCommittee(row scanner) (*models.Committee, error) {
	c := &models.Committee{}
	if err := row.Scan(&c.ID, &c.GradYear, &c.Name, &c.Budget, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByGradYear returns a council's committees ordered by name
func (r *CommitteeRepository) ListByGradYear(ctx context.Context, gradYear int) ([]*models.Committee, error) {
	sql, args, err := r.sb.Select(committeeColumns...).
		From("committees").
		Where(squirrel.Eq{"grad_year": gradYear}).
		OrderBy("committee_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list committees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("gradYear", gradYear).Msg("Error executing list committees query")
		return nil, fmt.Errorf("error querying committees: %w", err)
	}
	defer rows.Close()

	committees := []*models.Committee{}
	for rows.Next() {
		c, err := scanCommittee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning committee row: %w", err)
		}
		committees = append(committees, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating committee rows: %w", err)
	}

	return committees, nil
}

// GetByID retrieves a committee by ID
func (r *CommitteeRepository) GetByID(ctx context.Context, id int64) (*models.Committee, error) {
	sql, args, err := r.sb.Select(committeeColumns...).
		From("committees").
		Where(squirrel.Eq{"committee_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get committee query: %w", err)
	}

	c, err := scanCommittee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCommitteeNotFound
		}
		logger.Error().Err(err).Int64("committeeID", id).Msg("Error scanning committee row")
		return nil, fmt.Errorf("error getting committee: %w", err)
	}
	return c, nil
}

// Create inserts a committee under its council
func (r *CommitteeRepository) Create(ctx context.Context, c *models.Committee) error {
	sql, args, err := r.sb.Insert("committees").
		Columns("grad_year", "committee_name", "committee_budget").
		Values(c.GradYear, c.Name, c.Budget).
		Suffix("RETURNING committee_id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create committee query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrCouncilNotFound
		}
		logger.Error().Err(err).Int("gradYear", c.GradYear).Msg("Error executing create committee query")
		return fmt.Errorf("error creating committee: %w", err)
	}
	return nil
}
