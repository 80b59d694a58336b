package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/db"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

var advisorColumns = []string{
	"advisor_id", "first_name", "last_name", "roles", "email", "phone",
	"building", "address", "photo_path", "created_at", "updated_at",
}

// AdvisorRepository handles advisor database operations
type AdvisorRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewAdvisorRepository creates a new AdvisorRepository
func NewAdvisorRepository(conn db.DBTX) *AdvisorRepository {
	return &AdvisorRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanAdvisor(row scanner) (*models.Advisor, error) {
	a := &models.Advisor{}
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Roles, &a.Email, &a.Phone,
		&a.Building, &a.Address, &a.PhotoPath, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns all advisors ordered by id
func (r *AdvisorRepository) List(ctx context.Context) ([]*models.Advisor, error) {
	sql, args, err := r.sb.Select(advisorColumns...).
		From("advisors").
		OrderBy("advisor_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list advisors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list advisors query")
		return nil, fmt.Errorf("error querying advisors: %w", err)
	}
	defer rows.Close()

	advisors := []*models.Advisor{}
	for rows.Next() {
		a, err := scanAdvisor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning advisor row: %w", err)
		}
		advisors = append(advisors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating advisor rows: %w", err)
	}

	return advisors, nil
}

// GetByID retrieves an advisor by ID
func (r *AdvisorRepository) GetByID(ctx context.Context, id int64) (*models.Advisor, error) {
	sql, args, err := r.sb.Select(advisorColumns...).
		From("advisors").
		Where(squirrel.Eq{"advisor_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get advisor query: %w", err)
	}

	a, err := scanAdvisor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrAdvisorNotFound
		}
		logger.Error().Err(err).Int64("advisorID", id).Msg("Error scanning advisor row")
		return nil, fmt.Errorf("error getting advisor by ID: %w", err)
	}
	return a, nil
}

// Create inserts an advisor and fills in its generated fields
func (r *AdvisorRepository) Create(ctx context.Context, a *models.Advisor) error {
	sql, args, err := r.sb.Insert("advisors").
		Columns("first_name", "last_name", "roles", "email", "phone", "building", "address").
		Values(a.FirstName, a.LastName, helpers.StringsOrEmpty(a.Roles), a.Email, a.Phone, a.Building, a.Address).
		Suffix("RETURNING advisor_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create advisor query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create advisor query")
		return fmt.Errorf("error creating advisor: %w", err)
	}
	return nil
}

// Update replaces every editable field of the advisor
func (r *AdvisorRepository) Update(ctx context.Context, a *models.Advisor) error {
	sql, args, err := r.sb.Update("advisors").
		SetMap(map[string]interface{}{
			"first_name": a.FirstName,
			"last_name":  a.LastName,
			"roles":      helpers.StringsOrEmpty(a.Roles),
			"email":      a.Email,
			"phone":      a.Phone,
			"building":   a.Building,
			"address":    a.Address,
			"updated_at": squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"advisor_id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update advisor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("advisorID", a.ID).Msg("Error executing update advisor query")
		return fmt.Errorf("error updating advisor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvisorNotFound
	}
	return nil
}

// UpdatePhotoPath links a stored photo to the advisor
func (r *AdvisorRepository) UpdatePhotoPath(ctx context.Context, id int64, path string) error {
	sql, args, err := r.sb.Update("advisors").
		Set("photo_path", path).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"advisor_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update advisor photo query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("advisorID", id).Msg("Error executing update advisor photo query")
		return fmt.Errorf("error updating advisor photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvisorNotFound
	}
	return nil
}

// Delete deletes an advisor by ID
func (r *AdvisorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("advisors").
		Where(squirrel.Eq{"advisor_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete advisor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("advisorID", id).Msg("Error executing delete advisor query")
		return fmt.Errorf("error deleting advisor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvisorNotFound
	}
	return nil
}
