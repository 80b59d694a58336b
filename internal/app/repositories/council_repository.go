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

var councilColumns = []string{
	"council_id", "grad_year", "fall_year", "spring_year", "council_name",
	"advisor_id", "logo_path", "created_at", "updated_at",
}

// CouncilRepository handles council database operations
type CouncilRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCouncilRepository creates a new CouncilRepository
func NewCouncilRepository(conn db.DBTX) *CouncilRepository {
	return &CouncilRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanCouncil(row scanner) (*models.Council, error) {
	c := &models.Council{}
	err := row.Scan(
		&c.ID, &c.GradYear, &c.FallYear, &c.SpringYear, &c.Name,
		&c.AdvisorID, &c.LogoPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all councils ordered by graduation year
func (r *CouncilRepository) List(ctx context.Context) ([]*models.Council, error) {
	sql, args, err := r.sb.Select(councilColumns...).
		From("councils").
		OrderBy("grad_year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list councils query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list councils query")
		return nil, fmt.Errorf("error querying councils: %w", err)
	}
	defer rows.Close()

	councils := []*models.Council{}
	for rows.Next() {
		c, err := scanCouncil(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning council row: %w", err)
		}
		councils = append(councils, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating council rows: %w", err)
	}

	return councils, nil
}

// GetByGradYear retrieves the council of a graduation year
func (r *CouncilRepository) GetByGradYear(ctx context.Context, gradYear int) (*models.Council, error) {
	sql, args, err := r.sb.Select(councilColumns...).
		From("councils").
		Where(squirrel.Eq{"grad_year": gradYear}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get council query: %w", err)
	}

	c, err := scanCouncil(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCouncilNotFound
		}
		logger.Error().Err(err).Int("gradYear", gradYear).Msg("Error scanning council row")
		return nil, fmt.Errorf("error getting council: %w", err)
	}
	return c, nil
}

// ExistsByGradYear checks whether a council exists for the graduation year
func (r *CouncilRepository) ExistsByGradYear(ctx context.Context, gradYear int) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("councils").
		Where(squirrel.Eq{"grad_year": gradYear}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build council exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int("gradYear", gradYear).Msg("Error checking council existence")
		return false, fmt.Errorf("error checking council existence: %w", err)
	}
	return exists, nil
}

// Create inserts a council. A second council for the same graduation year
// fails with apperrors.ErrCouncilAlreadyExists.
func (r *CouncilRepository) Create(ctx context.Context, c *models.Council) error {
	sql, args, err := r.sb.Insert("councils").
		Columns("grad_year", "fall_year", "spring_year", "council_name", "advisor_id", "logo_path").
		Values(c.GradYear, c.FallYear, c.SpringYear, c.Name, c.AdvisorID, c.LogoPath).
		Suffix("RETURNING council_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create council query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintCouncilGradYear) {
			return apperrors.ErrCouncilAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrAdvisorNotFound
		}
		logger.Error().Err(err).Int("gradYear", c.GradYear).Msg("Error executing create council query")
		return fmt.Errorf("error creating council: %w", err)
	}
	return nil
}

// Update writes the touched columns of patch and returns the stored row
func (r *CouncilRepository) Update(ctx context.Context, gradYear int, patch models.CouncilPatch) (*models.Council, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidationFailed)
	}

	set := map[string]interface{}{
		"updated_at": squirrel.Expr("now()"),
	}
	if patch.FallYear != nil {
		set["fall_year"] = *patch.FallYear
	}
	if patch.SpringYear != nil {
		set["spring_year"] = *patch.SpringYear
	}
	if patch.Name != nil {
		set["council_name"] = *patch.Name
	}
	if patch.LogoPath != nil {
		set["logo_path"] = *patch.LogoPath
	}
	if patch.AdvisorSet {
		set["advisor_id"] = patch.AdvisorID
	}

	sql, args, err := r.sb.Update("councils").
		SetMap(set).
		Where(squirrel.Eq{"grad_year": gradYear}).
		Suffix("RETURNING " + joinColumns(councilColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update council query: %w", err)
	}

	c, err := scanCouncil(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCouncilNotFound
		}
		if dberrors.IsForeignKeyError(err) {
			return nil, apperrors.ErrAdvisorNotFound
		}
		logger.Error().Err(err).Int("gradYear", gradYear).Msg("Error executing update council query")
		return nil, fmt.Errorf("error updating council: %w", err)
	}
	return c, nil
}
