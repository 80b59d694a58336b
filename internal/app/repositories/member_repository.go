package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/db"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/dberrors"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

var memberColumns = []string{
	"u.id", "u.email", "u.first_name", "u.last_name", "u.full_name", "u.phone_number",
	"u.grad_year", "u.committee_id", "u.role", "u.profile_picture", "u.created_at",
	"u.updated_at", "c.committee_name",
}

// orderByDisplayName sorts like models.Member.DisplayName
const orderByDisplayName = "COALESCE(NULLIF(u.full_name, ''), NULLIF(concat_ws(' ', u.first_name, u.last_name), ''), u.email) ASC"

// MemberRepository handles database operations on the users table
type MemberRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(conn db.DBTX) *MemberRepository {
	return &MemberRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanMember(row scanner) (*models.Member, error) {
	m := &models.Member{}
	err := row.Scan(
		&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.FullName, &m.Phone,
		&m.GradYear, &m.CommitteeID, &m.Role, &m.ProfilePicture, &m.CreatedAt,
		&m.UpdatedAt, &m.CommitteeName,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MemberRepository) selectMembers() squirrel.SelectBuilder {
	return r.sb.Select(memberColumns...).
		From("users u").
		LeftJoin("committees c ON c.committee_id = u.committee_id")
}

func (r *MemberRepository) queryMembers(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Member, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list members query")
		return nil, fmt.Errorf("error querying members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

// ListByGradYear returns members of a graduation year ordered by display name
func (r *MemberRepository) ListByGradYear(ctx context.Context, gradYear int) ([]*models.Member, error) {
	return r.queryMembers(ctx, r.selectMembers().
		Where(squirrel.Eq{"u.grad_year": gradYear}).
		OrderBy(orderByDisplayName))
}

// ListByCommittee returns a committee's members ordered by last name
func (r *MemberRepository) ListByCommittee(ctx context.Context, committeeID int64) ([]*models.Member, error) {
	return r.queryMembers(ctx, r.selectMembers().
		Where(squirrel.Eq{"u.committee_id": committeeID}).
		OrderBy("u.last_name ASC NULLS LAST", orderByDisplayName))
}

// GetByID retrieves a member with its committee name
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	sql, args, err := r.selectMembers().
		Where(squirrel.Eq{"u.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	m, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Str("memberID", id.String()).Msg("Error scanning member row")
		return nil, fmt.Errorf("error getting member: %w", err)
	}
	return m, nil
}

// UpdateFields writes the given columns of one member in a single statement
func (r *MemberRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", apperrors.ErrValidationFailed)
	}

	set := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = squirrel.Expr("now()")

	sql, args, err := r.sb.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrCommitteeNotFound
		}
		logger.Error().Err(err).Str("memberID", id.String()).Msg("Error executing update member query")
		return fmt.Errorf("error updating member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// AssignCommittee sets committee and role together
func (r *MemberRepository) AssignCommittee(ctx context.Context, id uuid.UUID, committeeID int64, role string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{
		"committee_id": committeeID,
		"role":         role,
	})
}

// UpdateCommittee moves a member; nil unassigns
func (r *MemberRepository) UpdateCommittee(ctx context.Context, id uuid.UUID, committeeID *int64) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"committee_id": committeeID})
}

// UpdateRole sets a member's role; nil clears it
func (r *MemberRepository) UpdateRole(ctx context.Context, id uuid.UUID, role *string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"role": role})
}

// UpdateProfilePicture links a stored photo to the member
func (r *MemberRepository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"profile_picture": path})
}

// Upsert creates or refreshes the member's own profile columns
func (r *MemberRepository) Upsert(ctx context.Context, m *models.Member) error {
	sql, args, err := r.sb.Insert("users").
		Columns("id", "email", "first_name", "last_name", "full_name", "phone_number", "grad_year").
		Values(m.ID, m.Email, m.FirstName, m.LastName, m.FullName, m.Phone, m.GradYear).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			full_name = EXCLUDED.full_name,
			phone_number = EXCLUDED.phone_number,
			grad_year = EXCLUDED.grad_year,
			updated_at = now()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("memberID", m.ID.String()).Msg("Error executing upsert member query")
		return fmt.Errorf("error upserting member: %w", err)
	}
	return nil
}
