package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

var memberColumnNames = []string{
	"id", "email", "first_name", "last_name", "full_name", "phone_number", "grad_year",
	"committee_id", "role", "profile_picture", "created_at", "updated_at", "committee_name",
}

func TestMemberRepository_ListByGradYearJoinsCommitteeName(t *testing.T) {
	mock := newMock(t)
	repo := NewMemberRepository(mock)
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u LEFT JOIN committees c ON c.committee_id = u.committee_id WHERE u.grad_year = $1 ORDER BY COALESCE(")).
		WithArgs(2027).
		WillReturnRows(pgxmock.NewRows(memberColumnNames).
			AddRow(id, "ada@school.edu", strPtr("Ada"), strPtr("Lovelace"), strPtr("Ada Lovelace"), nil,
				intPtr(2027), int64Ptr(3), strPtr("Chair"), nil, now, now, strPtr("Prom")))

	members, err := repo.ListByGradYear(context.Background(), 2027)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, id, members[0].ID)
	assert.Equal(t, "Prom", *members[0].CommitteeName)
}

func TestMemberRepository_AssignCommitteeIsOneUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewMemberRepository(mock)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET committee_id = $1, role = $2, updated_at = now() WHERE id = $3")).
		WithArgs(int64(3), "Member", id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.AssignCommittee(context.Background(), id, 3, "Member"))
}

func TestMemberRepository_UpdateRoleMissingMember(t *testing.T) {
	mock := newMock(t)
	repo := NewMemberRepository(mock)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1, updated_at = now() WHERE id = $2")).
		WithArgs(strPtr("Treasurer"), id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateRole(context.Background(), id, strPtr("Treasurer"))
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestMemberRepository_Upsert(t *testing.T) {
	mock := newMock(t)
	repo := NewMemberRepository(mock)
	now := time.Now()
	m := &models.Member{ID: uuid.New(), Email: "ada@school.edu", FirstName: strPtr("Ada"), FullName: strPtr("Ada"), GradYear: intPtr(2027)}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id,email,first_name,last_name,full_name,phone_number,grad_year) VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (id) DO UPDATE")).
		WithArgs(m.ID, m.Email, m.FirstName, m.LastName, m.FullName, m.Phone, m.GradYear).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Upsert(context.Background(), m))
	assert.Equal(t, now, m.UpdatedAt)
}
