package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/formstate"
)

func newRoleBoardFixture() (RoleBoardService, *fakeMemberStore, *recordingNotifier, uuid.UUID) {
	committees := newFakeCommitteeStore(
		&models.Committee{ID: 1, GradYear: 2027, Name: "Prom"},
		&models.Committee{ID: 2, GradYear: 2027, Name: "Finance"},
		&models.Committee{ID: 3, GradYear: 2028, Name: "Spirit"},
	)
	id := uuid.New()
	members := newFakeMemberStore(committees, &models.Member{
		ID: id, Email: "ada@school.edu", GradYear: intPtr(2027), CommitteeID: int64Ptr(1), Role: strPtr("Member"),
	})
	n := &recordingNotifier{}
	return NewRoleBoardService(committees, members, newTestChanges(n)), members, n, id
}

func TestGetBoard(t *testing.T) {
	svc, _, _, id := newRoleBoardFixture()

	board, err := svc.GetBoard(context.Background(), 2027)
	require.NoError(t, err)
	require.Len(t, board.Committees, 2)
	assert.Equal(t, "Finance", board.Committees[0].Name)
	row, ok := board.Row(id)
	require.True(t, ok)
	assert.Equal(t, "Prom", *row.CommitteeName)
}

func TestUpdateMemberCommittee_PatchesLabel(t *testing.T) {
	svc, members, n, id := newRoleBoardFixture()

	board, err := svc.UpdateMemberCommittee(context.Background(), 2027, id, int64Ptr(2))
	require.NoError(t, err)

	row, _ := board.Row(id)
	assert.Equal(t, "Finance", *row.CommitteeName)
	assert.Equal(t, int64(2), *members.members[id].CommitteeID)
	assert.Equal(t, []string{"member.committee_changed"}, n.types())
}

func TestUpdateMemberRole_FailureRollsBack(t *testing.T) {
	svc, members, n, id := newRoleBoardFixture()
	members.failRole = errors.New("new row violates row-level security policy")

	board, err := svc.UpdateMemberRole(context.Background(), 2027, id, "Treasurer")
	require.EqualError(t, err, "new row violates row-level security policy")
	require.NotNil(t, board, "the rolled back board is returned with the error")

	row, _ := board.Row(id)
	assert.Equal(t, "Member", *row.Role)
	assert.Equal(t, formstate.PhaseFailed, row.RoleState.Phase)
	assert.Equal(t, "new row violates row-level security policy", row.RoleState.Error)
	assert.Equal(t, "Member", *members.members[id].Role)
	assert.Empty(t, n.changes)
}

func TestUpdateMemberRole_Success(t *testing.T) {
	svc, members, _, id := newRoleBoardFixture()

	board, err := svc.UpdateMemberRole(context.Background(), 2027, id, "Vice President")
	require.NoError(t, err)

	row, _ := board.Row(id)
	assert.Equal(t, "Vice President", *row.Role)
	assert.Equal(t, formstate.PhaseSucceeded, row.RoleState.Phase)
	assert.Equal(t, "Vice President", *members.members[id].Role)
}
