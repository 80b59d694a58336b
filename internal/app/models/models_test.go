package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEventStatusRank(t *testing.T) {
	assert.Equal(t, 0, EventStatusDraft.Rank())
	assert.Equal(t, 3, EventStatusApproved.Rank())
	assert.Less(t, EventStatusPlanning.Rank(), EventStatusAwaitingApproval.Rank())
	assert.False(t, EventStatus("Done").Valid())
}

func TestMemberDisplayName(t *testing.T) {
	assert.Equal(t, "Ada L", (&Member{FullName: strPtr("Ada L"), FirstName: strPtr("X")}).DisplayName())
	assert.Equal(t, "Ada Lovelace", (&Member{FirstName: strPtr("Ada"), LastName: strPtr("Lovelace")}).DisplayName())
	assert.Equal(t, "Ada", (&Member{FullName: strPtr("  "), FirstName: strPtr("Ada")}).DisplayName())
	assert.Equal(t, "a@b.edu", (&Member{Email: "a@b.edu"}).DisplayName())
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []string{"Chair", "Member"}, EnumValues(AssignmentRoles))
}

func TestCouncilPatchEmpty(t *testing.T) {
	assert.True(t, CouncilPatch{}.Empty())
	assert.False(t, CouncilPatch{AdvisorSet: true}.Empty())
}
