package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

func newProfileFixture(members ...*models.Member) (ProfileService, *fakeMemberStore, *memoryObjectStore) {
	committees := newFakeCommitteeStore(&models.Committee{ID: 1, GradYear: 2027, Name: "Prom"})
	store := newMemoryObjectStore()
	memberStore := newFakeMemberStore(committees, members...)
	photos := newTestPhotoService(store, nil, memberStore)
	return NewProfileService(memberStore, committees, photos, newTestChanges(&recordingNotifier{})), memberStore, store
}

func TestUpsertProfile_DerivesFullName(t *testing.T) {
	svc, _, _ := newProfileFixture()
	id := uuid.New()

	resp, err := svc.UpsertProfile(context.Background(), id, "ada@school.edu", &dto.UpsertProfileRequest{
		FirstName: " Ada ", LastName: strPtr("Lovelace"), GradYear: 2027,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", *resp.FullName)
	assert.Equal(t, "Ada Lovelace", resp.DisplayName)
	assert.Equal(t, "ada@school.edu", resp.Email)
	assert.Equal(t, testFallback, resp.PhotoURL)
}

func TestUpsertProfile_KeepsAssignment(t *testing.T) {
	id := uuid.New()
	svc, _, _ := newProfileFixture(&models.Member{ID: id, Email: "ada@school.edu", GradYear: intPtr(2027), CommitteeID: int64Ptr(1), Role: strPtr("Chair")})

	resp, err := svc.UpsertProfile(context.Background(), id, "ada@school.edu", &dto.UpsertProfileRequest{FirstName: "Ada", GradYear: 2027})
	require.NoError(t, err)
	assert.Equal(t, "Chair", *resp.Role)
	assert.Equal(t, "Prom", *resp.CommitteeName)
}

func TestUpsertProfile_Validation(t *testing.T) {
	svc, members, _ := newProfileFixture()

	_, err := svc.UpsertProfile(context.Background(), uuid.New(), "a@b.c", &dto.UpsertProfileRequest{FirstName: "Ada", GradYear: 1850})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = svc.UpsertProfile(context.Background(), uuid.New(), "a@b.c", &dto.UpsertProfileRequest{GradYear: 2027})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = svc.UpsertProfile(context.Background(), uuid.Nil, "a@b.c", &dto.UpsertProfileRequest{FirstName: "Ada", GradYear: 2027})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 0, members.writes)
}

func TestUploadProfilePhoto_RoundTrip(t *testing.T) {
	id := uuid.New()
	svc, _, _ := newProfileFixture(&models.Member{ID: id, Email: "ada@school.edu"})

	uploaded, err := svc.UploadProfilePhoto(context.Background(), id, pngUpload("me.png"))
	require.NoError(t, err)
	assert.Equal(t, id.String()+"/1700000000000.png", uploaded.Path)

	profile, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, uploaded.PublicURL, profile.PhotoURL)
}

func TestGetMyCommittee(t *testing.T) {
	me := uuid.New()
	svc, _, _ := newProfileFixture(
		&models.Member{ID: me, Email: "me@school.edu", LastName: strPtr("Turing"), GradYear: intPtr(2027), CommitteeID: int64Ptr(1)},
		&models.Member{ID: uuid.New(), Email: "ada@school.edu", LastName: strPtr("Lovelace"), GradYear: intPtr(2027), CommitteeID: int64Ptr(1)},
		&models.Member{ID: uuid.New(), Email: "anon@school.edu", GradYear: intPtr(2027), CommitteeID: int64Ptr(1)},
	)

	resp, err := svc.GetMyCommittee(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, "Prom", resp.Committee.Name)
	require.Len(t, resp.Members, 3)
	assert.Equal(t, "Lovelace", *resp.Members[0].LastName)
	assert.Equal(t, "Turing", *resp.Members[1].LastName)
	assert.Equal(t, "anon@school.edu", resp.Members[2].Email)
}

func TestGetMyCommittee_Unassigned(t *testing.T) {
	me := uuid.New()
	svc, _, _ := newProfileFixture(&models.Member{ID: me, Email: "me@school.edu"})

	_, err := svc.GetMyCommittee(context.Background(), me)
	assert.ErrorIs(t, err, apperrors.ErrMemberUnassigned)
}
