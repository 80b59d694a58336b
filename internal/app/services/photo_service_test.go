package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

func TestImageExt(t *testing.T) {
	assert.Equal(t, "jpg", ImageExt("portrait.JPG"))
	assert.Equal(t, "png", ImageExt("archive.tar.png"))
	assert.Equal(t, "png", ImageExt("no-extension"))
	assert.Equal(t, "png", ImageExt("trailing."))
	assert.Equal(t, "webp", ImageExt(".webp"))
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "advisors/7/1700000000000.jpg", ObjectPath(NamespaceAdvisors, "7", "a.jpg", fixedNow))
	assert.Equal(t, "councils/2027/1700000000000.png", ObjectPath(NamespaceCouncils, "2027", "logo", fixedNow))

	id := uuid.New().String()
	assert.Equal(t, id+"/1700000000000.gif", ObjectPath(NamespaceMembers, id, "me.GIF", fixedNow))
}

func TestResolveDisplayURL(t *testing.T) {
	svc := newTestPhotoService(newMemoryObjectStore(), nil, nil)

	assert.Equal(t, testFallback, svc.ResolveDisplayURL(nil, testFallback))
	assert.Equal(t, testFallback, svc.ResolveDisplayURL(strPtr(""), testFallback))
	assert.Equal(t, "https://cdn.example.test/avatars/advisors/1/5.png", svc.ResolveDisplayURL(strPtr("advisors/1/5.png"), testFallback))
}

func TestUploadAndLink_RoundTrip(t *testing.T) {
	store := newMemoryObjectStore()
	advisors := newFakeAdvisorStore()
	a := &models.Advisor{FirstName: "Grace", LastName: "Hopper"}
	require.NoError(t, advisors.Create(context.Background(), a))
	svc := newTestPhotoService(store, advisors, nil)

	res, err := svc.UploadAndLink(context.Background(), NamespaceAdvisors, "1", pngUpload("face.PNG"))
	require.NoError(t, err)
	assert.Equal(t, "advisors/1/1700000000000.png", res.Path)

	stored, err := advisors.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, res.PublicURL, svc.ResolveDisplayURL(stored.PhotoPath, testFallback))

	require.Len(t, store.uploads, 1)
	assert.True(t, store.uploads[0].Upsert)
	assert.Equal(t, "image/png", store.uploads[0].ContentType)
}

func TestUploadAndLink_MemberNamespace(t *testing.T) {
	id := uuid.New()
	members := newFakeMemberStore(nil, &models.Member{ID: id, Email: "ada@school.edu"})
	svc := newTestPhotoService(newMemoryObjectStore(), nil, members)

	res, err := svc.UploadAndLink(context.Background(), NamespaceMembers, id.String(), pngUpload("me.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, id.String()+"/1700000000000.jpeg", res.Path)
	assert.Equal(t, res.Path, *members.members[id].ProfilePicture)
}

func TestUploadAndLink_CouncilHasNoLinkStep(t *testing.T) {
	store := newMemoryObjectStore()
	svc := newTestPhotoService(store, nil, nil)

	res, err := svc.UploadAndLink(context.Background(), NamespaceCouncils, "2027", pngUpload("logo.svg"))
	require.NoError(t, err)
	assert.Equal(t, "councils/2027/1700000000000.svg", res.Path)
	assert.Contains(t, store.objects, "avatars/councils/2027/1700000000000.svg")
}

func TestUploadAndLink_MissingOwner(t *testing.T) {
	store := newMemoryObjectStore()
	svc := newTestPhotoService(store, newFakeAdvisorStore(), nil)

	_, err := svc.UploadAndLink(context.Background(), NamespaceAdvisors, " ", pngUpload("a.png"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.objects)
}

func TestUploadAndLink_UploadErrorComesFirst(t *testing.T) {
	store := newMemoryObjectStore()
	store.uploadErr = errors.New("bucket not found")
	advisors := newFakeAdvisorStore()
	advisors.failOn["UpdatePhotoPath"] = errors.New("link failed")
	svc := newTestPhotoService(store, advisors, nil)

	_, err := svc.UploadAndLink(context.Background(), NamespaceAdvisors, "1", pngUpload("a.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket not found")
	assert.Equal(t, 0, advisors.calls, "link step must not run after a failed upload")
}

func TestUploadAndLink_LinkFailureLeavesObject(t *testing.T) {
	store := newMemoryObjectStore()
	svc := newTestPhotoService(store, newFakeAdvisorStore(), nil)

	_, err := svc.UploadAndLink(context.Background(), NamespaceAdvisors, "42", pngUpload("a.png"))
	assert.ErrorIs(t, err, apperrors.ErrAdvisorNotFound)
	assert.Len(t, store.objects, 1)
}
