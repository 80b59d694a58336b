package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/councilname"
)

func newTestCouncilService(store *memoryObjectStore, councils *fakeCouncilStore, n *recordingNotifier) CouncilService {
	return NewCouncilService(councils, newTestPhotoService(store, nil, nil), newTestChanges(n))
}

func TestCreateCouncil_FallOnlyDerivesSpring(t *testing.T) {
	councils := newFakeCouncilStore()
	n := &recordingNotifier{}
	svc := newTestCouncilService(newMemoryObjectStore(), councils, n)

	resp, err := svc.CreateCouncil(context.Background(), &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2027, *resp.SpringYear)
	assert.Equal(t, 2026, *resp.FallYear)
	assert.Equal(t, councilname.FourthYearTrustees, resp.Name)
	assert.Nil(t, resp.LogoURL)
	assert.Equal(t, []string{"council.created"}, n.types())
}

func TestCreateCouncil_SpringOnly(t *testing.T) {
	svc := newTestCouncilService(newMemoryObjectStore(), newFakeCouncilStore(), &recordingNotifier{})

	resp, err := svc.CreateCouncil(context.Background(), &dto.CreateCouncilRequest{GradYear: 2027, SpringYear: intPtr(2024)}, nil)
	require.NoError(t, err)
	assert.Equal(t, councilname.FirstYearCouncil, resp.Name)
	assert.Equal(t, 2023, *resp.FallYear)
}

func TestCreateCouncil_Validation(t *testing.T) {
	councils := newFakeCouncilStore()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})

	for name, req := range map[string]*dto.CreateCouncilRequest{
		"missing grad year": {FallYear: intPtr(2026)},
		"missing years":     {GradYear: 2027},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateCouncil(context.Background(), req, nil)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Equal(t, 0, councils.creates)
}

func TestCreateCouncil_DuplicateGradYear(t *testing.T) {
	councils := newFakeCouncilStore()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})
	ctx := context.Background()

	_, err := svc.CreateCouncil(ctx, &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, nil)
	require.NoError(t, err)

	_, err = svc.CreateCouncil(ctx, &dto.CreateCouncilRequest{GradYear: 2027, SpringYear: intPtr(2025)}, nil)
	assert.ErrorIs(t, err, apperrors.ErrCouncilAlreadyExists)
	assert.EqualError(t, err, "A council for class of 2027 already exists.")
	assert.Equal(t, 1, councils.creates, "the advisory check stops the second insert")
	assert.Len(t, councils.councils, 1)
}

func TestCreateCouncil_ConstraintDecidesRace(t *testing.T) {
	councils := newFakeCouncilStore()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})
	ctx := context.Background()

	_, err := svc.CreateCouncil(ctx, &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, nil)
	require.NoError(t, err)

	councils.hideExisting = true
	_, err = svc.CreateCouncil(ctx, &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, nil)
	assert.EqualError(t, err, "A council for class of 2027 already exists.")
	assert.Len(t, councils.councils, 1)
}

func TestCreateCouncil_LogoFailureInsertsNothing(t *testing.T) {
	store := newMemoryObjectStore()
	store.uploadErr = errors.New("bucket offline")
	councils := newFakeCouncilStore()
	svc := newTestCouncilService(store, councils, &recordingNotifier{})

	_, err := svc.CreateCouncil(context.Background(), &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, pngUpload("logo.png"))
	require.Error(t, err)
	assert.Equal(t, 0, councils.creates)
}

func TestCreateCouncil_WithLogo(t *testing.T) {
	svc := newTestCouncilService(newMemoryObjectStore(), newFakeCouncilStore(), &recordingNotifier{})

	resp, err := svc.CreateCouncil(context.Background(), &dto.CreateCouncilRequest{GradYear: 2027, FallYear: intPtr(2026)}, pngUpload("crest.png"))
	require.NoError(t, err)
	assert.Equal(t, "councils/2027/1700000000000.png", *resp.LogoPath)
	assert.Equal(t, "https://cdn.example.test/avatars/councils/2027/1700000000000.png", *resp.LogoURL)
}

func seededCouncils() *fakeCouncilStore {
	councils := newFakeCouncilStore()
	name := councilname.ThirdYearCouncil
	councils.councils[2027] = &models.Council{
		ID: 1, GradYear: 2027, FallYear: intPtr(2025), SpringYear: intPtr(2026),
		Name: &name, AdvisorID: int64Ptr(4),
	}
	return councils
}

func TestUpdateCouncil_TouchedFieldsOnly(t *testing.T) {
	councils := seededCouncils()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})

	resp, err := svc.UpdateCouncil(context.Background(), 2027, &dto.UpdateCouncilRequest{FallYear: intPtr(2026)}, nil)
	require.NoError(t, err)

	require.Len(t, councils.patches, 1)
	patch := councils.patches[0]
	assert.Equal(t, 2026, *patch.FallYear)
	assert.Equal(t, 2027, *patch.SpringYear, "spring is recomputed from fall")
	assert.Equal(t, councilname.FourthYearTrustees, *patch.Name)
	assert.False(t, patch.AdvisorSet)
	assert.Nil(t, patch.LogoPath)

	assert.Equal(t, int64(4), *resp.AdvisorID, "untouched advisor survives")
	assert.Equal(t, councilname.FourthYearTrustees, resp.Name)
}

func TestUpdateCouncil_ClearAdvisor(t *testing.T) {
	councils := seededCouncils()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})

	resp, err := svc.UpdateCouncil(context.Background(), 2027, &dto.UpdateCouncilRequest{AdvisorID: strPtr("")}, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.AdvisorID)

	patch := councils.patches[0]
	assert.True(t, patch.AdvisorSet)
	assert.Nil(t, patch.FallYear)
	assert.Equal(t, councilname.ThirdYearCouncil, *patch.Name, "name comes from the stored years")
}

func TestUpdateCouncil_LogoInSamePatch(t *testing.T) {
	councils := seededCouncils()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})

	_, err := svc.UpdateCouncil(context.Background(), 2027, &dto.UpdateCouncilRequest{}, pngUpload("new.png"))
	require.NoError(t, err)
	require.Len(t, councils.patches, 1)
	assert.Equal(t, "councils/2027/1700000000000.png", *councils.patches[0].LogoPath)
}

func TestUpdateCouncil_EmptyPayload(t *testing.T) {
	councils := seededCouncils()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})

	_, err := svc.UpdateCouncil(context.Background(), 2027, &dto.UpdateCouncilRequest{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, councils.patches)
}

func TestUpdateCouncil_BadAdvisorID(t *testing.T) {
	svc := newTestCouncilService(newMemoryObjectStore(), seededCouncils(), &recordingNotifier{})

	_, err := svc.UpdateCouncil(context.Background(), 2027, &dto.UpdateCouncilRequest{AdvisorID: strPtr("abc")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCouncil_Idempotent(t *testing.T) {
	councils := seededCouncils()
	svc := newTestCouncilService(newMemoryObjectStore(), councils, &recordingNotifier{})
	req := &dto.UpdateCouncilRequest{SpringYear: intPtr(2025), AdvisorID: strPtr("9")}

	first, err := svc.UpdateCouncil(context.Background(), 2027, req, nil)
	require.NoError(t, err)
	second, err := svc.UpdateCouncil(context.Background(), 2027, req, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPreviewName(t *testing.T) {
	svc := newTestCouncilService(newMemoryObjectStore(), newFakeCouncilStore(), &recordingNotifier{})

	p := svc.PreviewName(2027, intPtr(2026), nil)
	assert.True(t, p.Computable)
	assert.Equal(t, councilname.FourthYearTrustees, p.Name)

	p = svc.PreviewName(0, intPtr(2026), nil)
	assert.False(t, p.Computable)
	assert.Empty(t, p.Name)
}
