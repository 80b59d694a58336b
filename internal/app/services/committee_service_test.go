package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

func TestCreateCommittee_ReloadsInNameOrder(t *testing.T) {
	committees := newFakeCommitteeStore()
	n := &recordingNotifier{}
	svc := NewCommitteeService(committees, seededCouncils(), newTestChanges(n))
	ctx := context.Background()

	_, err := svc.CreateCommittee(ctx, 2027, &dto.CreateCommitteeRequest{Name: "Prom"})
	require.NoError(t, err)
	budget := 1200.0
	list, err := svc.CreateCommittee(ctx, 2027, &dto.CreateCommitteeRequest{Name: " Finance ", Budget: &budget})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "Finance", list[0].Name)
	assert.Equal(t, 1200.0, *list[0].Budget)
	assert.Equal(t, 2027, list[0].GradYear)
	assert.Equal(t, "Prom", list[1].Name)
	assert.Equal(t, []string{"committee.created", "committee.created"}, n.types())
}

func TestCreateCommittee_Validation(t *testing.T) {
	committees := newFakeCommitteeStore()
	svc := NewCommitteeService(committees, seededCouncils(), newTestChanges(&recordingNotifier{}))
	negative := -1.0

	_, err := svc.CreateCommittee(context.Background(), 2027, &dto.CreateCommitteeRequest{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateCommittee(context.Background(), 2027, &dto.CreateCommitteeRequest{Name: "Prom", Budget: &negative})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateCommittee(context.Background(), 2031, &dto.CreateCommitteeRequest{Name: "Prom"})
	assert.ErrorIs(t, err, apperrors.ErrCouncilNotFound)

	assert.Empty(t, committees.committees)
}
