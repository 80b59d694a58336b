package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

// CommitteeService defines the interface for committee-related operations.
// Committees are append-only.
type CommitteeService interface {
	ListCommittees(ctx context.Context, gradYear int) ([]dto.CommitteeResponse, error)
	CreateCommittee(ctx context.Context, gradYear int, req *dto.CreateCommitteeRequest) ([]dto.CommitteeResponse, error)
}

// committeeServiceImpl implements the CommitteeService interface
type committeeServiceImpl struct {
	committeeRepo CommitteeStore
	councilRepo   CouncilStore
	changes       *changePublisher
}

// NewCommitteeService creates a new committee service instance
func NewCommitteeService(committeeRepo CommitteeStore, councilRepo CouncilStore, changes *changePublisher) CommitteeService {
	return &committeeServiceImpl{
		committeeRepo: committeeRepo,
		councilRepo:   councilRepo,
		changes:       changes,
	}
}

// ListCommittees returns a council's committees ordered by name
func (s *committeeServiceImpl) ListCommittees(ctx context.Context, gradYear int) ([]dto.CommitteeResponse, error) {
	committees, err := s.committeeRepo.ListByGradYear(ctx, gradYear)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommitteeResponse, 0, len(committees))
	for _, c := range committees {
		out = append(out, dto.NewCommitteeResponse(c))
	}
	return out, nil
}

// CreateCommittee adds a committee to the council of gradYear and returns the
// reloaded list
func (s *committeeServiceImpl) CreateCommittee(ctx context.Context, gradYear int, req *dto.CreateCommitteeRequest) ([]dto.CommitteeResponse, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Committee name is required.")
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, apperrors.NewValidationError("Budget cannot be negative.")
	}

	if _, err := s.councilRepo.GetByGradYear(ctx, gradYear); err != nil {
		return nil, err
	}

	committee := &models.Committee{
		GradYear: gradYear,
		Name:     strings.TrimSpace(req.Name),
		Budget:   req.Budget,
	}
	if err := s.committeeRepo.Create(ctx, committee); err != nil {
		return nil, err
	}

	s.changes.publish(ctx, "committee.created", strconv.FormatInt(committee.ID, 10), dto.NewCommitteeResponse(committee))
	return s.ListCommittees(ctx, gradYear)
}
