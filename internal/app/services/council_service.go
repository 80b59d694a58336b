package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/councilname"
)

// CouncilService defines the interface for council-related operations
type CouncilService interface {
	ListCouncils(ctx context.Context) ([]dto.CouncilResponse, error)
	GetCouncil(ctx context.Context, gradYear int) (*dto.CouncilResponse, error)
	PreviewName(gradYear int, fallYear, springYear *int) dto.NamePreviewResponse
	CreateCouncil(ctx context.Context, req *dto.CreateCouncilRequest, logo *FileUpload) (*dto.CouncilResponse, error)
	UpdateCouncil(ctx context.Context, gradYear int, req *dto.UpdateCouncilRequest, logo *FileUpload) (*dto.CouncilResponse, error)
}

// councilServiceImpl implements the CouncilService interface
type councilServiceImpl struct {
	councilRepo CouncilStore
	photos      PhotoService
	changes     *changePublisher
}

// NewCouncilService creates a new council service instance
func NewCouncilService(councilRepo CouncilStore, photos PhotoService, changes *changePublisher) CouncilService {
	return &councilServiceImpl{
		councilRepo: councilRepo,
		photos:      photos,
		changes:     changes,
	}
}

// councilExistsError is the conflict returned for a taken graduation year
func councilExistsError(gradYear int) error {
	return apperrors.NewCustomError(
		apperrors.ErrCouncilAlreadyExists,
		fmt.Sprintf("A council for class of %d already exists.", gradYear),
	)
}

func (s *councilServiceImpl) toResponse(c *models.Council) dto.CouncilResponse {
	var logoURL *string
	if c.LogoPath != nil && *c.LogoPath != "" {
		u := s.photos.ResolveDisplayURL(c.LogoPath, "")
		logoURL = &u
	}
	return dto.NewCouncilResponse(c, logoURL)
}

// ListCouncils returns every council ordered by graduation year
func (s *councilServiceImpl) ListCouncils(ctx context.Context) ([]dto.CouncilResponse, error) {
	councils, err := s.councilRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CouncilResponse, 0, len(councils))
	for _, c := range councils {
		out = append(out, s.toResponse(c))
	}
	return out, nil
}

// GetCouncil retrieves the council of a graduation year
func (s *councilServiceImpl) GetCouncil(ctx context.Context, gradYear int) (*dto.CouncilResponse, error) {
	c, err := s.councilRepo.GetByGradYear(ctx, gradYear)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(c)
	return &resp, nil
}

// PreviewName derives the council name the form would save
func (s *councilServiceImpl) PreviewName(gradYear int, fallYear, springYear *int) dto.NamePreviewResponse {
	spring := councilname.ResolveSpring(fallYear, springYear)
	name := councilname.Name(gradYear, spring)
	return dto.NamePreviewResponse{
		GradYear:   gradYear,
		SpringYear: spring,
		Name:       name,
		Computable: name != "",
	}
}

// CreateCouncil validates the years, checks the graduation year is free,
// uploads the optional logo and inserts the council. A logo failure aborts
// before anything is inserted.
func (s *councilServiceImpl) CreateCouncil(ctx context.Context, req *dto.CreateCouncilRequest, logo *FileUpload) (*dto.CouncilResponse, error) {
	if req == nil || req.GradYear <= 0 {
		return nil, apperrors.NewValidationError("Graduation year is required.")
	}
	if req.FallYear == nil && req.SpringYear == nil {
		return nil, apperrors.NewValidationError("Fall or spring year is required.")
	}

	spring := councilname.ResolveSpring(req.FallYear, req.SpringYear)
	name := councilname.Name(req.GradYear, spring)
	if name == "" {
		return nil, apperrors.NewValidationError("Council name could not be derived from the given years.")
	}

	// Advisory only; the unique constraint decides under concurrency.
	exists, err := s.councilRepo.ExistsByGradYear(ctx, req.GradYear)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, councilExistsError(req.GradYear)
	}

	council := &models.Council{
		GradYear:   req.GradYear,
		FallYear:   councilname.ResolveFall(req.FallYear, spring),
		SpringYear: spring,
		Name:       &name,
		AdvisorID:  req.AdvisorID,
	}

	if logo != nil {
		uploaded, err := s.photos.UploadAndLink(ctx, NamespaceCouncils, strconv.Itoa(req.GradYear), logo)
		if err != nil {
			return nil, err
		}
		council.LogoPath = &uploaded.Path
	}

	if err := s.councilRepo.Create(ctx, council); err != nil {
		if errors.Is(err, apperrors.ErrCouncilAlreadyExists) {
			return nil, councilExistsError(req.GradYear)
		}
		return nil, err
	}

	resp := s.toResponse(council)
	s.changes.publish(ctx, "council.created", strconv.Itoa(council.GradYear), resp)
	return &resp, nil
}

// councilPatchFromRequest collects the touched fields; the name and logo are
// added by the caller
func councilPatchFromRequest(req *dto.UpdateCouncilRequest) (models.CouncilPatch, error) {
	var patch models.CouncilPatch
	if req == nil {
		return patch, nil
	}

	if req.FallYear != nil {
		fall := *req.FallYear
		patch.FallYear = &fall
	}
	if req.SpringYear != nil {
		spring := *req.SpringYear
		patch.SpringYear = &spring
	} else if req.FallYear != nil {
		patch.SpringYear = councilname.ResolveSpring(req.FallYear, nil)
	}

	if req.AdvisorID != nil {
		patch.AdvisorSet = true
		if raw := strings.TrimSpace(*req.AdvisorID); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return patch, apperrors.NewValidationError("Invalid advisor ID.")
			}
			patch.AdvisorID = &id
		}
	}
	return patch, nil
}

// UpdateCouncil writes the touched fields of a council. The graduation year
// only locates the row.
func (s *councilServiceImpl) UpdateCouncil(ctx context.Context, gradYear int, req *dto.UpdateCouncilRequest, logo *FileUpload) (*dto.CouncilResponse, error) {
	patch, err := councilPatchFromRequest(req)
	if err != nil {
		return nil, err
	}
	if patch.Empty() && logo == nil {
		return nil, apperrors.NewValidationError("Nothing to update.")
	}

	stored, err := s.councilRepo.GetByGradYear(ctx, gradYear)
	if err != nil {
		return nil, err
	}

	if logo != nil {
		uploaded, err := s.photos.UploadAndLink(ctx, NamespaceCouncils, strconv.Itoa(gradYear), logo)
		if err != nil {
			return nil, err
		}
		patch.LogoPath = &uploaded.Path
	}

	fall := patch.FallYear
	if fall == nil {
		fall = stored.FallYear
	}
	spring := patch.SpringYear
	if spring == nil {
		spring = stored.SpringYear
	}
	if name := councilname.FromYears(gradYear, fall, spring); name != "" {
		patch.Name = &name
	}

	updated, err := s.councilRepo.Update(ctx, gradYear, patch)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(updated)
	s.changes.publish(ctx, "council.updated", strconv.Itoa(gradYear), resp)
	return &resp, nil
}
