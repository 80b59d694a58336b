package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
	"github.com/hooplannedthis/api/internal/pkg/saga"
)

// AdvisorService defines the interface for advisor-related operations.
// Mutations return the reloaded advisor list.
type AdvisorService interface {
	ListAdvisors(ctx context.Context) ([]dto.AdvisorResponse, error)
	CreateAdvisor(ctx context.Context, req *dto.AdvisorRequest, photo *FileUpload) (*dto.AdvisorMutationResponse, error)
	UpdateAdvisor(ctx context.Context, id int64, req *dto.AdvisorRequest, photo *FileUpload) (*dto.AdvisorMutationResponse, error)
	DeleteAdvisor(ctx context.Context, id int64) (*dto.AdvisorMutationResponse, error)
	UploadAdvisorPhoto(ctx context.Context, id int64, photo *FileUpload) (*dto.AdvisorMutationResponse, error)
}

// advisorServiceImpl implements the AdvisorService interface
type advisorServiceImpl struct {
	advisorRepo AdvisorStore
	photos      PhotoService
	changes     *changePublisher
}

// NewAdvisorService creates a new advisor service instance
func NewAdvisorService(advisorRepo AdvisorStore, photos PhotoService, changes *changePublisher) AdvisorService {
	return &advisorServiceImpl{
		advisorRepo: advisorRepo,
		photos:      photos,
		changes:     changes,
	}
}

// advisorFromRequest validates the request and maps it to a model
func advisorFromRequest(req *dto.AdvisorRequest) (*models.Advisor, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: advisor is nil", apperrors.ErrValidationFailed)
	}

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return nil, apperrors.NewValidationError("First and last name are required.")
	}

	roles := make([]string, 0, len(req.Roles))
	seen := make(map[string]bool, len(req.Roles))
	for _, r := range req.Roles {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		if !isAdvisorRole(r) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Unknown advisor role %q.", r))
		}
		seen[r] = true
		roles = append(roles, r)
	}

	return &models.Advisor{
		FirstName: first,
		LastName:  last,
		Roles:     roles,
		Email:     helpers.NullIfBlank(req.Email),
		Phone:     helpers.NullIfBlank(req.Phone),
		Building:  helpers.NullIfBlank(req.Building),
		Address:   helpers.NullIfBlank(req.Address),
	}, nil
}

func isAdvisorRole(role string) bool {
	for _, r := range models.AdvisorRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}

func (s *advisorServiceImpl) toResponse(a *models.Advisor) dto.AdvisorResponse {
	return dto.NewAdvisorResponse(a, s.photos.ResolveDisplayURL(a.PhotoPath, s.photos.FallbackImage()))
}

// ListAdvisors returns every advisor ordered by ID
func (s *advisorServiceImpl) ListAdvisors(ctx context.Context) ([]dto.AdvisorResponse, error) {
	advisors, err := s.advisorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdvisorResponse, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, s.toResponse(a))
	}
	return out, nil
}

// reload builds the mutation response; id 0 means no single advisor
func (s *advisorServiceImpl) reload(ctx context.Context, id int64) (*dto.AdvisorMutationResponse, error) {
	list, err := s.ListAdvisors(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdvisorMutationResponse{Advisors: list}
	for i := range list {
		if list[i].AdvisorID == id {
			resp.Advisor = &list[i]
			break
		}
	}
	return resp, nil
}

func (s *advisorServiceImpl) photoStep(a *models.Advisor, photo *FileUpload) saga.Step {
	step := saga.Step{Name: "photo upload"}
	if photo == nil {
		return step
	}
	step.Run = func(ctx context.Context) error {
		_, err := s.photos.UploadAndLink(ctx, NamespaceAdvisors, strconv.FormatInt(a.ID, 10), photo)
		return err
	}
	return step
}

// finish reloads after a saga whose primary write succeeded. The saga's
// partial failure, if any, is returned together with the response.
func (s *advisorServiceImpl) finish(ctx context.Context, res saga.Result, eventType string, a *models.Advisor) (*dto.AdvisorMutationResponse, error) {
	resp, err := s.reload(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if resp.Advisor != nil {
		s.changes.publish(ctx, eventType, strconv.FormatInt(a.ID, 10), resp.Advisor)
	}
	return resp, res.Error()
}

// CreateAdvisor inserts an advisor, then uploads its photo when one is given
func (s *advisorServiceImpl) CreateAdvisor(ctx context.Context, req *dto.AdvisorRequest, photo *FileUpload) (*dto.AdvisorMutationResponse, error) {
	a, err := advisorFromRequest(req)
	if err != nil {
		return nil, err
	}

	res := saga.Run(ctx, "advisor",
		saga.Step{Name: "advisor insert", Run: func(ctx context.Context) error {
			return s.advisorRepo.Create(ctx, a)
		}},
		s.photoStep(a, photo),
	)
	if !res.Persisted() {
		return nil, res.Err
	}

	return s.finish(ctx, res, "advisor.created", a)
}

// UpdateAdvisor replaces every field of an advisor, then uploads its photo
// when one is given
func (s *advisorServiceImpl) UpdateAdvisor(ctx context.Context, id int64, req *dto.AdvisorRequest, photo *FileUpload) (*dto.AdvisorMutationResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid advisor ID.")
	}
	a, err := advisorFromRequest(req)
	if err != nil {
		return nil, err
	}
	a.ID = id

	res := saga.Run(ctx, "advisor",
		saga.Step{Name: "advisor update", Run: func(ctx context.Context) error {
			return s.advisorRepo.Update(ctx, a)
		}},
		s.photoStep(a, photo),
	)
	if !res.Persisted() {
		return nil, res.Err
	}

	return s.finish(ctx, res, "advisor.updated", a)
}

// DeleteAdvisor deletes an advisor by ID
func (s *advisorServiceImpl) DeleteAdvisor(ctx context.Context, id int64) (*dto.AdvisorMutationResponse, error) {
	if err := s.advisorRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	resp, err := s.reload(ctx, 0)
	if err != nil {
		return nil, err
	}
	s.changes.publish(ctx, "advisor.deleted", strconv.FormatInt(id, 10), map[string]int64{"advisorId": id})
	return resp, nil
}

// UploadAdvisorPhoto replaces the photo of an existing advisor
func (s *advisorServiceImpl) UploadAdvisorPhoto(ctx context.Context, id int64, photo *FileUpload) (*dto.AdvisorMutationResponse, error) {
	if photo == nil {
		return nil, apperrors.NewValidationError("No image file provided.")
	}
	if _, err := s.advisorRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err := s.photos.UploadAndLink(ctx, NamespaceAdvisors, strconv.FormatInt(id, 10), photo); err != nil {
		return nil, err
	}

	resp, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.Advisor != nil {
		s.changes.publish(ctx, "advisor.photo_updated", strconv.FormatInt(id, 10), resp.Advisor)
	}
	return resp, nil
}
