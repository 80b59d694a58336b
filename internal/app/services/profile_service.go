package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
	"github.com/hooplannedthis/api/internal/pkg/validation"
)

// ProfileService handles a member's own row
type ProfileService interface {
	GetProfile(ctx context.Context, memberID uuid.UUID) (*dto.ProfileResponse, error)
	UpsertProfile(ctx context.Context, memberID uuid.UUID, email string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	UploadProfilePhoto(ctx context.Context, memberID uuid.UUID, photo *FileUpload) (*dto.PhotoUploadResponse, error)
	GetMyCommittee(ctx context.Context, memberID uuid.UUID) (*dto.MyCommitteeResponse, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	memberRepo    MemberStore
	committeeRepo CommitteeStore
	photos        PhotoService
	changes       *changePublisher
}

// NewProfileService creates a new profile service instance
func NewProfileService(memberRepo MemberStore, committeeRepo CommitteeStore, photos PhotoService, changes *changePublisher) ProfileService {
	return &profileServiceImpl{
		memberRepo:    memberRepo,
		committeeRepo: committeeRepo,
		photos:        photos,
		changes:       changes,
	}
}

func (s *profileServiceImpl) toResponse(m *models.Member) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		MemberSummary: dto.NewMemberSummary(m, s.photos.ResolveDisplayURL(m.ProfilePicture, s.photos.FallbackImage())),
		FullName:      m.FullName,
		Phone:         m.Phone,
	}
}

// GetProfile returns the caller's row
func (s *profileServiceImpl) GetProfile(ctx context.Context, memberID uuid.UUID) (*dto.ProfileResponse, error) {
	m, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(m), nil
}

// UpsertProfile creates or refreshes the caller's row; the full name is
// derived from first and last name
func (s *profileServiceImpl) UpsertProfile(ctx context.Context, memberID uuid.UUID, email string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	if memberID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if req == nil || strings.TrimSpace(req.FirstName) == "" {
		return nil, apperrors.NewValidationError("First name is required.")
	}
	if req.GradYear < validation.MinYear || req.GradYear > validation.MaxYear {
		return nil, apperrors.NewValidationError("Graduation year must be between 1900 and 2100.")
	}

	first := strings.TrimSpace(req.FirstName)
	last := helpers.NullIfBlank(req.LastName)
	fullName := models.JoinName(&first, last)
	gradYear := req.GradYear

	m := &models.Member{
		ID:        memberID,
		Email:     strings.TrimSpace(email),
		FirstName: &first,
		LastName:  last,
		FullName:  &fullName,
		Phone:     helpers.NullIfBlank(req.Phone),
		GradYear:  &gradYear,
	}
	if err := s.memberRepo.Upsert(ctx, m); err != nil {
		return nil, err
	}

	stored, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(stored)
	s.changes.publish(ctx, "member.profile_updated", memberID.String(), resp.MemberSummary)
	return resp, nil
}

// UploadProfilePhoto stores the caller's profile picture
func (s *profileServiceImpl) UploadProfilePhoto(ctx context.Context, memberID uuid.UUID, photo *FileUpload) (*dto.PhotoUploadResponse, error) {
	if memberID == uuid.Nil {
		return nil, apperrors.NewValidationError("Missing owner ID for photo upload.")
	}
	uploaded, err := s.photos.UploadAndLink(ctx, NamespaceMembers, memberID.String(), photo)
	if err != nil {
		return nil, err
	}

	s.changes.publish(ctx, "member.photo_updated", memberID.String(), map[string]string{"path": uploaded.Path})
	return &dto.PhotoUploadResponse{Path: uploaded.Path, PublicURL: uploaded.PublicURL}, nil
}

// GetMyCommittee returns the caller's committee and its members ordered by
// last name
func (s *profileServiceImpl) GetMyCommittee(ctx context.Context, memberID uuid.UUID) (*dto.MyCommitteeResponse, error) {
	m, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if m.CommitteeID == nil {
		return nil, apperrors.ErrMemberUnassigned
	}

	committee, err := s.committeeRepo.GetByID(ctx, *m.CommitteeID)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListByCommittee(ctx, committee.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return lastNameKey(members[i]) < lastNameKey(members[j])
	})

	resp := &dto.MyCommitteeResponse{
		Committee: dto.NewCommitteeResponse(committee),
		Members:   make([]dto.MemberSummary, 0, len(members)),
	}
	for _, teammate := range members {
		resp.Members = append(resp.Members, dto.NewMemberSummary(teammate, s.photos.ResolveDisplayURL(teammate.ProfilePicture, s.photos.FallbackImage())))
	}
	return resp, nil
}

// lastNameKey sorts missing last names after present ones
func lastNameKey(m *models.Member) string {
	if m.LastName == nil || strings.TrimSpace(*m.LastName) == "" {
		return "\uffff" + strings.ToLower(m.DisplayName())
	}
	return strings.ToLower(strings.TrimSpace(*m.LastName))
}
