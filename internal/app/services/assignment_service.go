package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

// AssignmentService defines the interface for committee assignments
type AssignmentService interface {
	GetAssignments(ctx context.Context, committeeID int64) (*dto.AssignmentView, error)
	AssignMember(ctx context.Context, committeeID int64, req *dto.AssignMemberRequest) (*dto.AssignmentView, error)
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	committeeRepo CommitteeStore
	memberRepo    MemberStore
	photos        PhotoService
	changes       *changePublisher
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(committeeRepo CommitteeStore, memberRepo MemberStore, photos PhotoService, changes *changePublisher) AssignmentService {
	return &assignmentServiceImpl{
		committeeRepo: committeeRepo,
		memberRepo:    memberRepo,
		photos:        photos,
		changes:       changes,
	}
}

func sortByDisplayName(members []*models.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return strings.ToLower(members[i].DisplayName()) < strings.ToLower(members[j].DisplayName())
	})
}

func (s *assignmentServiceImpl) summary(m *models.Member) dto.MemberSummary {
	return dto.NewMemberSummary(m, s.photos.ResolveDisplayURL(m.ProfilePicture, s.photos.FallbackImage()))
}

// view partitions the members of the committee's grad year. Members of other
// committees appear in neither list.
func (s *assignmentServiceImpl) view(ctx context.Context, committee *models.Committee) (*dto.AssignmentView, error) {
	members, err := s.memberRepo.ListByGradYear(ctx, committee.GradYear)
	if err != nil {
		return nil, err
	}
	sortByDisplayName(members)

	view := &dto.AssignmentView{
		Committee:  dto.NewCommitteeResponse(committee),
		Assigned:   []dto.MemberSummary{},
		Unassigned: []dto.MemberSummary{},
	}
	for _, m := range members {
		switch {
		case m.CommitteeID == nil:
			view.Unassigned = append(view.Unassigned, s.summary(m))
		case *m.CommitteeID == committee.ID:
			view.Assigned = append(view.Assigned, s.summary(m))
		}
	}
	return view, nil
}

// GetAssignments returns the assigned and unassigned members of a committee's
// graduation year
func (s *assignmentServiceImpl) GetAssignments(ctx context.Context, committeeID int64) (*dto.AssignmentView, error) {
	committee, err := s.committeeRepo.GetByID(ctx, committeeID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, committee)
}

// AssignMember sets a member's committee and role in one write
func (s *assignmentServiceImpl) AssignMember(ctx context.Context, committeeID int64, req *dto.AssignMemberRequest) (*dto.AssignmentView, error) {
	if req == nil || strings.TrimSpace(req.MemberID) == "" {
		return nil, apperrors.NewValidationError("Select a member to assign.")
	}
	memberID, err := uuid.Parse(strings.TrimSpace(req.MemberID))
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid member ID.")
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = string(models.MemberRoleMember)
	}
	if role != string(models.MemberRoleChair) && role != string(models.MemberRoleMember) {
		return nil, apperrors.NewValidationError("Role must be Chair or Member.")
	}

	committee, err := s.committeeRepo.GetByID(ctx, committeeID)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.GradYear == nil || *member.GradYear != committee.GradYear {
		return nil, apperrors.ErrMemberOutOfCouncil
	}

	if err := s.memberRepo.AssignCommittee(ctx, memberID, committee.ID, role); err != nil {
		return nil, err
	}

	s.changes.publish(ctx, "member.assigned", memberID.String(), map[string]interface{}{
		"memberId":    memberID,
		"committeeId": committee.ID,
		"role":        role,
	})
	return s.view(ctx, committee)
}
