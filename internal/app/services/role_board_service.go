package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/roster"
)

// RoleBoardService drives the per-council role board. Edits return the board
// in its resulting state, also when the write failed and was rolled back.
type RoleBoardService interface {
	GetBoard(ctx context.Context, gradYear int) (*roster.Board, error)
	UpdateMemberCommittee(ctx context.Context, gradYear int, memberID uuid.UUID, committeeID *int64) (*roster.Board, error)
	UpdateMemberRole(ctx context.Context, gradYear int, memberID uuid.UUID, role string) (*roster.Board, error)
}

// roleBoardServiceImpl implements the RoleBoardService interface
type roleBoardServiceImpl struct {
	committeeRepo CommitteeStore
	memberRepo    MemberStore
	changes       *changePublisher
}

// NewRoleBoardService creates a new role board service instance
func NewRoleBoardService(committeeRepo CommitteeStore, memberRepo MemberStore, changes *changePublisher) RoleBoardService {
	return &roleBoardServiceImpl{
		committeeRepo: committeeRepo,
		memberRepo:    memberRepo,
		changes:       changes,
	}
}

// GetBoard loads the council's committees and members
func (s *roleBoardServiceImpl) GetBoard(ctx context.Context, gradYear int) (*roster.Board, error) {
	committees, err := s.committeeRepo.ListByGradYear(ctx, gradYear)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListByGradYear(ctx, gradYear)
	if err != nil {
		return nil, err
	}
	return roster.NewBoard(gradYear, committees, members), nil
}

// UpdateMemberCommittee reassigns a member; nil unassigns
func (s *roleBoardServiceImpl) UpdateMemberCommittee(ctx context.Context, gradYear int, memberID uuid.UUID, committeeID *int64) (*roster.Board, error) {
	board, err := s.GetBoard(ctx, gradYear)
	if err != nil {
		return nil, err
	}

	if err := board.ReassignCommittee(ctx, s.memberRepo, memberID, committeeID); err != nil {
		return board, err
	}

	if row, ok := board.Row(memberID); ok {
		s.changes.publish(ctx, "member.committee_changed", memberID.String(), row)
	}
	return board, nil
}

// UpdateMemberRole sets a member's role; "" clears it
func (s *roleBoardServiceImpl) UpdateMemberRole(ctx context.Context, gradYear int, memberID uuid.UUID, role string) (*roster.Board, error) {
	board, err := s.GetBoard(ctx, gradYear)
	if err != nil {
		return nil, err
	}

	if err := board.UpdateRole(ctx, s.memberRepo, memberID, role); err != nil {
		return board, err
	}

	if row, ok := board.Row(memberID); ok {
		s.changes.publish(ctx, "member.role_changed", memberID.String(), row)
	}
	return board, nil
}
