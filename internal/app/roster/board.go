// Package roster is the per-council role board: committees for the picker and
// the council's members with two inline editors each. Edits are applied to
// the board before the remote write and rolled back when the write fails.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/formstate"
)

// Gateway performs the single-field member writes behind the board
type Gateway interface {
	UpdateCommittee(ctx context.Context, id uuid.UUID, committeeID *int64) error
	UpdateRole(ctx context.Context, id uuid.UUID, role *string) error
}

// CommitteeOption is one entry of the committee picker
type CommitteeOption struct {
	ID   int64  `json:"committeeId"`
	Name string `json:"committeeName"`
}

// Row is one member line of the board
type Row struct {
	MemberID       uuid.UUID       `json:"memberId"`
	DisplayName    string          `json:"displayName"`
	Email          string          `json:"email"`
	CommitteeID    *int64          `json:"committeeId"`
	CommitteeName  *string         `json:"committeeName"`
	Role           *string         `json:"role"`
	CommitteeState formstate.State `json:"committeeState"`
	RoleState      formstate.State `json:"roleState"`
}

// Board is the state of one council's role manager
type Board struct {
	GradYear   int               `json:"gradYear"`
	Committees []CommitteeOption `json:"committees"`
	Roles      []string          `json:"roles"`
	Rows       []Row             `json:"members"`
}

// NewBoard builds a board from committees in picker order and members in
// display order
func NewBoard(gradYear int, committees []*models.Committee, members []*models.Member) *Board {
	b := &Board{
		GradYear:   gradYear,
		Committees: make([]CommitteeOption, 0, len(committees)),
		Roles:      models.EnumValues(models.MemberRoles),
		Rows:       make([]Row, 0, len(members)),
	}
	for _, c := range committees {
		b.Committees = append(b.Committees, CommitteeOption{ID: c.ID, Name: c.Name})
	}
	for _, m := range members {
		b.Rows = append(b.Rows, Row{
			MemberID:       m.ID,
			DisplayName:    m.DisplayName(),
			Email:          m.Email,
			CommitteeID:    m.CommitteeID,
			CommitteeName:  m.CommitteeName,
			Role:           m.Role,
			CommitteeState: formstate.Idle(),
			RoleState:      formstate.Idle(),
		})
	}
	return b
}

// Row returns the row of a member
func (b *Board) Row(memberID uuid.UUID) (*Row, bool) {
	for i := range b.Rows {
		if b.Rows[i].MemberID == memberID {
			return &b.Rows[i], true
		}
	}
	return nil, false
}

func (b *Board) committeeName(id int64) (string, bool) {
	for _, c := range b.Committees {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// ReassignCommittee moves a member to committeeID, nil unassigns. On failure
// the row returns to its pre-edit values and the write error is returned.
func (b *Board) ReassignCommittee(ctx context.Context, gw Gateway, memberID uuid.UUID, committeeID *int64) error {
	row, ok := b.Row(memberID)
	if !ok {
		return apperrors.ErrMemberOutOfCouncil
	}

	var label *string
	if committeeID != nil {
		name, ok := b.committeeName(*committeeID)
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("Committee %d does not belong to class of %d.", *committeeID, b.GradYear))
		}
		label = &name
	}

	state, err := row.CommitteeState.Submit()
	if err != nil {
		return err
	}
	prevID, prevName := row.CommitteeID, row.CommitteeName
	row.CommitteeState = state
	row.CommitteeID = committeeID

	if err := gw.UpdateCommittee(ctx, memberID, committeeID); err != nil {
		row.CommitteeID, row.CommitteeName = prevID, prevName
		row.CommitteeState, _ = row.CommitteeState.Fail(err)
		return err
	}

	row.CommitteeName = label
	row.CommitteeState, _ = row.CommitteeState.Succeed("Committee updated.")
	return nil
}

// UpdateRole sets a member's role label; "" clears it. On failure the row
// returns to its pre-edit role and the write error is returned.
func (b *Board) UpdateRole(ctx context.Context, gw Gateway, memberID uuid.UUID, role string) error {
	row, ok := b.Row(memberID)
	if !ok {
		return apperrors.ErrMemberOutOfCouncil
	}

	var next *string
	if role = strings.TrimSpace(role); role != "" {
		if !validRole(role) {
			return apperrors.NewValidationError(fmt.Sprintf("Unknown role %q.", role))
		}
		next = &role
	}

	state, err := row.RoleState.Submit()
	if err != nil {
		return err
	}
	prev := row.Role
	row.RoleState = state
	row.Role = next

	if err := gw.UpdateRole(ctx, memberID, next); err != nil {
		row.Role = prev
		row.RoleState, _ = row.RoleState.Fail(err)
		return err
	}

	row.RoleState, _ = row.RoleState.Succeed("Role updated.")
	return nil
}

func validRole(role string) bool {
	for _, r := range models.MemberRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}
