package dto

import (
	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models"
)

// MemberSummary is a member row as shown in assignment and role views
type MemberSummary struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"displayName" example:"Ada Lovelace"`
	FirstName     *string   `json:"firstName,omitempty"`
	LastName      *string   `json:"lastName,omitempty"`
	Email         string    `json:"email" example:"ada@school.edu"`
	GradYear      *int      `json:"gradYear,omitempty" example:"2027"`
	CommitteeID   *int64    `json:"committeeId,omitempty"`
	CommitteeName *string   `json:"committeeName,omitempty"`
	Role          *string   `json:"role,omitempty" example:"Member"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
}

// NewMemberSummary maps a member; photoURL may be empty
func NewMemberSummary(m *models.Member, photoURL string) MemberSummary {
	return MemberSummary{
		ID:            m.ID,
		DisplayName:   m.DisplayName(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		GradYear:      m.GradYear,
		CommitteeID:   m.CommitteeID,
		CommitteeName: m.CommitteeName,
		Role:          m.Role,
		PhotoURL:      photoURL,
	}
}

// AssignMemberRequest assigns a member to a committee with a role
type AssignMemberRequest struct {
	MemberID string `json:"memberId" binding:"required,uuid" example:"0b8f6a4e-8c1d-4a53-9d4c-2b1f1e0f9a11"`
	Role     string `json:"role" binding:"omitempty,assignmentrole" example:"Member"`
}

// AssignmentView splits a grad year's members by committee membership
type AssignmentView struct {
	Committee  CommitteeResponse `json:"committee"`
	Assigned   []MemberSummary   `json:"assigned"`
	Unassigned []MemberSummary   `json:"unassigned"`
}

// UpdateMemberCommitteeRequest moves a member; a null committeeId unassigns
type UpdateMemberCommitteeRequest struct {
	CommitteeID *int64 `json:"committeeId" binding:"omitempty,gt=0" example:"3"`
}

// UpdateMemberRoleRequest sets a member's role; "" clears it
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"omitempty,memberrole" example:"Treasurer"`
}

// UpsertProfileRequest writes the caller's own member row
type UpsertProfileRequest struct {
	FirstName string  `json:"firstName" binding:"required,notblank,max=100" example:"Ada"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100" example:"Lovelace"`
	GradYear  int     `json:"gradYear" binding:"required,year" example:"2027"`
	Phone     *string `json:"phoneNumber" binding:"omitempty,max=50"`
}

// ProfileResponse is the caller's own row
type ProfileResponse struct {
	MemberSummary
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phoneNumber,omitempty"`
}

// MyCommitteeResponse is the caller's committee and its members
type MyCommitteeResponse struct {
	Committee CommitteeResponse `json:"committee"`
	Members   []MemberSummary   `json:"members"`
}

// UnlockRequest asks for an admin token
type UnlockRequest struct {
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// UnlockResponse carries the admin token
type UnlockResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
