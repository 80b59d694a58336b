package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Member defines a row of the 'users' table
type Member struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	FirstName      *string   `json:"firstName,omitempty" db:"first_name"`
	LastName       *string   `json:"lastName,omitempty" db:"last_name"`
	FullName       *string   `json:"fullName,omitempty" db:"full_name"`
	Phone          *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	GradYear       *int      `json:"gradYear,omitempty" db:"grad_year"`
	CommitteeID    *int64    `json:"committeeId,omitempty" db:"committee_id"`
	Role           *string   `json:"role,omitempty" db:"role"`
	ProfilePicture *string   `json:"profilePicture,omitempty" db:"profile_picture"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// CommitteeName is filled by joined reads
	CommitteeName *string `json:"committeeName,omitempty" db:"-"`
}

// DisplayName prefers the stored full name, then first and last name, then email
func (m *Member) DisplayName() string {
	if m.FullName != nil && strings.TrimSpace(*m.FullName) != "" {
		return *m.FullName
	}
	if name := JoinName(m.FirstName, m.LastName); name != "" {
		return name
	}
	return m.Email
}

// JoinName joins the non-empty name parts with a space
func JoinName(first, last *string) string {
	var parts []string
	for _, p := range []*string{first, last} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	return strings.Join(parts, " ")
}
