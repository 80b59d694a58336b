package models

import (
	"strings"
	"time"
)

// Advisor defines the advisor model based on the 'advisors' table
type Advisor struct {
	ID        int64     `json:"advisorId" db:"advisor_id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Roles     []string  `json:"roles" db:"roles"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Building  *string   `json:"building,omitempty" db:"building"`
	Address   *string   `json:"address,omitempty" db:"address"`
	PhotoPath *string   `json:"photoPath,omitempty" db:"photo_path"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last name
func (a *Advisor) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
