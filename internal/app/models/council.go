package models

import "time"

// Council is keyed by its unique graduation year
type Council struct {
	ID         int64     `json:"councilId" db:"council_id"`
	GradYear   int       `json:"gradYear" db:"grad_year"`
	FallYear   *int      `json:"fallYear,omitempty" db:"fall_year"`
	SpringYear *int      `json:"springYear,omitempty" db:"spring_year"`
	Name       *string   `json:"councilName,omitempty" db:"council_name"`
	AdvisorID  *int64    `json:"advisorId,omitempty" db:"advisor_id"`
	LogoPath   *string   `json:"logoPath,omitempty" db:"logo_path"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CouncilPatch carries the columns of a council update; nil fields are left untouched
type CouncilPatch struct {
	FallYear   *int
	SpringYear *int
	Name       *string
	LogoPath   *string
	// AdvisorSet marks AdvisorID as touched; a nil AdvisorID then clears it
	AdvisorSet bool
	AdvisorID  *int64
}

// Empty reports whether the patch touches no column
func (p CouncilPatch) Empty() bool {
	return p.FallYear == nil && p.SpringYear == nil && p.Name == nil && p.LogoPath == nil && !p.AdvisorSet
}

// Committee belongs to exactly one council by graduation year
type Committee struct {
	ID        int64     `json:"committeeId" db:"committee_id"`
	GradYear  int       `json:"gradYear" db:"grad_year"`
	Name      string    `json:"committeeName" db:"committee_name"`
	Budget    *float64  `json:"committeeBudget,omitempty" db:"committee_budget"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
