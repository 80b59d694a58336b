package dto

import "github.com/hooplannedthis/api/internal/app/models"

// CreateCouncilRequest creates a council. Accepted as JSON or multipart form
// with an optional "logo" file.
type CreateCouncilRequest struct {
	GradYear   int    `json:"gradYear" form:"gradYear" binding:"required,year" example:"2027"`
	FallYear   *int   `json:"fallYear" form:"fallYear" binding:"omitempty,year" example:"2026"`
	SpringYear *int   `json:"springYear" form:"springYear" binding:"omitempty,year"`
	AdvisorID  *int64 `json:"advisorId" form:"advisorId" binding:"omitempty,gt=0"`
}

// UpdateCouncilRequest edits a council. Only present fields are written;
// advisorId "" clears the advisor.
type UpdateCouncilRequest struct {
	FallYear   *int    `json:"fallYear" form:"fallYear" binding:"omitempty,year"`
	SpringYear *int    `json:"springYear" form:"springYear" binding:"omitempty,year"`
	AdvisorID  *string `json:"advisorId" form:"advisorId" example:"7"`
}

// CouncilResponse is a council with its resolved logo URL
type CouncilResponse struct {
	CouncilID  int64   `json:"councilId" example:"1"`
	GradYear   int     `json:"gradYear" example:"2027"`
	FallYear   *int    `json:"fallYear,omitempty" example:"2026"`
	SpringYear *int    `json:"springYear,omitempty" example:"2027"`
	Name       string  `json:"councilName" example:"Fourth Year Trustees"`
	AdvisorID  *int64  `json:"advisorId,omitempty" example:"7"`
	LogoPath   *string `json:"logoPath,omitempty"`
	LogoURL    *string `json:"logoUrl,omitempty"`
}

// NamePreviewResponse is the derived council name for a pair of years
type NamePreviewResponse struct {
	GradYear   int    `json:"gradYear" example:"2027"`
	SpringYear *int   `json:"springYear,omitempty" example:"2027"`
	Name       string `json:"councilName" example:"Fourth Year Trustees"`
	Computable bool   `json:"computable" example:"true"`
}

// NewCouncilResponse maps a council; logoURL may be nil when there is no logo
func NewCouncilResponse(c *models.Council, logoURL *string) CouncilResponse {
	resp := CouncilResponse{
		CouncilID:  c.ID,
		GradYear:   c.GradYear,
		FallYear:   c.FallYear,
		SpringYear: c.SpringYear,
		AdvisorID:  c.AdvisorID,
		LogoPath:   c.LogoPath,
		LogoURL:    logoURL,
	}
	if c.Name != nil {
		resp.Name = *c.Name
	}
	return resp
}

// CreateCommitteeRequest creates a committee under a council
type CreateCommitteeRequest struct {
	Name   string   `json:"committeeName" binding:"required,notblank,max=150" example:"Prom"`
	Budget *float64 `json:"committeeBudget" binding:"omitempty,gte=0" example:"1500"`
}

// CommitteeResponse represents a committee
type CommitteeResponse struct {
	CommitteeID int64    `json:"committeeId" example:"3"`
	GradYear    int      `json:"gradYear" example:"2027"`
	Name        string   `json:"committeeName" example:"Prom"`
	Budget      *float64 `json:"committeeBudget,omitempty" example:"1500"`
}

// NewCommitteeResponse maps a committee
func NewCommitteeResponse(c *models.Committee) CommitteeResponse {
	return CommitteeResponse{
		CommitteeID: c.ID,
		GradYear:    c.GradYear,
		Name:        c.Name,
		Budget:      c.Budget,
	}
}
