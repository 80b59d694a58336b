package dto

import "github.com/hooplannedthis/api/internal/app/models"

// AdvisorRequest creates or fully replaces an advisor. Accepted as JSON or
// multipart form with an optional "photo" file.
type AdvisorRequest struct {
	FirstName string   `json:"firstName" form:"firstName" binding:"required,notblank,max=100" example:"Grace"`
	LastName  string   `json:"lastName" form:"lastName" binding:"required,notblank,max=100" example:"Hopper"`
	Roles     []string `json:"roles" form:"roles" binding:"omitempty,dive,advisorrole" example:"First Year Council Advisor"`
	Email     *string  `json:"email" form:"email" binding:"omitempty,email" example:"ghopper@school.edu"`
	Phone     *string  `json:"phone" form:"phone" binding:"omitempty,max=50"`
	Building  *string  `json:"building" form:"building" binding:"omitempty,max=255"`
	Address   *string  `json:"address" form:"address"`
}

// AdvisorResponse is an advisor with its resolved photo URL
type AdvisorResponse struct {
	AdvisorID int64    `json:"advisorId" example:"7"`
	FirstName string   `json:"firstName" example:"Grace"`
	LastName  string   `json:"lastName" example:"Hopper"`
	Roles     []string `json:"roles"`
	Email     *string  `json:"email,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Building  *string  `json:"building,omitempty"`
	Address   *string  `json:"address,omitempty"`
	PhotoPath *string  `json:"photoPath,omitempty"`
	PhotoURL  string   `json:"photoUrl" example:"/cav_man.png"`
}

// AdvisorMutationResponse returns the affected advisor and the reloaded list
type AdvisorMutationResponse struct {
	Advisor  *AdvisorResponse  `json:"advisor,omitempty"`
	Advisors []AdvisorResponse `json:"advisors"`
}

// NewAdvisorResponse maps a model with an already resolved photo URL
func NewAdvisorResponse(a *models.Advisor, photoURL string) AdvisorResponse {
	roles := a.Roles
	if roles == nil {
		roles = []string{}
	}
	return AdvisorResponse{
		AdvisorID: a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Roles:     roles,
		Email:     a.Email,
		Phone:     a.Phone,
		Building:  a.Building,
		Address:   a.Address,
		PhotoPath: a.PhotoPath,
		PhotoURL:  photoURL,
	}
}
