package dto

import "github.com/hooplannedthis/api/internal/app/models"

// EventRequest creates or fully replaces an event
type EventRequest struct {
	Name              string   `json:"name" binding:"required,notblank,max=200" example:"Ring Dance"`
	Date              string   `json:"eventDate" binding:"required,datetime=2006-01-02" example:"2026-02-14"`
	Time              string   `json:"eventTime" binding:"required,datetime=15:04" example:"19:30"`
	Location          string   `json:"location" binding:"required,notblank,max=255" example:"Rotunda"`
	CommitteeID       *int64   `json:"committeeId" binding:"required,gt=0" example:"3"`
	Status            string   `json:"status" binding:"omitempty,eventstatus" example:"Draft"`
	Description       *string  `json:"description"`
	Budget            *float64 `json:"budget" binding:"omitempty,gte=0" example:"2500"`
	ExpectedAttendees *int     `json:"expectedAttendees" binding:"omitempty,gte=0" example:"300"`
	// Tags is comma-separated free text
	Tags string `json:"tags" example:"formal, dance"`
}

// EventStatusRequest changes only the status
type EventStatusRequest struct {
	Status string `json:"status" binding:"required,eventstatus" example:"Approved"`
}

// EventResponse represents an event with its committee name
type EventResponse struct {
	EventID           int64    `json:"eventId" example:"12"`
	Name              string   `json:"name" example:"Ring Dance"`
	Date              string   `json:"eventDate" example:"2026-02-14"`
	Time              *string  `json:"eventTime,omitempty" example:"19:30"`
	Description       *string  `json:"description,omitempty"`
	Location          *string  `json:"location,omitempty" example:"Rotunda"`
	Budget            *float64 `json:"budget,omitempty" example:"2500"`
	ExpectedAttendees *int     `json:"expectedAttendees,omitempty" example:"300"`
	Status            string   `json:"status" example:"Draft"`
	CommitteeID       *int64   `json:"committeeId,omitempty" example:"3"`
	CommitteeName     *string  `json:"committeeName,omitempty" example:"Prom"`
	Tags              []string `json:"tags"`
}

// NewEventResponse maps an event
func NewEventResponse(e *models.Event) EventResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EventResponse{
		EventID:           e.ID,
		Name:              e.Name,
		Date:              e.DateString(),
		Time:              e.Time,
		Description:       e.Description,
		Location:          e.Location,
		Budget:            e.Budget,
		ExpectedAttendees: e.ExpectedAttendees,
		Status:            string(e.Status),
		CommitteeID:       e.CommitteeID,
		CommitteeName:     e.CommitteeName,
		Tags:              tags,
	}
}
