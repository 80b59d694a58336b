package models

import "time"

// DateLayout and TimeLayout are the wire formats of event dates and times
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID                int64       `json:"eventId" db:"event_id"`
	Name              string      `json:"name" db:"name"`
	Date              time.Time   `json:"-" db:"event_date"`
	Time              *string     `json:"eventTime,omitempty" db:"event_time"`
	Description       *string     `json:"description,omitempty" db:"description"`
	Location          *string     `json:"location,omitempty" db:"location"`
	Budget            *float64    `json:"budget,omitempty" db:"budget"`
	ExpectedAttendees *int        `json:"expectedAttendees,omitempty" db:"expected_attendees"`
	Status            EventStatus `json:"status" db:"status"`
	CommitteeID       *int64      `json:"committeeId,omitempty" db:"committee_id"`
	Tags              []string    `json:"tags" db:"tags"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time   `json:"updatedAt" db:"updated_at"`

	// CommitteeName is filled by joined reads
	CommitteeName *string `json:"committeeName,omitempty" db:"-"`
}

// DateString formats the event date as YYYY-MM-DD
func (e *Event) DateString() string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format(DateLayout)
}
