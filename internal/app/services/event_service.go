package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
)

// EventService defines the interface for event-related operations.
// Mutations return the single affected event instead of a reloaded list.
type EventService interface {
	ListEvents(ctx context.Context) ([]dto.EventResponse, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*dto.EventResponse, error)
	UpdateEventStatus(ctx context.Context, id int64, status string) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id int64, confirmed bool) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo EventStore
	changes   *changePublisher
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventStore, changes *changePublisher) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		changes:   changes,
	}
}

func parseEventStatus(raw string, fallback models.EventStatus) (models.EventStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	status := models.EventStatus(raw)
	if !status.Valid() {
		return "", apperrors.NewValidationError("Unknown event status \"" + raw + "\".")
	}
	return status, nil
}

// eventFromRequest validates the request and maps it to a model
func eventFromRequest(req *dto.EventRequest) (*models.Event, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("Event is required.")
	}

	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	eventTime := strings.TrimSpace(req.Time)
	if name == "" || strings.TrimSpace(req.Date) == "" || eventTime == "" || location == "" || req.CommitteeID == nil {
		return nil, apperrors.NewValidationError("Name, date, time, location and committee are required.")
	}

	date, err := time.Parse(models.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, apperrors.NewValidationError("Event date must be YYYY-MM-DD.")
	}
	if _, err := time.Parse(models.TimeLayout, eventTime); err != nil {
		return nil, apperrors.NewValidationError("Event time must be HH:MM.")
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, apperrors.NewValidationError("Budget cannot be negative.")
	}
	if req.ExpectedAttendees != nil && *req.ExpectedAttendees < 0 {
		return nil, apperrors.NewValidationError("Expected attendees cannot be negative.")
	}

	status, err := parseEventStatus(req.Status, models.EventStatusDraft)
	if err != nil {
		return nil, err
	}

	return &models.Event{
		Name:              name,
		Date:              date,
		Time:              &eventTime,
		Description:       helpers.NullIfBlank(req.Description),
		Location:          &location,
		Budget:            req.Budget,
		ExpectedAttendees: req.ExpectedAttendees,
		Status:            status,
		CommitteeID:       req.CommitteeID,
		Tags:              helpers.SplitTags(req.Tags),
	}, nil
}

// ListEvents returns every event, newest first
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.NewEventResponse(e))
	}
	return out, nil
}

// written reads back one event after a write so the committee name is current
func (s *eventServiceImpl) written(ctx context.Context, eventType string, id int64) (*dto.EventResponse, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEventResponse(e)
	s.changes.publish(ctx, eventType, strconv.FormatInt(id, 10), resp)
	return &resp, nil
}

// CreateEvent inserts an event; status defaults to Draft
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	e, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.written(ctx, "event.created", e.ID)
}

// UpdateEvent replaces every editable field of an event. A blank status
// keeps the stored one.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*dto.EventResponse, error) {
	e, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if strings.TrimSpace(req.Status) == "" {
		stored, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		e.Status = stored.Status
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.written(ctx, "event.updated", id)
}

// UpdateEventStatus changes the status only and patches it into the stored event
func (s *eventServiceImpl) UpdateEventStatus(ctx context.Context, id int64, status string) (*dto.EventResponse, error) {
	next, err := parseEventStatus(status, "")
	if err != nil {
		return nil, err
	}
	if next == "" {
		return nil, apperrors.NewValidationError("Status is required.")
	}

	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	e.Status = next

	resp := dto.NewEventResponse(e)
	s.changes.publish(ctx, "event.status_changed", strconv.FormatInt(id, 10), resp)
	return &resp, nil
}

// DeleteEvent deletes an event once the caller confirmed it
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return apperrors.NewValidationError("Deleting an event must be confirmed with confirm=true.")
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.changes.publish(ctx, "event.deleted", strconv.FormatInt(id, 10), map[string]int64{"eventId": id})
	return nil
}
