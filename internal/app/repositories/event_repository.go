package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/db"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/dberrors"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

var eventColumns = []string{
	"e.event_id", "e.name", "e.event_date", "to_char(e.event_time, 'HH24:MI')",
	"e.description", "e.location", "e.budget", "e.expected_attendees", "e.status",
	"e.committee_id", "e.tags", "e.created_at", "e.updated_at", "c.committee_name",
}

// EventRepository handles event database operations
type EventRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(conn db.DBTX) *EventRepository {
	return &EventRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanEvent(row scanner) (*models.Event, error) {
	e := &models.Event{}
	var status string
	err := row.Scan(
		&e.ID, &e.Name, &e.Date, &e.Time, &e.Description, &e.Location, &e.Budget,
		&e.ExpectedAttendees, &status, &e.CommitteeID, &e.Tags, &e.CreatedAt,
		&e.UpdatedAt, &e.CommitteeName,
	)
	if err != nil {
		return nil, err
	}
	e.Status = models.EventStatus(status)
	return e, nil
}

// timeParam converts "HH:MM" to a time-of-day parameter; nil stays NULL
func timeParam(value *string) (pgtype.Time, error) {
	if value == nil || *value == "" {
		return pgtype.Time{}, nil
	}
	t, err := time.Parse(models.TimeLayout, *value)
	if err != nil {
		return pgtype.Time{}, fmt.Errorf("%w: invalid event time %q", apperrors.ErrValidationFailed, *value)
	}
	micros := int64(t.Hour())*int64(time.Hour/time.Microsecond) + int64(t.Minute())*int64(time.Minute/time.Microsecond)
	return pgtype.Time{Microseconds: micros, Valid: true}, nil
}

func (r *EventRepository) selectEvents() squirrel.SelectBuilder {
	return r.sb.Select(eventColumns...).
		From("events e").
		LeftJoin("committees c ON c.committee_id = e.committee_id")
}

// List returns all events, newest date first then latest time first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	sql, args, err := r.selectEvents().
		OrderBy("e.event_date DESC", "e.event_time DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event with its committee name
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.selectEvents().
		Where(squirrel.Eq{"e.event_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) writableColumns(e *models.Event) (map[string]interface{}, error) {
	eventTime, err := timeParam(e.Time)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"name":               e.Name,
		"event_date":         pgtype.Date{Time: e.Date, Valid: !e.Date.IsZero()},
		"event_time":         eventTime,
		"description":        e.Description,
		"location":           e.Location,
		"budget":             e.Budget,
		"expected_attendees": e.ExpectedAttendees,
		"status":             string(e.Status),
		"committee_id":       e.CommitteeID,
		"tags":               helpers.StringsOrEmpty(e.Tags),
	}, nil
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	values, err := r.writableColumns(e)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("events").
		SetMap(values).
		Suffix("RETURNING event_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrCommitteeNotFound
		}
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// Update replaces every editable field of the event
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	values, err := r.writableColumns(e)
	if err != nil {
		return err
	}
	values["updated_at"] = squirrel.Expr("now()")

	sql, args, err := r.sb.Update("events").
		SetMap(values).
		Where(squirrel.Eq{"event_id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	return r.execAffectingOne(ctx, sql, args, e.ID)
}

// UpdateStatus changes only the status column
func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status models.EventStatus) error {
	sql, args, err := r.sb.Update("events").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"event_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event status query: %w", err)
	}

	return r.execAffectingOne(ctx, sql, args, id)
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"event_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	return r.execAffectingOne(ctx, sql, args, id)
}

func (r *EventRepository) execAffectingOne(ctx context.Context, sql string, args []interface{}, id int64) error {
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrCommitteeNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing event write")
		return fmt.Errorf("error writing event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
