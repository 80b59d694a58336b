package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// EventSource is the CloudEvents source attribute of every change event
const EventSource = "hooplannedthis/api"

// Notifier publishes change events through a Hub
type Notifier struct {
	hub *Hub
}

// NewNotifier creates a Notifier bound to hub
func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// NewChangeEvent builds the CloudEvent for a change. The topic is the part of
// eventType before the first dot, e.g. "advisor" for "advisor.created".
func NewChangeEvent(eventType, subject string, data interface{}) (cloudevents.Event, error) {
	event := cloudevents.NewEvent()
	event.SetID(uuid.New().String())
	event.SetType(eventType)
	event.SetSource(EventSource)
	event.SetSubject(subject)
	event.SetTime(time.Now())

	if data != nil {
		if err := event.SetData(cloudevents.ApplicationJSON, data); err != nil {
			return event, fmt.Errorf("failed to set event data: %w", err)
		}
	}
	if err := event.Validate(); err != nil {
		return event, fmt.Errorf("invalid change event: %w", err)
	}
	return event, nil
}

// Publish encodes the change event and queues it for broadcast.
// It returns ctx.Err() if the hub is saturated and ctx ends first.
func (n *Notifier) Publish(ctx context.Context, eventType, subject string, data interface{}) error {
	event, err := NewChangeEvent(eventType, subject, data)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	topic, _, _ := strings.Cut(eventType, ".")
	env := &envelope{topic: topic, event: event, data: encoded}

	select {
	case n.hub.broadcast <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
