package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movieapi/internal/logging"
)

// Routing keys of the events published by UserService.
const (
	EventUserRegistered  = "user.registered"
	EventUserUpdated     = "user.updated"
	EventUserDeleted     = "user.deleted"
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)

// EventPublisher sends a message body under a routing key.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// UserEvent is the JSON body of every published event.
type UserEvent struct {
	Event    string    `json:"event"`
	Username string    `json:"username"`
	MovieID  string    `json:"movie_id,omitempty"`
	At       time.Time `json:"at"`
}

// publish is best effort: failures are logged and never reach the caller.
func publish(p EventPublisher, event UserEvent) {
	if p == nil {
		return
	}
	event.At = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		logging.Err(err).Str("event", event.Event).Msg("Failed to marshal event")
		return
	}
	if err := p.Publish(event.Event, body); err != nil {
		logging.Warn().Err(err).Str("event", event.Event).Str("username", event.Username).
			Msg("Failed to publish event")
		return
	}
	logging.Debug().Str("event", event.Event).Str("username", event.Username).Msg("Published event")
}

// AuditEvent writes a consumed event to the audit log. A body that is not a
// UserEvent is rejected.
func AuditEvent(body []byte) error {
	var event UserEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed user event: %w", err)
	}
	if event.Event == "" {
		return errors.New("user event without a name")
	}

	entry := logging.Info().Str("component", "audit").Str("event", event.Event).
		Str("username", event.Username).Time("at", event.At)
	if event.MovieID != "" {
		entry = entry.Str("movie_id", event.MovieID)
	}
	entry.Msg("User event")
	return nil
}
