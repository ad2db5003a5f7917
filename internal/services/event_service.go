package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mbelda/fridgechef-be/internal/models"
)

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	Record(eventType, level, message string, userID *string) error
	PruneOlderThan(cutoff time.Time) (int64, error)
}

// EventService records audit events. Recording is best-effort: callers log
// failures and move on, so an event write never fails a user-facing request.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// Record logs a new event to the database.
func (s *EventService) Record(eventType, level, message string, userID *string) error {
	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	// created_at is written from Go so PruneOlderThan compares timestamps
	// in a single format.
	_, err := s.db.Exec("INSERT INTO events (id, type, level, message, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.UserID, event.CreatedAt)
	return err
}

// PruneOlderThan deletes events created before the cutoff and returns the
// number of rows removed.
func (s *EventService) PruneOlderThan(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM events WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
