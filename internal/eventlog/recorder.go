package eventlog

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

const (
	TopicAppEvents = "app_events"

	EventExpenseAdded     = "expense_added"
	EventExpenseUpdated   = "expense_updated"
	EventExpenseDeleted   = "expense_deleted"
	EventFavoriteSaved    = "favorite_saved"
	EventFavoriteRemoved  = "favorite_removed"
	EventPlanEntrySet     = "plan_entry_set"
	EventPlanEntryCleared = "plan_entry_cleared"
	EventBudgetUpdated    = "budget_updated"
	EventProfileUpdated   = "profile_updated"
	EventSyncFailed       = "sync_failed"
	EventPaymentCompleted = "payment_completed"
	EventPaymentFailed    = "payment_failed"
)

// Recorder serializes typed app events onto a destination. Event failures are
// logged, never propagated: the log is advisory, not part of state.
type Recorder struct {
	dest  Destination
	topic string
}

// NewRecorder writes to topic; an empty topic falls back to TopicAppEvents.
func NewRecorder(dest Destination, topic string) *Recorder {
	if topic == "" {
		topic = TopicAppEvents
	}
	return &Recorder{dest: dest, topic: topic}
}

// NewDestination picks a destination from config. Unknown kinds fall back to
// console.
func NewDestination(cfg *models.Config) (Destination, error) {
	switch cfg.EventLog {
	case "kafka":
		return NewKafkaDestination(cfg)
	case "file":
		if cfg.EventLogPath == "" {
			return nil, fmt.Errorf("event_log_path is required for file event log")
		}
		return NewFileDestination(cfg.EventLogPath), nil
	default:
		return &ConsoleDestination{}, nil
	}
}

type envelope struct {
	Event string      `json:"event"`
	At    time.Time   `json:"at"`
	Data  interface{} `json:"data,omitempty"`
}

// Record emits one event; safe to call with a nil Recorder.
func (r *Recorder) Record(event string, data interface{}) {
	if r == nil || r.dest == nil {
		return
	}
	msg, err := json.Marshal(envelope{Event: event, At: time.Now(), Data: data})
	if err != nil {
		log.Printf("failed to marshal event %s: %v", event, err)
		return
	}
	if err := r.dest.WriteMessage(r.topic, msg); err != nil {
		log.Printf("failed to record event %s: %v", event, err)
	}
}

// Close releases the underlying destination.
func (r *Recorder) Close() error {
	if r == nil || r.dest == nil {
		return nil
	}
	return r.dest.Close()
}
