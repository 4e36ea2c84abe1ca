// Package notifier delivers "reservation confirmed" events to an external
// analytics sink. Delivery is best-effort: callers log failures and move on.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-gin-concert-booking/internal/model"
)

const (
	producerName = "concert-booking"
	eventVersion = 1
)

type Notifier interface {
	Notify(ctx context.Context, event *model.ReservationConfirmedEvent) error
	Close() error
}

// Envelope 所有外部通知共用的訊息外層
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

func newEnvelope(event *model.ReservationConfirmedEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(Envelope{
		EventID:       event.EventID,
		EventType:     model.EventTypeReservationConfirmed,
		EventVersion:  eventVersion,
		OccurredAt:    event.ConfirmedAt,
		Producer:      producerName,
		CorrelationID: fmt.Sprintf("%d", event.ReservationID),
		Payload:       payload,
	})
}

type NoopNotifier struct{}

func NewNoopNotifier() Notifier {
	return NoopNotifier{}
}

func (NoopNotifier) Notify(context.Context, *model.ReservationConfirmedEvent) error { return nil }

func (NoopNotifier) Close() error { return nil }
