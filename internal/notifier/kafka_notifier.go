package notifier

import (
	"context"
	"fmt"
	"strconv"

	"go-gin-concert-booking/internal/model"

	"github.com/segmentio/kafka-go"
)

// messageWriter 為 *kafka.Writer 的子集
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	w messageWriter
}

func NewKafkaNotifier(brokers []string, topic string) Notifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	value, err := newEnvelope(event)
	if err != nil {
		return err
	}

	// 同一預約的事件落在同一個 partition
	err = n.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ReservationID, 10)),
		Value: value,
		Time:  event.ConfirmedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(model.EventTypeReservationConfirmed)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.w.Close()
}
