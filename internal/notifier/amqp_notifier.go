package notifier

import (
	"context"
	"fmt"
	"sync"

	"go-gin-concert-booking/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher 為 *amqp.Channel 的子集
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier 發佈到 topic exchange，routing key 為事件類型。
// channel 失效時下一次 Notify 會重新連線。
type AMQPNotifier struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   amqpPublisher
	dial func() (*amqp.Connection, amqpPublisher, error)
}

func NewAMQPNotifier(url, exchange string) Notifier {
	n := &AMQPNotifier{url: url, exchange: exchange}
	n.dial = n.connect
	return n
}

func (n *AMQPNotifier) connect() (*amqp.Connection, amqpPublisher, error) {
	conn, err := amqp.Dial(n.url)
	if err != nil {
		return nil, nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(n.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp exchange declare: %w", err)
	}
	return conn, ch, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	body, err := newEnvelope(event)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.ch == nil {
		conn, ch, err := n.dial()
		if err != nil {
			return err
		}
		n.conn, n.ch = conn, ch
	}

	err = n.ch.PublishWithContext(ctx, n.exchange, model.EventTypeReservationConfirmed, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.ConfirmedAt,
		Body:         body,
	})
	if err != nil {
		n.resetLocked()
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

func (n *AMQPNotifier) resetLocked() {
	if n.ch != nil {
		_ = n.ch.Close()
		n.ch = nil
	}
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetLocked()
	return nil
}
