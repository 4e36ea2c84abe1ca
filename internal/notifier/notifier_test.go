package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-gin-concert-booking/config"
	"go-gin-concert-booking/internal/model"

	"github.com/eapache/go-resiliency/breaker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *model.ReservationConfirmedEvent {
	return &model.ReservationConfirmedEvent{
		EventID:       "evt-1",
		ReservationID: 11,
		PaymentID:     21,
		UserID:        1,
		SeatID:        7,
		ScheduleID:    3,
		ConcertID:     2,
		Amount:        5000,
		ConfirmedAt:   time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func decodeEnvelope(t *testing.T, body []byte) (Envelope, model.ReservationConfirmedEvent) {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	var event model.ReservationConfirmedEvent
	require.NoError(t, json.Unmarshal(env.Payload, &event))
	return env, event
}

func TestHTTPNotifier(t *testing.T) {
	t.Run("Posts envelope", func(t *testing.T) {
		var got []byte
		var idem string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			idem = r.Header.Get("Idempotency-Key")
			got, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		n := NewHTTPNotifier(srv.URL, time.Second)
		require.NoError(t, n.Notify(context.Background(), testEvent()))

		env, event := decodeEnvelope(t, got)
		assert.Equal(t, model.EventTypeReservationConfirmed, env.EventType)
		assert.Equal(t, "11", env.CorrelationID)
		assert.Equal(t, int64(2), event.ConcertID)
		assert.Equal(t, "evt-1", idem)
		assert.NoError(t, n.Close())
	})

	t.Run("Non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := NewHTTPNotifier(srv.URL, time.Second).Notify(context.Background(), testEvent())
		assert.ErrorContains(t, err, "503")
	})
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaNotifier(t *testing.T) {
	w := &fakeWriter{}
	n := &KafkaNotifier{w: w}

	require.NoError(t, n.Notify(context.Background(), testEvent()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("11"), w.msgs[0].Key)
	_, event := decodeEnvelope(t, w.msgs[0].Value)
	assert.Equal(t, "evt-1", event.EventID)

	w.err = errors.New("broker down")
	assert.ErrorContains(t, n.Notify(context.Background(), testEvent()), "broker down")
}

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestAMQPNotifier(t *testing.T) {
	t.Run("Publishes persistent message", func(t *testing.T) {
		ch := &fakeChannel{}
		n := &AMQPNotifier{exchange: "reservation.events"}
		n.dial = func() (*amqp.Connection, amqpPublisher, error) { return nil, ch, nil }

		require.NoError(t, n.Notify(context.Background(), testEvent()))
		require.Len(t, ch.published, 1)
		assert.Equal(t, model.EventTypeReservationConfirmed, ch.keys[0])
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
		assert.Equal(t, "evt-1", ch.published[0].MessageId)
	})

	t.Run("Publish failure drops the channel and redials", func(t *testing.T) {
		broken := &fakeChannel{err: errors.New("channel closed")}
		healthy := &fakeChannel{}
		dials := 0
		n := &AMQPNotifier{exchange: "reservation.events"}
		n.dial = func() (*amqp.Connection, amqpPublisher, error) {
			dials++
			if dials == 1 {
				return nil, broken, nil
			}
			return nil, healthy, nil
		}

		assert.Error(t, n.Notify(context.Background(), testEvent()))
		assert.True(t, broken.closed)

		require.NoError(t, n.Notify(context.Background(), testEvent()))
		assert.Equal(t, 2, dials)
		assert.Len(t, healthy.published, 1)
	})

	t.Run("Dial failure is returned", func(t *testing.T) {
		n := &AMQPNotifier{exchange: "x"}
		n.dial = func() (*amqp.Connection, amqpPublisher, error) { return nil, nil, errors.New("refused") }

		assert.ErrorContains(t, n.Notify(context.Background(), testEvent()), "refused")
	})
}

type countingNotifier struct {
	calls    int32
	failures int32
}

func (n *countingNotifier) Notify(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	c := atomic.AddInt32(&n.calls, 1)
	if c <= atomic.LoadInt32(&n.failures) {
		return errors.New("sink unavailable")
	}
	return nil
}

func (n *countingNotifier) Close() error { return nil }

func TestResilientNotifier(t *testing.T) {
	cfg := ResilienceConfig{
		ErrorThreshold:   3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Hour,
		Attempts:         3,
		InitialBackoff:   time.Millisecond,
	}

	t.Run("Retries transient failures", func(t *testing.T) {
		inner := &countingNotifier{failures: 2}
		n := NewResilientNotifier(inner, cfg)

		require.NoError(t, n.Notify(context.Background(), testEvent()))
		assert.Equal(t, int32(3), inner.calls)
	})

	t.Run("Breaker opens and stops calling the sink", func(t *testing.T) {
		inner := &countingNotifier{failures: 1000}
		n := NewResilientNotifier(inner, cfg)

		assert.Error(t, n.Notify(context.Background(), testEvent()))
		assert.Equal(t, int32(3), inner.calls)

		err := n.Notify(context.Background(), testEvent())
		assert.ErrorIs(t, err, breaker.ErrBreakerOpen)
		assert.Equal(t, int32(3), inner.calls)
	})
}

func TestNew(t *testing.T) {
	n, err := New(config.NotifierConfig{Driver: "none"})
	require.NoError(t, err)
	assert.IsType(t, NoopNotifier{}, n)

	n, err = New(config.NotifierConfig{Driver: "http", HTTPURL: "http://localhost:9/hook"})
	require.NoError(t, err)
	assert.IsType(t, &ResilientNotifier{}, n)

	n, err = New(config.NotifierConfig{Driver: "kafka", KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"})
	require.NoError(t, err)
	assert.IsType(t, &ResilientNotifier{}, n)
	assert.NoError(t, n.Close())

	_, err = New(config.NotifierConfig{Driver: "http"})
	assert.Error(t, err)

	_, err = New(config.NotifierConfig{Driver: "smtp"})
	assert.Error(t, err)
}
