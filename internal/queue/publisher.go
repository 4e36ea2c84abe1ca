package queue

import (
	"context"
	"sync"
	"time"

	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/logger"

	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// EventPublisher 付款流程只依賴這個介面；Publish 不得阻塞呼叫端
type EventPublisher interface {
	Publish(ctx context.Context, event *model.ReservationConfirmedEvent) error
}

// AsyncPublisherImpl 以有界 inbox 暫存事件，背景 goroutine 寫入 EventQueue。
// inbox 已滿時直接丟棄並回傳 ErrPublisherBusy。
type AsyncPublisherImpl struct {
	queue EventQueue
	inbox chan *model.ReservationConfirmedEvent
	done  chan struct{}
	once  sync.Once
	log   *zap.Logger
}

func NewAsyncPublisher(queue EventQueue, bufferSize int) *AsyncPublisherImpl {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	return &AsyncPublisherImpl{
		queue: queue,
		inbox: make(chan *model.ReservationConfirmedEvent, bufferSize),
		done:  make(chan struct{}),
		log:   logger.WithComponent("publisher"),
	}
}

func (p *AsyncPublisherImpl) Publish(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	select {
	case p.inbox <- event:
		return nil
	default:
		p.log.Warn("publisher inbox full, dropping event",
			zap.String("event_id", event.EventID),
			zap.Int64("reservation_id", event.ReservationID),
		)
		return apperrors.ErrPublisherBusy
	}
}

// Start ctx 結束後會把 inbox 內剩餘的事件送完再結束
func (p *AsyncPublisherImpl) Start(ctx context.Context) {
	p.once.Do(func() {
		go p.run(ctx)
	})
}

// Wait 阻塞直到背景 goroutine 結束
func (p *AsyncPublisherImpl) Wait() {
	<-p.done
}

func (p *AsyncPublisherImpl) run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-ctx.Done():
			p.drain()
			return
		case event := <-p.inbox:
			p.send(event)
		}
	}
}

func (p *AsyncPublisherImpl) drain() {
	for {
		select {
		case event := <-p.inbox:
			p.send(event)
		default:
			return
		}
	}
}

func (p *AsyncPublisherImpl) send(event *model.ReservationConfirmedEvent) {
	// 與請求生命週期脫鉤
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.queue.Publish(ctx, event); err != nil {
		p.log.Error("failed to publish event",
			zap.String("event_id", event.EventID),
			zap.Int64("reservation_id", event.ReservationID),
			zap.Error(err),
		)
	}
}
