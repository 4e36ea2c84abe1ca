package worker

import (
	"context"
	"time"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/notifier"
	"go-gin-concert-booking/internal/queue"
	"go-gin-concert-booking/internal/ranking"
	"go-gin-concert-booking/pkg/logger"

	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

type EventWorker interface {
	// 訂閱事件隊列，ctx 結束後停止
	Start(ctx context.Context) error
	// Wait 阻塞直到消費 goroutine 結束
	Wait()
}

type EventWorkerImpl struct {
	queue    queue.EventQueue
	ranking  ranking.Ranking
	notifier notifier.Notifier
	done     chan struct{}
	log      *zap.Logger
}

func NewEventWorker(queue queue.EventQueue, ranking ranking.Ranking, notifier notifier.Notifier) EventWorker {
	return &EventWorkerImpl{
		queue:    queue,
		ranking:  ranking,
		notifier: notifier,
		done:     make(chan struct{}),
		log:      logger.WithComponent("worker"),
	}
}

func (w *EventWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	go func() {
		defer close(w.done)
		for msg := range msgs {
			if err := w.Handle(ctx, msg.Data); err != nil {
				// 排行或通知暫時失敗，交回隊列稍後重試
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *EventWorkerImpl) Wait() {
	<-w.done
}

// Handle 排行以 event id 去重，重送不會重複計數
func (w *EventWorkerImpl) Handle(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	if _, err := w.ranking.Record(ctx, event.ConcertID, event.EventID); err != nil {
		w.log.Error("failed to record ranking",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return err
	}

	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := w.notifier.Notify(nctx, event); err != nil {
		w.log.Warn("failed to notify reservation confirmed",
			zap.String("event_id", event.EventID),
			zap.Int64("reservation_id", event.ReservationID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
