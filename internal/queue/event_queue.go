package queue

import (
	"context"

	"go-gin-concert-booking/internal/model"
)

type Delivery struct {
	Data *model.ReservationConfirmedEvent
	Ack  func()
	Nack func(requeue bool)
}

type EventQueue interface {
	// 發送預約確認事件到隊列
	Publish(ctx context.Context, event *model.ReservationConfirmedEvent) error
	// 訂閱事件，ctx 結束時關閉返回的 channel
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type MemoryEventQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.ReservationConfirmedEvent
}

func NewMemoryEventQueue(bufferSize int) EventQueue {
	return &MemoryEventQueueImpl{
		ch: make(chan *model.ReservationConfirmedEvent, bufferSize),
	}
}

func (q *MemoryEventQueueImpl) Publish(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryEventQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-q.ch:
				d := Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// 重回隊列；隊列已滿時丟棄，避免阻塞消費者
						select {
						case q.ch <- event:
						default:
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
