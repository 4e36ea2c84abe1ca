package notifier

import (
	"context"
	"time"

	"go-gin-concert-booking/internal/model"

	"github.com/eapache/go-resiliency/breaker"
	"github.com/eapache/go-resiliency/retrier"
)

type ResilienceConfig struct {
	ErrorThreshold   int
	SuccessThreshold int
	OpenTimeout      time.Duration
	Attempts         int
	InitialBackoff   time.Duration
}

func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		ErrorThreshold:   5,
		SuccessThreshold: 1,
		OpenTimeout:      30 * time.Second,
		Attempts:         3,
		InitialBackoff:   200 * time.Millisecond,
	}
}

// ResilientNotifier 每次發送先過斷路器，失敗再以指數退避重試；斷路器開啟時不重試
type ResilientNotifier struct {
	inner   Notifier
	breaker *breaker.Breaker
	retrier *retrier.Retrier
}

func NewResilientNotifier(inner Notifier, cfg ResilienceConfig) Notifier {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &ResilientNotifier{
		inner:   inner,
		breaker: breaker.New(cfg.ErrorThreshold, cfg.SuccessThreshold, cfg.OpenTimeout),
		retrier: retrier.New(
			retrier.ExponentialBackoff(cfg.Attempts-1, cfg.InitialBackoff),
			retrier.BlacklistClassifier{breaker.ErrBreakerOpen},
		),
	}
}

func (n *ResilientNotifier) Notify(ctx context.Context, event *model.ReservationConfirmedEvent) error {
	return n.retrier.RunCtx(ctx, func(ctx context.Context) error {
		return n.breaker.Run(func() error {
			return n.inner.Notify(ctx, event)
		})
	})
}

func (n *ResilientNotifier) Close() error {
	return n.inner.Close()
}
