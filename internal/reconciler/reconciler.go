// Package reconciler runs the background jobs that keep the admission queue
// and the seat holds moving without any client action.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/service"
	"go-gin-concert-booking/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	MaxActive          int
	BatchSize          int
	HoldWindow         time.Duration
	SeatScanLimit      int
	ActivationInterval time.Duration
	ExpiryInterval     time.Duration
	SeatHoldInterval   time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxActive:          100,
		BatchSize:          10,
		HoldWindow:         5 * time.Minute,
		SeatScanLimit:      200,
		ActivationInterval: 10 * time.Second,
		ExpiryInterval:     time.Minute,
		SeatHoldInterval:   time.Minute,
	}
}

type Reconciler interface {
	// Start 啟動三個排程，ctx 結束時停止
	Start(ctx context.Context)
	// Wait 阻塞直到所有排程結束
	Wait()
}

type ReconcilerImpl struct {
	admissionQueue admission.AdmissionQueue
	inventory      service.SeatInventory
	cfg            Config
	group          *errgroup.Group
	log            *zap.Logger
}

func NewReconciler(admissionQueue admission.AdmissionQueue, inventory service.SeatInventory, cfg Config) *ReconcilerImpl {
	if cfg.SeatScanLimit <= 0 {
		cfg.SeatScanLimit = DefaultConfig().SeatScanLimit
	}
	return &ReconcilerImpl{
		admissionQueue: admissionQueue,
		inventory:      inventory,
		cfg:            cfg,
		group:          &errgroup.Group{},
		log:            logger.WithComponent("reconciler"),
	}
}

func (r *ReconcilerImpl) Start(ctx context.Context) {
	r.log.Info("starting reconciler jobs",
		zap.Duration("activation_interval", r.cfg.ActivationInterval),
		zap.Duration("expiry_interval", r.cfg.ExpiryInterval),
		zap.Duration("seat_hold_interval", r.cfg.SeatHoldInterval),
	)

	r.schedule(ctx, "activation", r.cfg.ActivationInterval, r.ActivationTick)
	r.schedule(ctx, "token-expiry", r.cfg.ExpiryInterval, r.ExpiryTick)
	r.schedule(ctx, "seat-hold", r.cfg.SeatHoldInterval, r.SeatHoldTick)
}

func (r *ReconcilerImpl) Wait() {
	_ = r.group.Wait()
	r.log.Info("reconciler jobs stopped")
}

// schedule 固定延遲：下一次 tick 從上一次結束後才開始計時，同一個 job 永不重疊
func (r *ReconcilerImpl) schedule(ctx context.Context, name string, interval time.Duration, tick func(context.Context) error) {
	r.group.Go(func() error {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
			}

			if err := r.runTick(ctx, tick); err != nil && ctx.Err() == nil {
				r.log.Error("reconciler tick failed", zap.String("job", name), zap.Error(err))
			}
			timer.Reset(interval)
		}
	})
}

// runTick 隔離單次 tick 的 panic，不影響下一次 tick 與其他 job
func (r *ReconcilerImpl) runTick(ctx context.Context, tick func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return tick(ctx)
}

// ActivationTick 放行 min(MaxActive - 活躍數, BatchSize) 個等待者
func (r *ReconcilerImpl) ActivationTick(ctx context.Context) error {
	active, err := r.admissionQueue.ActiveCount(ctx)
	if err != nil {
		return err
	}

	n := min(int64(r.cfg.MaxActive)-active, int64(r.cfg.BatchSize))
	if n <= 0 {
		return nil
	}

	activated, err := r.admissionQueue.ActivateBatch(ctx, int(n))
	if err != nil {
		return err
	}
	if activated > 0 {
		r.log.Info("activated waiting tokens", zap.Int("count", activated), zap.Int64("active_before", active))
	}
	return nil
}

func (r *ReconcilerImpl) ExpiryTick(ctx context.Context) error {
	expired, err := r.admissionQueue.ReconcileExpired(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		r.log.Info("expired stale active tokens", zap.Int("count", expired))
	}
	return nil
}

// SeatHoldTick 單一座位失敗只記錄，繼續處理其餘座位
func (r *ReconcilerImpl) SeatHoldTick(ctx context.Context) error {
	seatIDs, err := r.inventory.ListExpiredHolds(ctx, r.cfg.HoldWindow, r.cfg.SeatScanLimit)
	if err != nil {
		return err
	}

	restored := 0
	for _, seatID := range seatIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ok, err := r.inventory.RestoreIfExpired(ctx, seatID, r.cfg.HoldWindow)
		if err != nil {
			r.log.Warn("failed to restore expired seat hold", zap.Int64("seat_id", seatID), zap.Error(err))
			continue
		}
		if ok {
			restored++
		}
	}

	if restored > 0 {
		r.log.Info("restored expired seat holds", zap.Int("count", restored))
	}
	return nil
}
