package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-concert-booking/config"
	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/handler"
	"go-gin-concert-booking/internal/lock"
	"go-gin-concert-booking/internal/notifier"
	"go-gin-concert-booking/internal/queue"
	"go-gin-concert-booking/internal/ranking"
	"go-gin-concert-booking/internal/reconciler"
	"go-gin-concert-booking/internal/repository"
	"go-gin-concert-booking/internal/service"
	"go-gin-concert-booking/internal/worker"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/logger"
	"go-gin-concert-booking/pkg/retry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout  = 10 * time.Second
	slowSQLThreshold = 200 * time.Millisecond
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("main")

	// .env 不存在時直接使用環境變數
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to load .env", zap.Error(err))
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("main")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	db := database.NewObservedDB(pool, database.NewLogObserver(slowSQLThreshold))
	txManager := database.NewTxManager(db, cfg.Database.LockTimeout)
	clk := clock.Real()

	userRepository := repository.NewUserRepository(db)
	concertRepository := repository.NewConcertRepository(db)
	seatRepository := repository.NewSeatRepository(db)
	reservationRepository := repository.NewReservationRepository(db)
	paymentRepository := repository.NewPaymentRepository(db)
	pointRepository := repository.NewPointRepository(db)

	admissionQueue := admission.NewRedisAdmissionQueue(rdb, clk, admission.Config{
		MaxActive:        cfg.Queue.MaxActive,
		ActiveTTL:        cfg.Queue.ActiveTTL,
		WaitingTTL:       cfg.Queue.WaitingTTL,
		ExpiredRetention: cfg.Queue.ExpiredRetention,
	})
	locker := lock.NewRedisLocker(rdb, clk)
	rank := ranking.NewRedisRanking(rdb, clk, cfg.Ranking.Window, cfg.Ranking.Bucket)

	eventQueue, err := newEventQueue(ctx, cfg.Events, rdb)
	if err != nil {
		return err
	}
	publisher := queue.NewAsyncPublisher(eventQueue, cfg.Events.InboxSize)

	notify, err := notifier.New(cfg.Notifier)
	if err != nil {
		return err
	}
	defer func() {
		if err := notify.Close(); err != nil {
			log.Warn("failed to close notifier", zap.Error(err))
		}
	}()

	retryPolicy := retry.Policy{
		MaxAttempts: cfg.Booking.RetryMaxAttempts,
		Backoff:     retry.Exponential(cfg.Booking.RetryInitialBackoff),
		IsRetryable: apperrors.IsRetryable,
	}

	ledger := service.NewPointLedger(txManager, userRepository, pointRepository, clk, retryPolicy)
	inventory := service.NewSeatInventory(txManager, seatRepository, reservationRepository, clk)
	saga := service.NewBookingSaga(txManager, admissionQueue, inventory,
		seatRepository, concertRepository, reservationRepository,
		clk, cfg.Booking.HoldWindow, retryPolicy)
	payment := service.NewPaymentOrchestrator(txManager, locker, admissionQueue, ledger, inventory,
		seatRepository, concertRepository, reservationRepository, paymentRepository, publisher,
		clk, service.PaymentConfig{LockWait: cfg.Booking.PaymentLockWait, LockLease: cfg.Booking.PaymentLockLease},
		retryPolicy)
	queueService := service.NewQueueService(userRepository, admissionQueue, cfg.Queue.BatchSize, cfg.Reconciler.ActivationInterval)
	concertService := service.NewConcertService(concertRepository, seatRepository, rank)

	jobs := reconciler.NewReconciler(admissionQueue, inventory, reconciler.Config{
		MaxActive:          cfg.Queue.MaxActive,
		BatchSize:          cfg.Queue.BatchSize,
		HoldWindow:         cfg.Booking.HoldWindow,
		ActivationInterval: cfg.Reconciler.ActivationInterval,
		ExpiryInterval:     cfg.Reconciler.ExpiryInterval,
		SeatHoldInterval:   cfg.Reconciler.SeatHoldInterval,
	})
	eventWorker := worker.NewEventWorker(eventQueue, rank, notify)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	handler.NewQueueHandler(queueService).RegisterRoutes(router)
	handler.NewReservationHandler(saga, payment).RegisterRoutes(router)
	handler.NewPointHandler(ledger).RegisterRoutes(router)
	handler.NewConcertHandler(concertService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	publisher.Start(gctx)
	jobs.Start(gctx)
	if err := eventWorker.Start(gctx); err != nil {
		return err
	}

	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)

		jobs.Wait()
		eventWorker.Wait()
		publisher.Wait()
		return err
	})

	return g.Wait()
}

func newEventQueue(ctx context.Context, cfg config.EventsConfig, rdb *redis.Client) (queue.EventQueue, error) {
	if cfg.Bus == "memory" {
		return queue.NewMemoryEventQueue(cfg.InboxSize), nil
	}
	return queue.NewRedisStreamEventQueue(ctx, rdb, cfg.ConsumerID, nil)
}
