package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/handler"
	"go-gin-concert-booking/internal/lock"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/queue"
	"go-gin-concert-booking/internal/ranking"
	"go-gin-concert-booking/internal/reconciler"
	"go-gin-concert-booking/internal/repository"
	"go-gin-concert-booking/internal/service"
	"go-gin-concert-booking/internal/testutil"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/retry"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const holdWindow = 5 * time.Minute

// app 以真實 Postgres 與 miniredis 組起完整的服務
type app struct {
	router       *gin.Engine
	pool         *pgxpool.Pool
	clock        *clock.FakeClock
	queue        admission.AdmissionQueue
	ledger       service.PointLedger
	reconciler   *reconciler.ReconcilerImpl
	seats        repository.SeatRepository
	reservations repository.ReservationRepository
}

func newApp(t *testing.T) *app {
	t.Helper()

	pool := testutil.SetupDB(t)
	rdb, _ := testutil.SetupRedis(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	clk := clock.Fake(time.Now().UTC())
	db := database.NewObservedDB(pool, database.NewLogObserver(time.Second))
	txManager := database.NewTxManager(db, 3*time.Second)

	users := repository.NewUserRepository(db)
	concerts := repository.NewConcertRepository(db)
	seats := repository.NewSeatRepository(db)
	reservations := repository.NewReservationRepository(db)
	payments := repository.NewPaymentRepository(db)
	points := repository.NewPointRepository(db)

	admissionQueue := admission.NewRedisAdmissionQueue(rdb, clk, admission.DefaultConfig())
	locker := lock.NewRedisLocker(rdb, clk)
	rank := ranking.NewRedisRanking(rdb, clk, time.Hour, time.Minute)

	eventQueue := queue.NewMemoryEventQueue(100)
	publisher := queue.NewAsyncPublisher(eventQueue, 100)
	publisher.Start(ctx)

	policy := retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.Exponential(50 * time.Millisecond),
		IsRetryable: apperrors.IsRetryable,
	}

	ledger := service.NewPointLedger(txManager, users, points, clk, policy)
	inventory := service.NewSeatInventory(txManager, seats, reservations, clk)
	saga := service.NewBookingSaga(txManager, admissionQueue, inventory, seats, concerts, reservations, clk, holdWindow, policy)
	payment := service.NewPaymentOrchestrator(txManager, locker, admissionQueue, ledger, inventory,
		seats, concerts, reservations, payments, publisher, clk,
		service.PaymentConfig{LockWait: 3 * time.Second, LockLease: 5 * time.Second}, policy)

	cfg := reconciler.DefaultConfig()
	cfg.HoldWindow = holdWindow

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewQueueHandler(service.NewQueueService(users, admissionQueue, cfg.BatchSize, cfg.ActivationInterval)).RegisterRoutes(router)
	handler.NewReservationHandler(saga, payment).RegisterRoutes(router)
	handler.NewPointHandler(ledger).RegisterRoutes(router)
	handler.NewConcertHandler(service.NewConcertService(concerts, seats, rank)).RegisterRoutes(router)

	return &app{
		router:       router,
		pool:         pool,
		clock:        clk,
		queue:        admissionQueue,
		ledger:       ledger,
		reconciler:   reconciler.NewReconciler(admissionQueue, inventory, cfg),
		seats:        seats,
		reservations: reservations,
	}
}

func (a *app) do(method, url string, data interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(data)
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// activeToken 發放令牌並透過啟用排程轉為 ACTIVE
func (a *app) activeToken(t *testing.T, userID int64) string {
	t.Helper()

	w := a.do(http.MethodPost, "/api/v1/queue/tokens", model.IssueTokenRequest{UserID: userID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var issued model.IssueTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

	require.NoError(t, a.reconciler.ActivationTick(context.Background()))

	status, err := a.queue.GetStatus(context.Background(), issued.Token)
	require.NoError(t, err)
	require.Equal(t, model.TokenStatusActive, status.Status)
	return issued.Token
}

// reserve 取得令牌後建立暫時預約，回傳預約 id 與所用的令牌
func (a *app) reserve(t *testing.T, userID, scheduleID, seatID int64) (int64, string) {
	t.Helper()

	token := a.activeToken(t, userID)
	w := a.do(http.MethodPost, "/api/v1/reservations", model.CreateReservationRequest{
		UserID: userID, ScheduleID: scheduleID, SeatID: seatID, Token: token,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp model.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ReservationID, token
}

func (a *app) countPayments(t *testing.T, reservationID int64) int {
	t.Helper()
	var n int
	err := a.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments WHERE reservation_id = $1`, reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

func errorKind(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["kind"]
}
