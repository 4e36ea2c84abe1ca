// Package testutil prepares real Postgres and in-memory Redis backends for
// integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// EnvDatabaseURL 未設定時整合測試會被略過
const EnvDatabaseURL = "TEST_DATABASE_URL"

// SetupDB 連線、建表並清空資料；每個測試都從空資料庫開始
func SetupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", EnvDatabaseURL)
	}

	pool, err := database.InitDatabaseWithDSN(dsn)
	require.NoError(t, err, "failed to initialize test database")
	t.Cleanup(pool.Close)

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE point_histories, point_accounts, payments, reservations,
		seats, concert_schedules, concerts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to clean test database")

	return pool
}

// SetupRedis 啟動 miniredis，測試結束自動關閉
func SetupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

// Fixture 一個開賣中的場次與其座位
type Fixture struct {
	Concert  *model.Concert
	Schedule *model.ConcertSchedule
	Seats    []*model.Seat
}

// SeedSchedule 建立一場開賣中的演出，座位編號從 1 開始
func SeedSchedule(t *testing.T, db database.DB, seatCount int, price int64) *Fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	concerts := repository.NewConcertRepository(db)
	seats := repository.NewSeatRepository(db)

	concert, err := concerts.Create(ctx, &model.Concert{Title: "Integration Live"})
	require.NoError(t, err)

	schedule, err := concerts.CreateSchedule(ctx, &model.ConcertSchedule{
		ConcertID:          concert.ID,
		ConcertAt:          now.Add(30 * 24 * time.Hour),
		ReservationOpenAt:  now.Add(-time.Hour),
		ReservationCloseAt: now.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	fixture := &Fixture{Concert: concert, Schedule: schedule}
	for i := 1; i <= seatCount; i++ {
		seat, err := seats.Create(ctx, &model.Seat{
			ScheduleID: schedule.ID,
			SeatNumber: i,
			Status:     model.SeatStatusAvailable,
			Price:      price,
		})
		require.NoError(t, err)
		fixture.Seats = append(fixture.Seats, seat)
	}
	return fixture
}

// SeedUsers 建立 n 個使用者
func SeedUsers(t *testing.T, db database.DB, n int) []*model.User {
	t.Helper()
	users := repository.NewUserRepository(db)

	out := make([]*model.User, 0, n)
	for i := 1; i <= n; i++ {
		user, err := users.Create(context.Background(), &model.User{
			Name:  fmt.Sprintf("user-%d", i),
			Email: fmt.Sprintf("user-%d@example.com", i),
		})
		require.NoError(t, err)
		out = append(out, user)
	}
	return out
}
