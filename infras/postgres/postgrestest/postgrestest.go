// Package postgrestest connects integration tests to a real Postgres. Tests
// using it are skipped unless TEST_DATABASE_URL points at a database the
// migrations may be applied to.
package postgrestest

//nolint:revive
import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
	"tripavail/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const EnvDatabaseURL = "TEST_DATABASE_URL"

const maxOpenConns = 20

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Open returns a connection with the schema migrated, or skips t.
func Open(t testing.TB) *postgres.Connection {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s is not set", EnvDatabaseURL)
	}

	migrateOnce.Do(func() { migrateErr = up(dsn) })

	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{Read: db, Write: db}
}

func up(dsn string) error {
	_, file, _, _ := runtime.Caller(0)
	source := "file://" + filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations", "postgres")

	mig, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}

// SeedRoom inserts a published hotel package with one room whose nights start
// at first and carry the given capacities. Everything booked against the
// package is deleted when t finishes.
func SeedRoom(t testing.TB, conn *postgres.Connection, first time.Time, capacities ...int) (packageID, roomID string) {
	t.Helper()

	packageID, roomID = uuid.NewString(), uuid.NewString()

	Exec(t, conn, `INSERT INTO packages (id, provider_id, type, status, name) VALUES ($1, 'provider-1', 'HOTEL_PACKAGE', 'PUBLISHED', 'Test Hotel')`, packageID)
	Exec(t, conn, `INSERT INTO package_rooms (id, package_id, name, price_per_night, total_units) VALUES ($1, $2, 'Standard', 100, $3)`, roomID, packageID, slicesMax(capacities))

	for i, units := range capacities {
		Exec(t, conn, `INSERT INTO inventory_nights (room_id, date, total_units, available_units, base_price) VALUES ($1, $2, $3, $3, 100)`,
			roomID, first.AddDate(0, 0, i), units)
	}

	t.Cleanup(func() {
		booked := `booking_id IN (SELECT id FROM bookings WHERE package_id = $1)`

		for _, query := range []string{
			`DELETE FROM payments WHERE ` + booked,
			`DELETE FROM ledger_entries WHERE ` + booked,
			`DELETE FROM inventory_claims WHERE ` + booked,
			`DELETE FROM bookings WHERE package_id = $1`,
			`DELETE FROM packages WHERE id = $1`,
		} {
			if _, err := conn.Write.Exec(query, packageID); err != nil {
				t.Errorf("failed to clean up package %s: %v", packageID, err)
			}
		}
	})

	return packageID, roomID
}

// SeedBooking inserts a quote for one unit of roomID and returns its id.
func SeedBooking(t testing.TB, conn *postgres.Connection, packageID, roomID string, checkIn, checkOut time.Time) string {
	t.Helper()

	id := uuid.NewString()

	Exec(t, conn, `INSERT INTO bookings (
			id, user_id, provider_id, package_type, package_id, check_in_date, check_out_date,
			number_of_guests, selected_room_ids, price_snapshot, currency, total_price, status, quoted_at, expires_at
		) VALUES ($1, 'user-1', 'provider-1', 'HOTEL_PACKAGE', $2, $3, $4, 1, $5, '{}', 'USD', 100, 'QUOTE', NOW(), NOW() + INTERVAL '1 hour')`,
		id, packageID, checkIn, checkOut, pq.StringArray{roomID})

	return id
}

// Available lists a room's available units by date.
func Available(t testing.TB, conn *postgres.Connection, roomID string) []int {
	t.Helper()

	var units []int
	if err := conn.Read.Select(&units, `SELECT available_units FROM inventory_nights WHERE room_id = $1 ORDER BY date`, roomID); err != nil {
		t.Fatalf("failed to read availability: %v", err)
	}

	return units
}

// Count runs a SELECT COUNT(*) query.
func Count(t testing.TB, conn *postgres.Connection, query string, args ...any) int {
	t.Helper()

	var count int
	if err := conn.Read.Get(&count, query, args...); err != nil {
		t.Fatalf("failed to count: %v", err)
	}

	return count
}

func Exec(t testing.TB, conn *postgres.Connection, query string, args ...any) {
	t.Helper()

	if _, err := conn.Write.Exec(query, args...); err != nil {
		t.Fatalf("failed to exec %q: %v", query, err)
	}
}

// FanOut starts n callers together and waits for all of them.
func FanOut(n int, call func(i int)) {
	var wg sync.WaitGroup

	start := make(chan struct{})

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start
			call(i)
		}()
	}

	close(start)
	wg.Wait()
}

func slicesMax(values []int) int {
	highest := 0
	for _, v := range values {
		highest = max(highest, v)
	}

	return highest
}
