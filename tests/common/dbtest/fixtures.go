//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const DefaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, password_hash, role, is_active)
		VALUES ($1, 'Test', 'User', $2, $3, $4, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, DefaultPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBook(t *testing.T, db DBLike, title string, totalCopies int) uuid.UUID {
	t.Helper()

	bookID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO books (id, title, author, publication_year, total_copies, available_copies)
		VALUES ($1, $2, 'Test Author', 2001, $3, $3)`,
		bookID, title, totalCopies)
	require.NoError(t, err)

	return bookID
}

// CreateTestReservation inserts a row directly; copy counts on the book are not adjusted.
func CreateTestReservation(t *testing.T, db DBLike, userID, bookID uuid.UUID, status string, expectedReturn time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations (id, user_id, book_id, status, reservation_date, expected_return_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, userID, bookID, status, expectedReturn.Add(-7*24*time.Hour), expectedReturn)
	require.NoError(t, err)

	return id
}

func AvailableCopies(t *testing.T, db DBLike, bookID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT available_copies FROM books WHERE id = $1", bookID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var s string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&s)
	require.NoError(t, err)
	return s
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
