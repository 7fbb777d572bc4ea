package shared

import (
	"context"
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/reservation"
	"library-backend/internal/domain/user"
	sqlc "library-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Books() BookRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error)
	// FindByIDForUpdate holds the row lock until the transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error)
	// Save fails with KindStaleVersion when the stored version differs from b.Version().
	Save(ctx context.Context, tx sqlc.DBTX, b *book.Book) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CountActiveReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// LockBorrowedDueBefore skips rows already locked by another transaction.
	LockBorrowedDueBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*reservation.Reservation, error)
	MarkOverdue(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, now time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	// FindByIDForUpdate blocks reservations referencing the user until the transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CountActiveReservations(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

// Lease grants exclusive execution of a named job across processes.
type Lease interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
