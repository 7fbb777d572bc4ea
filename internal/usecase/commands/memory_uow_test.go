//go:build unit

package commands_test

import (
	"context"
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/reservation"
	"library-backend/internal/domain/user"
	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxAttempts = 4

// memoryUoW keeps committed state in maps. Each attempt works on copies that are
// written back only when fn succeeds, so a failed transaction leaves no trace.
type memoryUoW struct {
	books        map[uuid.UUID]*book.Book
	reservations map[uuid.UUID]*reservation.Reservation
	users        map[uuid.UUID]*user.User

	// staleBookSaves makes the next n book saves fail with a stale version.
	staleBookSaves int
	attempts       int
}

func newMemoryUoW() *memoryUoW {
	return &memoryUoW{
		books:        map[uuid.UUID]*book.Book{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		users:        map[uuid.UUID]*user.User{},
	}
}

func (u *memoryUoW) addBook(b *book.Book) *book.Book {
	u.books[b.ID()] = b
	return b
}

func (u *memoryUoW) addReservation(r *reservation.Reservation) *reservation.Reservation {
	u.reservations[r.ID()] = r
	return r
}

func (u *memoryUoW) addUser(usr *user.User) *user.User {
	u.users[usr.ID()] = usr
	return usr
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for range maxAttempts {
		u.attempts++
		tx := u.begin()
		if err = fn(ctx, tx); err == nil {
			u.commit(tx)
			return nil
		}
		if !infra.IsKind(err, infra.KindStaleVersion) {
			return err
		}
	}
	return err
}

func (u *memoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memoryUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return memoryReads{users: u.users}
}

func (u *memoryUoW) begin() *memoryTx {
	tx := &memoryTx{
		uow:          u,
		books:        make(map[uuid.UUID]*book.Book, len(u.books)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(u.reservations)),
		users:        make(map[uuid.UUID]*user.User, len(u.users)),
	}
	for id, b := range u.books {
		tx.books[id] = cloneBook(b, b.Version())
	}
	for id, r := range u.reservations {
		tx.reservations[id] = cloneReservation(r, r.Status())
	}
	for id, usr := range u.users {
		tx.users[id] = usr
	}
	return tx
}

func (u *memoryUoW) commit(tx *memoryTx) {
	u.books = tx.books
	u.reservations = tx.reservations
	u.users = tx.users
}

type memoryTx struct {
	uow          *memoryUoW
	books        map[uuid.UUID]*book.Book
	reservations map[uuid.UUID]*reservation.Reservation
	users        map[uuid.UUID]*user.User
}

func (t *memoryTx) Books() shared.BookRepository               { return memoryBooks{t} }
func (t *memoryTx) Reservations() shared.ReservationRepository { return memoryReservations{t} }
func (t *memoryTx) Users() shared.UserRepository               { return memoryUsers{t} }
func (t *memoryTx) Reads() shared.CommandReads                 { return memoryReads{users: t.users} }
func (t *memoryTx) DB() sqlc.DBTX                              { return nil }

func (t *memoryTx) countActive(match func(*reservation.Reservation) bool) int64 {
	var n int64
	for _, r := range t.reservations {
		if match(r) && r.Status().IsActive() {
			n++
		}
	}
	return n
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type memoryBooks struct{ tx *memoryTx }

func (r memoryBooks) Create(_ context.Context, _ sqlc.DBTX, b *book.Book) error {
	r.tx.books[b.ID()] = cloneBook(b, b.Version())
	return nil
}

func (r memoryBooks) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*book.Book, error) {
	b, ok := r.tx.books[id]
	if !ok {
		return nil, notFound("book not found")
	}
	return cloneBook(b, b.Version()), nil
}

func (r memoryBooks) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*book.Book, error) {
	return r.FindByID(ctx, db, id)
}

func (r memoryBooks) Save(_ context.Context, _ sqlc.DBTX, b *book.Book) error {
	stored, ok := r.tx.books[b.ID()]
	if r.tx.uow.staleBookSaves > 0 || !ok || stored.Version() != b.Version() {
		if r.tx.uow.staleBookSaves > 0 {
			r.tx.uow.staleBookSaves--
		}
		return infra.WrapRepoErr("book version is stale", nil, infra.KindStaleVersion)
	}
	r.tx.books[b.ID()] = cloneBook(b, b.Version()+1)
	return nil
}

func (r memoryBooks) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.tx.books[id]; !ok {
		return notFound("book not found")
	}
	delete(r.tx.books, id)
	return nil
}

func (r memoryBooks) CountActiveReservations(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	return r.tx.countActive(func(res *reservation.Reservation) bool { return res.BookID() == id }), nil
}

type memoryReservations struct{ tx *memoryTx }

func (r memoryReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	r.tx.reservations[res.ID()] = cloneReservation(res, res.Status())
	return nil
}

func (r memoryReservations) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.tx.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return cloneReservation(res, res.Status()), nil
}

func (r memoryReservations) Save(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.tx.reservations[res.ID()]; !ok {
		return notFound("reservation not found")
	}
	r.tx.reservations[res.ID()] = cloneReservation(res, res.Status())
	return nil
}

func (r memoryReservations) LockBorrowedDueBefore(_ context.Context, _ sqlc.DBTX, cutoff time.Time) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.tx.reservations {
		if res.Status() == reservation.StatusBorrowed && res.ExpectedReturnDate().Before(cutoff) {
			out = append(out, cloneReservation(res, res.Status()))
		}
	}
	return out, nil
}

func (r memoryReservations) MarkOverdue(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID, _ time.Time) (int64, error) {
	var n int64
	for _, id := range ids {
		res, ok := r.tx.reservations[id]
		if !ok || res.Status() != reservation.StatusBorrowed {
			continue
		}
		r.tx.reservations[id] = cloneReservation(res, reservation.StatusOverdue)
		n++
	}
	return n, nil
}

type memoryUsers struct{ tx *memoryTx }

func (r memoryUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	for _, existing := range r.tx.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.tx.users[u.ID()] = u
	return nil
}

func (r memoryUsers) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r memoryUsers) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.tx.users[id]; !ok {
		return notFound("user not found")
	}
	delete(r.tx.users, id)
	return nil
}

func (r memoryUsers) CountActiveReservations(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	return r.tx.countActive(func(res *reservation.Reservation) bool { return res.UserID() == id }), nil
}

type memoryReads struct {
	users map[uuid.UUID]*user.User
}

func (r memoryReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.users {
		if u.Email().Value() == email {
			return snapshotOf(u), nil
		}
	}
	return nil, notFound("user not found")
}

func (r memoryReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return snapshotOf(u), nil
}

func snapshotOf(u *user.User) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Role:         u.Role(),
		IsActive:     u.IsActive(),
		PasswordHash: u.PasswordHash(),
	}
}

func cloneBook(b *book.Book, version int32) *book.Book {
	return book.ReconstructBook(b.ID(), b.Details(), b.TotalCopies(), b.AvailableCopies(), version, b.CreatedAt(), b.UpdatedAt())
}

func cloneReservation(r *reservation.Reservation, status reservation.Status) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.UserID(), r.BookID(), status,
		r.ReservationDate(), r.ExpectedReturnDate(), r.ReturnDate(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}
