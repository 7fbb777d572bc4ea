//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/reservation"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/ptr"
	"library-backend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	policy = reservation.DefaultPolicy()
	day    = 24 * time.Hour
	t0     = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
)

type snapshot struct {
	Status             reservation.Status
	ExpectedReturnDate time.Time
	ReturnDate         *time.Time
	Available          int
}

func snap(r *reservation.Reservation, b *book.Book) snapshot {
	return snapshot{
		Status:             r.Status(),
		ExpectedReturnDate: r.ExpectedReturnDate(),
		ReturnDate:         r.ReturnDate(),
		Available:          b.AvailableCopies(),
	}
}

func newBook(t *testing.T, total, available int) *book.Book {
	t.Helper()
	b, err := builder.NewBookBuilder().WithCopies(total, available).BuildDomain()
	require.NoError(t, err)
	return b
}

func loanOn(b *book.Book, status reservation.Status, due time.Time) *reservation.Reservation {
	return builder.NewReservationBuilder().
		ForBook(b.ID()).
		WithStatus(status).
		DueAt(due).
		BuildDomain()
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name       string
		daysToKeep *int
		wantDue    time.Time
	}{
		{name: "日数未指定はデフォルト7日", daysToKeep: nil, wantDue: t0.Add(7 * day)},
		{name: "日数指定14日", daysToKeep: ptr.Of(14), wantDue: t0.Add(14 * day)},
		{name: "0日はデフォルト", daysToKeep: ptr.Of(0), wantDue: t0.Add(7 * day)},
		{name: "負の日数はデフォルト", daysToKeep: ptr.Of(-3), wantDue: t0.Add(7 * day)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(t, 3, 3)
			userID := uuid.New()

			r, err := reservation.Reserve(b, userID, tt.daysToKeep, policy, t0)

			require.NoError(t, err)
			want := snapshot{Status: reservation.StatusReserved, ExpectedReturnDate: tt.wantDue, Available: 2}
			if diff := cmp.Diff(want, snap(r, b)); diff != "" {
				t.Errorf("reservation mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, t0, r.ReservationDate())
			assert.Equal(t, b.ID(), r.BookID())
			assert.True(t, r.BelongsTo(userID))
			assert.NotEqual(t, uuid.Nil, r.ID())
		})
	}

	t.Run("在庫0なら予約できず在庫も変わらない", func(t *testing.T) {
		b := newBook(t, 2, 0)

		r, err := reservation.Reserve(b, uuid.New(), nil, policy, t0)

		require.ErrorIs(t, err, book.ErrNoCopiesAvailable)
		assert.Equal(t, errs.ErrCapacityViolation, errs.Kind(err))
		assert.Nil(t, r)
		assert.Equal(t, 0, b.AvailableCopies())
	})
}

func TestReservation_Collect(t *testing.T) {
	tests := []struct {
		name   string
		status reservation.Status
		errIs  error
	}{
		{name: "RESERVED から BORROWED", status: reservation.StatusReserved},
		{name: "BORROWED からはNG", status: reservation.StatusBorrowed, errIs: reservation.ErrNotReserved},
		{name: "CANCELED からはNG", status: reservation.StatusCanceled, errIs: reservation.ErrNotReserved},
		{name: "RETURNED からはNG", status: reservation.StatusReturned, errIs: reservation.ErrNotReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(t, 3, 2)
			r := loanOn(b, tt.status, t0.Add(7*day))

			err := r.Collect(t0.Add(day))

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, errs.ErrInvalidState, errs.Kind(err))
				assert.Equal(t, tt.status, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusBorrowed, r.Status())
			assert.Equal(t, 2, b.AvailableCopies())
		})
	}
}

func TestReservation_Cancel(t *testing.T) {
	t.Run("RESERVED から CANCELED で在庫が戻る", func(t *testing.T) {
		b := newBook(t, 3, 2)
		r := loanOn(b, reservation.StatusReserved, t0.Add(7*day))

		require.NoError(t, r.Cancel(b, t0))

		assert.Equal(t, reservation.StatusCanceled, r.Status())
		assert.Equal(t, 3, b.AvailableCopies())
	})

	t.Run("BORROWED からはNG", func(t *testing.T) {
		b := newBook(t, 3, 2)
		r := loanOn(b, reservation.StatusBorrowed, t0.Add(7*day))

		err := r.Cancel(b, t0)

		require.ErrorIs(t, err, reservation.ErrNotReserved)
		assert.Equal(t, reservation.StatusBorrowed, r.Status())
		assert.Equal(t, 2, b.AvailableCopies())
	})

	t.Run("別の本ではNG", func(t *testing.T) {
		b := newBook(t, 3, 2)
		other := newBook(t, 3, 2)
		r := loanOn(b, reservation.StatusReserved, t0.Add(7*day))

		err := r.Cancel(other, t0)

		require.ErrorIs(t, err, reservation.ErrBookMismatch)
		assert.Equal(t, 2, other.AvailableCopies())
	})
}

func TestReservation_Return(t *testing.T) {
	due := t0.Add(7 * day)

	tests := []struct {
		name       string
		status     reservation.Status
		at         time.Time
		wantStatus reservation.Status
		errIs      error
	}{
		{name: "期限内の返却は RETURNED", status: reservation.StatusBorrowed, at: due.Add(-time.Hour), wantStatus: reservation.StatusReturned},
		{name: "期限ちょうどは RETURNED", status: reservation.StatusBorrowed, at: due, wantStatus: reservation.StatusReturned},
		{name: "期限後の返却は LATE_RETURNED", status: reservation.StatusBorrowed, at: due.Add(time.Second), wantStatus: reservation.StatusLateReturned},
		{name: "OVERDUE からの返却は LATE_RETURNED", status: reservation.StatusOverdue, at: due.Add(3 * day), wantStatus: reservation.StatusLateReturned},
		{name: "RESERVED からはNG", status: reservation.StatusReserved, at: due, errIs: reservation.ErrNotOnLoan},
		{name: "RETURNED からはNG", status: reservation.StatusReturned, at: due, errIs: reservation.ErrNotOnLoan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(t, 3, 2)
			r := loanOn(b, tt.status, due)

			err := r.Return(b, tt.at)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, snapshot{Status: tt.status, ExpectedReturnDate: due, Available: 2}, snap(r, b))
				return
			}
			require.NoError(t, err)
			at := tt.at
			want := snapshot{Status: tt.wantStatus, ExpectedReturnDate: due, ReturnDate: &at, Available: 3}
			if diff := cmp.Diff(want, snap(r, b)); diff != "" {
				t.Errorf("reservation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReservation_Extend(t *testing.T) {
	due := t0.Add(7 * day)

	tests := []struct {
		name    string
		status  reservation.Status
		at      time.Time
		wantDue time.Time
		errIs   error
	}{
		{name: "期限前は元の期限から7日延長", status: reservation.StatusBorrowed, at: due.Add(-2 * day), wantDue: due.Add(7 * day)},
		{name: "期限後は現在時刻から7日延長", status: reservation.StatusOverdue, at: due.Add(3 * day), wantDue: due.Add(10 * day)},
		{name: "RESERVED からはNG", status: reservation.StatusReserved, at: t0, errIs: reservation.ErrNotOnLoan},
		{name: "CANCELED からはNG", status: reservation.StatusCanceled, at: t0, errIs: reservation.ErrNotOnLoan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(t, 3, 2)
			r := loanOn(b, tt.status, due)

			err := r.Extend(policy, tt.at)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, due, r.ExpectedReturnDate())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusBorrowed, r.Status())
			assert.Equal(t, tt.wantDue, r.ExpectedReturnDate())
			assert.Equal(t, 2, b.AvailableCopies())
		})
	}

	t.Run("延長日数0では期限が延びずNG", func(t *testing.T) {
		b := newBook(t, 3, 2)
		r := loanOn(b, reservation.StatusBorrowed, due)

		err := r.Extend(reservation.Policy{DefaultDays: 7, ExtensionDays: 0}, t0)

		require.ErrorIs(t, err, reservation.ErrExtensionNotLater)
		assert.Equal(t, due, r.ExpectedReturnDate())
	})
}

func TestReservation_MarkOverdue(t *testing.T) {
	due := t0.Add(7 * day)

	tests := []struct {
		name   string
		status reservation.Status
		at     time.Time
		errIs  error
	}{
		{name: "期限切れの BORROWED は OVERDUE", status: reservation.StatusBorrowed, at: due.Add(time.Minute)},
		{name: "期限ちょうどはNG", status: reservation.StatusBorrowed, at: due, errIs: reservation.ErrNotDue},
		{name: "OVERDUE は再度マークされない", status: reservation.StatusOverdue, at: due.Add(day), errIs: reservation.ErrNotOnLoan},
		{name: "RESERVED は対象外", status: reservation.StatusReserved, at: due.Add(day), errIs: reservation.ErrNotOnLoan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(t, 3, 2)
			r := loanOn(b, tt.status, due)
			assert.Equal(t, tt.errIs == nil, r.IsOverdueAt(tt.at))

			err := r.MarkOverdue(tt.at)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.status, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusOverdue, r.Status())
			assert.False(t, r.IsOverdueAt(tt.at))
		})
	}
}

func TestLifecycle(t *testing.T) {
	t.Run("予約→受取→期限後返却で LATE_RETURNED となり在庫が戻る", func(t *testing.T) {
		b := newBook(t, 3, 3)

		r, err := reservation.Reserve(b, uuid.New(), nil, policy, t0)
		require.NoError(t, err)
		assert.Equal(t, 2, b.AvailableCopies())
		assert.Equal(t, reservation.StatusReserved, r.Status())

		require.NoError(t, r.Collect(t0.Add(time.Hour)))
		assert.Equal(t, reservation.StatusBorrowed, r.Status())
		assert.Equal(t, 2, b.AvailableCopies())

		require.NoError(t, r.Return(b, r.ExpectedReturnDate().Add(day)))
		assert.Equal(t, reservation.StatusLateReturned, r.Status())
		assert.Equal(t, 3, b.AvailableCopies())
	})

	t.Run("延滞→延長→返却", func(t *testing.T) {
		b := newBook(t, 1, 1)

		r, err := reservation.Reserve(b, uuid.New(), ptr.Of(3), policy, t0)
		require.NoError(t, err)
		require.NoError(t, r.Collect(t0))

		late := t0.Add(4 * day)
		require.NoError(t, r.MarkOverdue(late))
		require.NoError(t, r.Extend(policy, late))
		assert.Equal(t, late.Add(7*day), r.ExpectedReturnDate())

		require.NoError(t, r.Return(b, late.Add(day)))
		assert.Equal(t, reservation.StatusReturned, r.Status())
		assert.Equal(t, 1, b.AvailableCopies())
	})
}

func TestStatus(t *testing.T) {
	t.Run("ParseStatus は大文字を受け付ける", func(t *testing.T) {
		st, err := reservation.ParseStatus("LATE_RETURNED")

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusLateReturned, st)
		assert.Equal(t, "LATE_RETURNED", st.Wire())
	})

	t.Run("未知のステータスNG", func(t *testing.T) {
		_, err := reservation.ParseStatus("lost")

		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("有効判定", func(t *testing.T) {
		active := map[reservation.Status]bool{
			reservation.StatusReserved:     true,
			reservation.StatusBorrowed:     true,
			reservation.StatusLate:         true,
			reservation.StatusOverdue:      true,
			reservation.StatusReturned:     false,
			reservation.StatusCanceled:     false,
			reservation.StatusLateReturned: false,
		}
		for st, want := range active {
			assert.Equal(t, want, st.IsActive(), st.Wire())
		}
	})
}

func TestPolicy(t *testing.T) {
	t.Run("0以下はデフォルト", func(t *testing.T) {
		p := reservation.NewPolicy(0, -1, 0)

		assert.Equal(t, reservation.DefaultPolicy(), p)
	})

	t.Run("指定値を使う", func(t *testing.T) {
		p := reservation.NewPolicy(10, 3, 30)

		due, err := p.DueDate(t0, nil)
		require.NoError(t, err)
		assert.Equal(t, t0.AddDate(0, 0, 10), due)

		due, err = p.DueDate(t0, ptr.Of(2))
		require.NoError(t, err)
		assert.Equal(t, t0.AddDate(0, 0, 2), due)

		assert.Equal(t, t0.AddDate(0, 0, 3), p.Extend(t0))
	})

	t.Run("上限日数の境界", func(t *testing.T) {
		p := reservation.NewPolicy(7, 7, 30)

		due, err := p.DueDate(t0, ptr.Of(30))
		require.NoError(t, err)
		assert.Equal(t, t0.AddDate(0, 0, 30), due)

		_, err = p.DueDate(t0, ptr.Of(31))
		require.ErrorIs(t, err, reservation.ErrLoanTooLong)
		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})

	t.Run("期限は常に予約日より後", func(t *testing.T) {
		p := reservation.Policy{DefaultDays: 7, ExtensionDays: 7}

		due, err := p.DueDate(t0, ptr.Of(200000))

		require.NoError(t, err)
		assert.True(t, due.After(t0))
		assert.Equal(t, t0.AddDate(0, 0, 200000), due)
	})
}

func TestReserve_LoanTooLong(t *testing.T) {
	b := newBook(t, 1, 1)

	r, err := reservation.Reserve(b, uuid.New(), ptr.Of(200000), policy, t0)

	require.ErrorIs(t, err, reservation.ErrLoanTooLong)
	assert.Nil(t, r)
	assert.Equal(t, 1, b.AvailableCopies(), "失敗時は在庫を動かさない")
}
