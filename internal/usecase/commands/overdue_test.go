//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/commands"
	"library-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLease struct {
	granted bool
	err     error
	keys    []string
	ttls    []time.Duration
}

func (l *stubLease) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.keys = append(l.keys, key)
	l.ttls = append(l.ttls, ttl)
	return l.granted, l.err
}

func seedLoans(uow *memoryUoW) map[string]uuid.UUID {
	due := fixedNow.Add(-time.Hour)
	later := fixedNow.Add(time.Hour)
	ids := map[string]uuid.UUID{}
	add := func(key string, st reservation.Status, at time.Time) {
		r := uow.addReservation(builder.NewReservationBuilder().WithStatus(st).DueAt(at).BuildDomain())
		ids[key] = r.ID()
	}
	add("borrowedPastDue", reservation.StatusBorrowed, due)
	add("borrowedPastDue2", reservation.StatusBorrowed, fixedNow.AddDate(0, 0, -10))
	add("borrowedNotDue", reservation.StatusBorrowed, later)
	add("reservedPastDue", reservation.StatusReserved, due)
	add("alreadyOverdue", reservation.StatusOverdue, due)
	add("returned", reservation.StatusReturned, due)
	return ids
}

func TestOverdueCommands_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("期限切れの BORROWED のみ OVERDUE になる", func(t *testing.T) {
		uow := newMemoryUoW()
		ids := seedLoans(uow)
		cmd := commands.NewOverdueCommands(uow, &stubLease{granted: true}, time.Minute, clock.NewMockClock(fixedNow))

		result, err := cmd.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Affected)
		assert.Equal(t, fixedNow, result.RanAt)
		assert.False(t, result.Skipped)

		want := map[string]reservation.Status{
			"borrowedPastDue":  reservation.StatusOverdue,
			"borrowedPastDue2": reservation.StatusOverdue,
			"borrowedNotDue":   reservation.StatusBorrowed,
			"reservedPastDue":  reservation.StatusReserved,
			"alreadyOverdue":   reservation.StatusOverdue,
			"returned":         reservation.StatusReturned,
		}
		for key, st := range want {
			assert.Equal(t, st, uow.reservations[ids[key]].Status(), key)
		}
	})

	t.Run("2回目の実行は何もしない", func(t *testing.T) {
		uow := newMemoryUoW()
		seedLoans(uow)
		cmd := commands.NewOverdueCommands(uow, &stubLease{granted: true}, time.Minute, clock.NewMockClock(fixedNow))

		first, err := cmd.Sweep(ctx)
		require.NoError(t, err)
		second, err := cmd.Sweep(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(2), first.Affected)
		assert.Equal(t, int64(0), second.Affected)
	})

	t.Run("対象なし", func(t *testing.T) {
		cmd := commands.NewOverdueCommands(newMemoryUoW(), &stubLease{granted: true}, time.Minute, clock.NewMockClock(fixedNow))

		result, err := cmd.Sweep(ctx)

		require.NoError(t, err)
		assert.Zero(t, result.Affected)
	})
}

func TestOverdueCommands_RunScheduled(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		lease        *stubLease
		wantSkipped  bool
		wantAffected int64
	}{
		{name: "リースを取得できたら実行する", lease: &stubLease{granted: true}, wantAffected: 2},
		{name: "他インスタンスが保持中ならスキップ", lease: &stubLease{granted: false}, wantSkipped: true},
		{name: "リース取得エラーでも実行する", lease: &stubLease{err: assert.AnError}, wantAffected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newMemoryUoW()
			seedLoans(uow)
			cmd := commands.NewOverdueCommands(uow, tt.lease, 5*time.Minute, clock.NewMockClock(fixedNow))

			result, err := cmd.RunScheduled(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
			assert.Equal(t, tt.wantAffected, result.Affected)
			assert.Equal(t, []string{"overdue-sweep"}, tt.lease.keys)
			assert.Equal(t, []time.Duration{5 * time.Minute}, tt.lease.ttls)
			if tt.wantSkipped {
				assert.Zero(t, uow.attempts)
			}
		})
	}
}
