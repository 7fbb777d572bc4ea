package commands

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=overdue.go -destination=../../../tests/mock/commands/overdue.go -package=commandsmock

const overdueSweepLeaseKey = "overdue-sweep"

type SweepResult struct {
	Affected int64     `json:"affected"`
	RanAt    time.Time `json:"ran_at"`
	Skipped  bool      `json:"skipped"`
}

type OverdueCommands interface {
	// Sweep moves every BORROWED reservation past its expected return date to OVERDUE.
	Sweep(ctx context.Context) (*SweepResult, error)
	// RunScheduled is the cron entry point; it sweeps only while holding the lease.
	RunScheduled(ctx context.Context) (*SweepResult, error)
}

type overdueCommandsImpl struct {
	uow      shared.UnitOfWork
	lease    shared.Lease
	leaseTTL time.Duration
	clock    clock.Clock
}

func NewOverdueCommands(uow shared.UnitOfWork, lease shared.Lease, leaseTTL time.Duration, clk clock.Clock) OverdueCommands {
	return &overdueCommandsImpl{
		uow:      uow,
		lease:    lease,
		leaseTTL: leaseTTL,
		clock:    clk,
	}
}

func (uc *overdueCommandsImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	result := &SweepResult{RanAt: now}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		due, err := tx.Reservations().LockBorrowedDueBefore(ctx, tx.DB(), now)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(due))
		for _, res := range due {
			if err := res.MarkOverdue(now); err != nil {
				slog.Warn("skipping reservation in overdue sweep",
					"reservation_id", res.ID().String(),
					"error", err.Error())
				continue
			}
			ids = append(ids, res.ID())
		}

		affected, err := tx.Reservations().MarkOverdue(ctx, tx.DB(), ids, now)
		if err != nil {
			return err
		}
		result.Affected = affected
		return nil
	})
	if err != nil {
		slog.Error("overdue sweep failed", "error", err.Error())
		return nil, err
	}

	slog.Info("overdue sweep completed", "affected", result.Affected, "cutoff", now)
	return result, nil
}

func (uc *overdueCommandsImpl) RunScheduled(ctx context.Context) (*SweepResult, error) {
	ok, err := uc.lease.Acquire(ctx, overdueSweepLeaseKey, uc.leaseTTL)
	if err != nil {
		// Overlapping sweeps are safe under SKIP LOCKED
		slog.Warn("overdue sweep lease unavailable, sweeping anyway", "error", err.Error())
	} else if !ok {
		slog.Info("overdue sweep skipped, lease held by another instance")
		return &SweepResult{RanAt: uc.clock.Now(), Skipped: true}, nil
	}

	return uc.Sweep(ctx)
}
