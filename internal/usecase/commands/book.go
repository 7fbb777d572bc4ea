package commands

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/patch"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=book.go -destination=../../../tests/mock/commands/book.go -package=commandsmock

type CreateBookRequest struct {
	Title           string
	Author          string
	PublicationYear int
	PictureURL      *string
	TotalCopies     int
}

// UpdateBookRequest leaves nil fields unchanged.
type UpdateBookRequest struct {
	Title           *string
	Author          *string
	PublicationYear *int
	PictureURL      *string
	TotalCopies     *int
}

type BookCommands interface {
	Create(ctx context.Context, req CreateBookRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookCommands(uow shared.UnitOfWork, clk clock.Clock) BookCommands {
	return &bookCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookCommandsImpl) Create(ctx context.Context, req CreateBookRequest) (uuid.UUID, error) {
	details, err := book.NewDetails(req.Title, req.Author, req.PublicationYear, req.PictureURL)
	if err != nil {
		return uuid.Nil, err
	}

	b, err := book.NewBook(details, req.TotalCopies, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Books().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (uc *bookCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, book.ErrBookNotFound)
		}

		details, err := book.NewDetails(
			patch.Coalesce(req.Title, b.Title().String()),
			patch.Coalesce(req.Author, b.Author().String()),
			patch.Coalesce(req.PublicationYear, b.PublicationYear().Int()),
			patch.CoalescePtr(req.PictureURL, b.PictureURL()),
		)
		if err != nil {
			return err
		}

		if err := b.Revise(details, patch.Coalesce(req.TotalCopies, b.TotalCopies()), uc.clock.Now()); err != nil {
			return err
		}
		return tx.Books().Save(ctx, tx.DB(), b)
	})
	return translateTxErr(err)
}

func (uc *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, book.ErrBookNotFound)
		}

		active, err := tx.Books().CountActiveReservations(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}
		if err := b.EnsureDeletable(active); err != nil {
			return err
		}

		return notFoundAs(tx.Books().Delete(ctx, tx.DB(), b.ID()), book.ErrBookNotFound)
	})
}
