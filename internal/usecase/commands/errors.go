package commands

import (
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
)

var (
	ErrConcurrentModification = errs.NewKind("resource was modified concurrently", errs.ErrConflict)
	ErrReservationAccess      = errs.NewKind("reservation belongs to another user", errs.ErrForbidden)
	ErrUserInactive           = errs.NewKind("user account is inactive", errs.ErrForbidden)
)

// translateTxErr runs after the unit of work gave up; stale writes surface as a conflict.
func translateTxErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindStaleVersion) {
		return errs.Wrap(ErrConcurrentModification, err.Error())
	}
	return err
}

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
