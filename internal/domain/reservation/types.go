package reservation

import (
	"strings"

	"library-backend/internal/pkg/errs"
)

var ErrInvalidStatus = errs.NewKind("invalid reservation status", errs.ErrValidation)

// Status is stored lowercase and exposed uppercase.
type Status string

const (
	StatusReserved     Status = "reserved"
	StatusBorrowed     Status = "borrowed"
	StatusLate         Status = "late" // accepted for stored data, never produced by a transition
	StatusOverdue      Status = "overdue"
	StatusReturned     Status = "returned"
	StatusCanceled     Status = "canceled"
	StatusLateReturned Status = "late_returned"
)

var allStatuses = []Status{
	StatusReserved, StatusBorrowed, StatusLate, StatusOverdue,
	StatusReturned, StatusCanceled, StatusLateReturned,
}

// ActiveStatuses hold a copy of the book.
var ActiveStatuses = []Status{StatusReserved, StatusBorrowed, StatusLate, StatusOverdue}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Wire() string {
	return strings.ToUpper(string(s))
}

func (s Status) IsValid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) IsActive() bool {
	for _, v := range ActiveStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) IsOnLoan() bool {
	return s == StatusBorrowed || s == StatusOverdue
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = st.String()
	}
	return out
}
