package errs

// Error kinds shared by the domain and usecase layers.
// Concrete errors are marked with one of these so handlers can map them without knowing every sentinel.
var (
	ErrNotFound          = New("resource not found")
	ErrInvalidState      = New("invalid state transition")
	ErrCapacityViolation = New("copy capacity violated")
	ErrConflict          = New("conflicting resource state")
	ErrForbidden         = New("operation not permitted")
	ErrValidation        = New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

// Kind returns the first kind err is marked with, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrInvalidState, ErrCapacityViolation, ErrConflict, ErrForbidden, ErrValidation} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

// NewKind creates a sentinel carrying the given kind.
func NewKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
