package errs

// Error categories surfaced by the booking engine. Specific errors stay plain sentinels and are
// tagged with a category when returned, so callers can branch on either through Is.
var (
	ErrNotFound        = New("not found")
	ErrForbidden       = New("forbidden")
	ErrConflict        = New("conflict")
	ErrInvalidArgument = New("invalid argument")

	// ErrUnsupportedState is kept apart from ErrInvalidArgument so a malformed state token
	// can be told from other validation failures.
	ErrUnsupportedState = New("unsupported state")
)

// NotFound tags err as a missing booking, item or user.
func NotFound(err error) error {
	return Mark(err, ErrNotFound)
}

func Forbidden(err error) error {
	return Mark(err, ErrForbidden)
}

func Conflict(err error) error {
	return Mark(err, ErrConflict)
}

func InvalidArgument(err error) error {
	return Mark(err, ErrInvalidArgument)
}

// UnsupportedState reports an unknown state filter token. It also carries ErrInvalidArgument.
func UnsupportedState(token string) error {
	return Mark(Mark(Newf("Unknown state: %s", token), ErrUnsupportedState), ErrInvalidArgument)
}
