package mines

import "errors"

var (
	ErrInvalidCoord      = errors.New("invalid cell coordinates")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrInvalidTransition = errors.New("invalid cell value transition")
)

// AssertionError reports a broken engine invariant. The engine panics with it;
// callers that want to survive recover it (see game.Invoker).
type AssertionError struct {
	message string
	err     error
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e AssertionError) Unwrap() error {
	return e.err
}

// panics [AssertionError]
func must(err error, message string) {
	if err != nil {
		panic(AssertionError{message, err})
	}
}
