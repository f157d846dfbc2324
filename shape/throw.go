package shape

import "github.com/pkg/errors"

// The shape loops are hot, and a shape of unknown kind can only come from a
// programming error, so they panic rather than return errors. Public
// boundaries that run arbitrary strategies recover and convert to an error.

type ShapeError struct {
	error
}

// Panic with a ShapeError.
func Fatalf(format string, args ...interface{}) {
	panic(ShapeError{errors.Errorf(format, args...)})
}

// Call with the result of recover(). Returns nil if nothing panicked, the
// error if a ShapeError was thrown, and re-panics on anything else.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if shapeError, ok := r.(ShapeError); ok {
			return shapeError
		}
		panic(r)
	}
	return nil
}
