package advanced

import "github.com/pkg/errors"

// Threading errors through the cavity and walk helpers would add a lot of
// noise for conditions that can only arise from a bug (a broken adjacency
// table, a walk that escapes the mesh). Instead, we panic with a
// TriangulateError, and the public API recovers to convert to an error.
// Expected failures, like degenerate input, are returned normally.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError(errors.Errorf(format, args...)))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return errors.Wrap(triangulateError, "triangulation invariant violated")
		}
		panic(r)
	}
	return nil
}
