package roadgraph

import (
	"github.com/pkg/errors"
)

// Misuse errors. They are raised with panic (wrapped with a stack trace) and are never
// recovered inside this package: errors.Cause or errors.Is on the recovered value gives the sentinel.
var (
	ErrIteratorNotPositioned = errors.New("edge iterator is not positioned on an edge: call Next() first")
	ErrEmptyIterator         = errors.New("not supported: edge is empty")
	ErrStorageClosed         = errors.New("storage is closed")
	ErrNodeOutOfRange        = errors.New("node is out of range")
	ErrEdgeOutOfRange        = errors.New("edge is out of range")
	ErrNegativeDistance      = errors.New("distance must be non-negative")
)

func misuse(err error) {
	panic(errors.WithStack(err))
}

func misusef(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}
