package roadgraph

import "io"

// Storable is the lifecycle surface of any storage-backed component
type Storable interface {
	// LoadExisting attaches to previously persisted state. Returns false if there is none,
	// which is a normal outcome and not a failure.
	LoadExisting() bool
	// Close releases held resources. It does NOT flush pending writes.
	// Any other call after Close panics with ErrStorageClosed.
	io.Closer
	// Capacity returns allocated storage size in bytes
	Capacity() int64
}
