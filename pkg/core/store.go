package core

import "context"

// Store defines the contract for persisting annotations.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (a JSON file today, anything else tomorrow).
type Store interface {
	// Initialize ensures the underlying storage is ready and loads any
	// persisted state. A missing backing file is not an error: the store
	// simply starts empty.
	Initialize(ctx context.Context) error

	// Upsert sets the annotation for its key, unconditionally overwriting
	// any previous text (last-write-wins), and flushes to disk.
	Upsert(ctx context.Context, a Annotation) error

	// Get retrieves the annotation for a key.
	// Returns ErrAnnotationNotFound on absence.
	Get(ctx context.Context, k Key) (Annotation, error)

	// Delete removes the annotation for a key and flushes to disk.
	// Deleting an absent key is a no-op.
	Delete(ctx context.Context, k Key) error

	// List returns all live annotations in no particular order.
	List(ctx context.Context) ([]Annotation, error)

	// ListFile returns the annotations whose path matches the given file,
	// compared after normalization (separator + case folding).
	ListFile(ctx context.Context, path string) ([]Annotation, error)
}

// Watchable is implemented by stores that can observe external changes to
// their backing storage.
type Watchable interface {
	// Watch emits store events until ctx is canceled. Callers must drain
	// the channel to avoid blocking the emitter.
	Watch(ctx context.Context) (<-chan Event, error)
}
