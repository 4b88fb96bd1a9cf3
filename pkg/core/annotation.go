// Annotation is the central entity of the domain.
package core

import "fmt"

// Annotation pins a piece of free text to a specific line of a source file.
// Path is the absolute path of the annotated file as the editor reported it;
// Line is zero-based.
type Annotation struct {
	Path string
	Line int
	Text string
}

// Key identifies an annotation. It is the structured form of the wire key
// (see key.go); keeping it structured in memory avoids any separator
// ambiguity for paths that themselves contain the separator.
type Key struct {
	Path string
	Line int
}

// Key returns the identity of the annotation.
func (a Annotation) Key() Key {
	return Key{Path: a.Path, Line: a.Line}
}

// EventType represents the type of change in the annotation store.
type EventType string

const (
	EventUpsert EventType = "UPSERT"
	EventDelete EventType = "DELETE"
	// EventReload signals that the backing file changed outside this process
	// and the whole store was re-read.
	EventReload EventType = "RELOAD"
)

// Event represents a change in the annotation store.
type Event struct {
	Type      EventType
	Key       Key
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so store events can flow through a
// lifecycle.Source unchanged.
func (e Event) String() string {
	if e.Type == EventReload {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s:%d", e.Type, e.Key.Path, e.Key.Line)
}
