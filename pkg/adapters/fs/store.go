// Package fs implements core.Store on top of a single JSON document.
//
// The persisted format is a flat object mapping "path::line" keys to note
// text, pretty-printed with 2-space indentation. There is no schema version;
// a file that does not parse as map[string]string is logged and ignored,
// leaving the in-memory state untouched.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

const defaultEventBuffer = 100

// Config holds the configuration for the JSON-file store.
type Config struct {
	// Path is the location of the notes file (e.g. .canvas/notes.json).
	Path string

	// Logger receives non-fatal load/save diagnostics. Nil means slog.Default.
	Logger *slog.Logger

	// EventBuffer is the capacity of channels returned by Watch.
	// Zero means default (100).
	EventBuffer int
}

// Store implements core.Store backed by a single JSON file.
//
// All mutations flush immediately: there is no write batching or dirty flag.
// The in-memory map stays authoritative when a flush fails; the error is
// returned wrapped for the caller's policy to decide.
type Store struct {
	path        string
	logger      *slog.Logger
	eventBuffer int

	mu    sync.RWMutex
	notes map[core.Key]string
	// raw preserves persisted entries whose key does not decode (missing
	// separator, non-canonical line). They are never rendered or mutated,
	// but they survive save/load round trips.
	raw map[string]string

	subs          map[uint64]chan core.Event
	nextSub       uint64
	watcherActive bool
}

// NewStore creates a JSON-file store. Call Initialize before use.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	buffer := config.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &Store{
		path:        config.Path,
		logger:      logger,
		eventBuffer: buffer,
		notes:       make(map[core.Key]string),
		raw:         make(map[string]string),
		subs:        make(map[uint64]chan core.Event),
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Initialize ensures the parent directory exists and loads persisted state.
// A missing file leaves the store empty; malformed content is logged and
// ignored (silent degradation, never fatal).
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return nil
}

// loadLocked reads the backing file into fresh maps. Callers hold s.mu.
func (s *Store) loadLocked() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return // Start fresh
	}
	if err != nil {
		s.logger.Warn("failed to read notes file", "path", s.path, "error", err)
		return
	}

	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("notes file is not a valid JSON object, ignoring", "path", s.path, "error", err)
		return
	}

	notes := make(map[core.Key]string, len(payload))
	raw := make(map[string]string)
	for rawKey, text := range payload {
		key, err := core.DecodeKey(rawKey)
		if err != nil {
			// Skipped for rendering, preserved for round-trip fidelity.
			s.logger.Debug("skipping malformed note key", "key", rawKey)
			raw[rawKey] = text
			continue
		}
		notes[key] = text
	}

	s.notes = notes
	s.raw = raw
}

// flushLocked serializes the current state and writes it atomically.
// Callers hold s.mu for writing.
func (s *Store) flushLocked() error {
	payload := make(map[string]string, len(s.notes)+len(s.raw))
	for key, text := range s.notes {
		payload[core.EncodeKey(key)] = text
	}
	for rawKey, text := range s.raw {
		payload[rawKey] = text
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	return nil
}

// Upsert sets the note for its key (last-write-wins) and flushes.
// The in-memory state is updated and the change event emitted even when the
// flush fails; the returned error reports the durability problem.
func (s *Store) Upsert(ctx context.Context, a core.Annotation) error {
	s.mu.Lock()
	s.notes[a.Key()] = a.Text
	err := s.flushLocked()
	s.mu.Unlock()

	s.emit(core.Event{Type: core.EventUpsert, Key: a.Key(), Timestamp: time.Now().Unix()})
	return err
}

// Get retrieves the note for a key.
func (s *Store) Get(ctx context.Context, k core.Key) (core.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.notes[k]
	if !ok {
		return core.Annotation{}, core.ErrAnnotationNotFound
	}
	return core.Annotation{Path: k.Path, Line: k.Line, Text: text}, nil
}

// Delete removes the note for a key and flushes. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, k core.Key) error {
	s.mu.Lock()
	if _, ok := s.notes[k]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.notes, k)
	err := s.flushLocked()
	s.mu.Unlock()

	s.emit(core.Event{Type: core.EventDelete, Key: k, Timestamp: time.Now().Unix()})
	return err
}

// List returns all live annotations, sorted by path then line for
// deterministic output.
func (s *Store) List(ctx context.Context) ([]core.Annotation, error) {
	s.mu.RLock()
	out := make([]core.Annotation, 0, len(s.notes))
	for key, text := range s.notes {
		out = append(out, core.Annotation{Path: key.Path, Line: key.Line, Text: text})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Line < out[j].Line
	})
	return out, nil
}

// ListFile returns the annotations attached to path, compared after
// normalization.
func (s *Store) ListFile(ctx context.Context, path string) ([]core.Annotation, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]core.Annotation, 0, len(all))
	for _, a := range all {
		if core.SamePath(a.Path, path) {
			out = append(out, a)
		}
	}
	return out, nil
}

// reload re-reads the backing file after an external change. Returns true
// when the live annotation set actually changed (self-triggered filesystem
// events from our own flushes reload to an identical map and report false).
func (s *Store) reload() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.notes
	s.loadLocked()

	if len(before) != len(s.notes) {
		return true
	}
	for key, text := range before {
		if got, ok := s.notes[key]; !ok || got != text {
			return true
		}
	}
	return false
}

// --- Event plumbing ---

func (s *Store) subscribe() (uint64, chan core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan core.Event, s.eventBuffer)
	s.subs[id] = ch
	return id, ch
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

// emit delivers an event to every subscriber without blocking. A subscriber
// that stopped draining loses events; the drop is logged at debug level.
func (s *Store) emit(e core.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subs {
		select {
		case ch <- e:
		default:
			s.logger.Debug("dropping store event, subscriber buffer full", "subscriber", id, "event", e.String())
		}
	}
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
