package core_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// MockStore implements core.Store in memory.
// It deliberately does NOT implement core.Watchable to test the fallback error.
type MockStore struct {
	notes map[core.Key]string
}

func NewMockStore() *MockStore {
	return &MockStore{notes: make(map[core.Key]string)}
}

func (m *MockStore) Initialize(ctx context.Context) error { return nil }

func (m *MockStore) Upsert(ctx context.Context, a core.Annotation) error {
	m.notes[a.Key()] = a.Text
	return nil
}

func (m *MockStore) Get(ctx context.Context, k core.Key) (core.Annotation, error) {
	text, ok := m.notes[k]
	if !ok {
		return core.Annotation{}, core.ErrAnnotationNotFound
	}
	return core.Annotation{Path: k.Path, Line: k.Line, Text: text}, nil
}

func (m *MockStore) Delete(ctx context.Context, k core.Key) error {
	delete(m.notes, k)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]core.Annotation, error) {
	var out []core.Annotation
	for k, text := range m.notes {
		out = append(out, core.Annotation{Path: k.Path, Line: k.Line, Text: text})
	}
	// Sort for deterministic tests
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Line < out[j].Line
	})
	return out, nil
}

func (m *MockStore) ListFile(ctx context.Context, path string) ([]core.Annotation, error) {
	all, _ := m.List(ctx)
	var out []core.Annotation
	for _, a := range all {
		if strings.EqualFold(a.Path, path) {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestService_CRUD(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store, nil)
	ctx := context.TODO()

	// 1. Annotate
	if err := service.Annotate(ctx, "/repo/main.ts", 5, "fix this"); err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	// 2. Note
	a, err := service.Note(ctx, "/repo/main.ts", 5)
	if err != nil {
		t.Fatalf("Note failed: %v", err)
	}
	if a.Text != "fix this" {
		t.Errorf("expected text 'fix this', got %q", a.Text)
	}

	// 3. Overwrite: last write wins, exactly one entry remains
	if err := service.Annotate(ctx, "/repo/main.ts", 5, "done"); err != nil {
		t.Fatalf("Annotate overwrite failed: %v", err)
	}
	all, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 annotation after overwrite, got %d", len(all))
	}
	if all[0].Text != "done" {
		t.Errorf("expected overwritten text 'done', got %q", all[0].Text)
	}

	// 4. ForFile
	_ = service.Annotate(ctx, "/repo/other.ts", 2, "later")
	forMain, err := service.ForFile(ctx, "/repo/main.ts")
	if err != nil {
		t.Fatalf("ForFile failed: %v", err)
	}
	if len(forMain) != 1 {
		t.Errorf("expected 1 annotation for main.ts, got %d", len(forMain))
	}

	// 5. Remove
	if err := service.Remove(ctx, "/repo/main.ts", 5); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := service.Note(ctx, "/repo/main.ts", 5); !errors.Is(err, core.ErrAnnotationNotFound) {
		t.Errorf("expected ErrAnnotationNotFound after Remove, got %v", err)
	}
}

func TestService_Validation(t *testing.T) {
	service := core.NewService(NewMockStore(), nil)
	ctx := context.TODO()

	if err := service.Annotate(ctx, "", 0, "text"); err == nil {
		t.Error("expected error for empty path")
	}
	if err := service.Annotate(ctx, "/a", -1, "text"); err == nil {
		t.Error("expected error for negative line")
	}
	if _, err := service.Note(ctx, "", 0); err == nil {
		t.Error("expected error for empty path on Note")
	}

	// Empty text is a legitimate edit, not an error.
	if err := service.Annotate(ctx, "/a", 0, ""); err != nil {
		t.Errorf("empty text should be allowed: %v", err)
	}
}

func TestService_WatchUnsupported(t *testing.T) {
	service := core.NewService(NewMockStore(), nil)

	if _, err := service.Watch(context.TODO()); err == nil {
		t.Error("expected error when store is not Watchable")
	}
}
