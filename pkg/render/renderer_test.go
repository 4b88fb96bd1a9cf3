package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"testing"

	lsp "github.com/tliron/glsp/protocol_3_16"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

func TestCompute_Scenario(t *testing.T) {
	// Store = {"/repo/main.ts::5": "fix this"}
	annotations := []core.Annotation{
		{Path: "/repo/main.ts", Line: 5, Text: "fix this"},
	}
	r := New("")

	t.Run("Matching View", func(t *testing.T) {
		decs := r.Compute(annotations, "/repo/main.ts", 10)
		if len(decs) != 1 {
			t.Fatalf("expected exactly 1 decoration, got %d", len(decs))
		}
		if decs[0].Line != 5 {
			t.Errorf("expected decoration at line 5, got %d", decs[0].Line)
		}
		if decs[0].Text != "fix this" {
			t.Errorf("expected text 'fix this', got %q", decs[0].Text)
		}
	})

	t.Run("Other View", func(t *testing.T) {
		decs := r.Compute(annotations, "/repo/other.ts", 10)
		if len(decs) != 0 {
			t.Errorf("expected zero decorations for other.ts, got %d", len(decs))
		}
	})
}

func TestCompute_Normalization(t *testing.T) {
	annotations := []core.Annotation{
		{Path: `C:\Proj\a.ts`, Line: 3, Text: "windows spelling"},
	}
	r := New("")

	decs := r.Compute(annotations, "c:/proj/a.ts", 10)
	if len(decs) != 1 {
		t.Fatalf("expected normalized paths to match, got %d decorations", len(decs))
	}

	// The edit link round-trips the original, non-normalized path.
	args, ok := decs[0].Edit.Arguments[0].(EditArguments)
	if !ok {
		t.Fatalf("unexpected edit argument type %T", decs[0].Edit.Arguments[0])
	}
	if args.FilePath != `C:\Proj\a.ts` {
		t.Errorf("edit link path = %q, want original spelling", args.FilePath)
	}
	if args.Line != 3 {
		t.Errorf("edit link line = %d, want 3", args.Line)
	}
}

func TestCompute_OutOfRange(t *testing.T) {
	annotations := []core.Annotation{
		{Path: "/repo/a.go", Line: 10, Text: "beyond end"},
		{Path: "/repo/a.go", Line: -1, Text: "negative"},
		{Path: "/repo/a.go", Line: 9, Text: "last line"},
	}

	decs := New("").Compute(annotations, "/repo/a.go", 10)
	if len(decs) != 1 {
		t.Fatalf("expected 1 in-range decoration, got %d", len(decs))
	}
	if decs[0].Line != 9 {
		t.Errorf("expected surviving decoration at line 9, got %d", decs[0].Line)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	annotations := []core.Annotation{
		{Path: "/repo/a.go", Line: 2, Text: "two"},
		{Path: "/repo/a.go", Line: 7, Text: "seven"},
		{Path: "/repo/b.go", Line: 1, Text: "other file"},
	}
	r := New("✏️")

	first := r.Compute(annotations, "/repo/a.go", 20)
	second := r.Compute(annotations, "/repo/a.go", 20)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated renders with unchanged inputs differ")
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 decorations, got %d", len(first))
	}
	if first[0].Line != 2 || first[1].Line != 7 {
		t.Errorf("decorations not ordered by line: %d, %d", first[0].Line, first[1].Line)
	}
}

func TestHoverAt(t *testing.T) {
	annotations := []core.Annotation{
		{Path: "/repo/a.go", Line: 4, Text: "check bounds"},
	}
	r := New("")

	t.Run("Present", func(t *testing.T) {
		hover, ok := r.HoverAt(annotations, "/repo/a.go", 4)
		if !ok {
			t.Fatal("expected a hover payload")
		}
		content, ok := hover.Contents.(lsp.MarkupContent)
		if !ok {
			t.Fatalf("unexpected hover contents type %T", hover.Contents)
		}
		if content.Kind != lsp.MarkupKindMarkdown {
			t.Errorf("expected markdown hover, got %s", content.Kind)
		}
		if !strings.Contains(content.Value, "check bounds") {
			t.Errorf("hover does not contain note text: %q", content.Value)
		}
		if !strings.Contains(content.Value, DefaultIcon) {
			t.Errorf("hover does not contain icon: %q", content.Value)
		}
		if !strings.Contains(content.Value, EditCommandID) {
			t.Errorf("hover does not contain edit link: %q", content.Value)
		}
	})

	t.Run("Absent", func(t *testing.T) {
		if _, ok := r.HoverAt(annotations, "/repo/a.go", 5); ok {
			t.Error("expected no hover for unannotated line")
		}
	})

	t.Run("Custom Icon", func(t *testing.T) {
		hover, ok := New("⭐").HoverAt(annotations, "/repo/a.go", 4)
		if !ok {
			t.Fatal("expected a hover payload")
		}
		content := hover.Contents.(lsp.MarkupContent)
		if !strings.Contains(content.Value, "⭐") {
			t.Errorf("hover does not use configured icon: %q", content.Value)
		}
	})
}

// The edit link must carry the note's filePath and line so a host consuming
// only the hover payload can route the edit to the right note.
func TestHoverAt_EditLinkEncodesArguments(t *testing.T) {
	editLink := func(path string, line int) string {
		args, err := json.Marshal(EditArguments{FilePath: path, Line: line})
		if err != nil {
			t.Fatal(err)
		}
		return fmt.Sprintf("(command:%s?%s)", EditCommandID, url.QueryEscape(string(args)))
	}

	t.Run("Path And Line In Link", func(t *testing.T) {
		annotations := []core.Annotation{
			{Path: "/repo/main.ts", Line: 5, Text: "fix this"},
		}
		hover, ok := New("").HoverAt(annotations, "/repo/main.ts", 5)
		if !ok {
			t.Fatal("expected a hover payload")
		}
		content := hover.Contents.(lsp.MarkupContent)
		if want := editLink("/repo/main.ts", 5); !strings.Contains(content.Value, want) {
			t.Errorf("hover markdown %q does not contain edit link %q", content.Value, want)
		}
	})

	t.Run("Original Spelling Preserved", func(t *testing.T) {
		annotations := []core.Annotation{
			{Path: `C:\Proj\a.ts`, Line: 3, Text: "win"},
		}
		// Looked up through the normalized spelling, linked with the original.
		hover, ok := New("").HoverAt(annotations, "c:/proj/a.ts", 3)
		if !ok {
			t.Fatal("expected a hover payload")
		}
		content := hover.Contents.(lsp.MarkupContent)
		if want := editLink(`C:\Proj\a.ts`, 3); !strings.Contains(content.Value, want) {
			t.Errorf("hover markdown %q does not contain edit link %q", content.Value, want)
		}
	})
}
