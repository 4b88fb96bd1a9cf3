package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	lsp "github.com/tliron/glsp/protocol_3_16"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// Renderer turns annotations into decorations for a single view.
// The zero value renders with DefaultIcon.
type Renderer struct {
	// Icon is the glyph prepended to hover previews.
	Icon string
}

// New creates a Renderer. An empty icon selects DefaultIcon.
func New(icon string) *Renderer {
	if icon == "" {
		icon = DefaultIcon
	}
	return &Renderer{Icon: icon}
}

func (r *Renderer) icon() string {
	if r == nil || r.Icon == "" {
		return DefaultIcon
	}
	return r.Icon
}

// Compute builds the full decoration set for a view.
//
// Every annotation is matched against the view path after normalization
// (separators + case). Matches outside [0, lineCount) are dropped. The result
// is the complete replacement set for the view, sorted by line so repeated
// calls with the same inputs are byte-for-byte identical.
func (r *Renderer) Compute(annotations []core.Annotation, viewPath string, lineCount int) []Decoration {
	viewNorm := core.NormalizePath(viewPath)

	decorations := make([]Decoration, 0, len(annotations))
	for _, a := range annotations {
		if core.NormalizePath(a.Path) != viewNorm {
			continue
		}
		if a.Line < 0 || a.Line >= lineCount {
			continue
		}
		decorations = append(decorations, r.decorate(a))
	}

	sort.Slice(decorations, func(i, j int) bool {
		return decorations[i].Line < decorations[j].Line
	})
	return decorations
}

// HoverAt is the pure read path behind hover previews: the payload for the
// annotation at (viewPath, line), if any.
func (r *Renderer) HoverAt(annotations []core.Annotation, viewPath string, line int) (lsp.Hover, bool) {
	viewNorm := core.NormalizePath(viewPath)
	for _, a := range annotations {
		if a.Line == line && core.NormalizePath(a.Path) == viewNorm {
			return r.hover(a), true
		}
	}
	return lsp.Hover{}, false
}

func (r *Renderer) decorate(a core.Annotation) Decoration {
	return Decoration{
		Line:  a.Line,
		Text:  a.Text,
		Range: lineRange(a.Line),
		Hover: r.hover(a),
		Edit:  editCommand(a),
	}
}

func (r *Renderer) hover(a core.Annotation) lsp.Hover {
	rng := lineRange(a.Line)
	return lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  lsp.MarkupKindMarkdown,
			Value: fmt.Sprintf("%s %s\n\n[Edit Note](command:%s?%s)", r.icon(), a.Text, EditCommandID, editLinkArgs(a)),
		},
		Range: &rng,
	}
}

// editLinkArgs encodes the edit command arguments into the query portion of
// the command URI, so hosts consuming the hover alone can route the edit back
// to the right note. The original spelling of the path travels here, same as
// in the Command payload.
func editLinkArgs(a core.Annotation) string {
	args, err := json.Marshal(EditArguments{FilePath: a.Path, Line: a.Line})
	if err != nil {
		return ""
	}
	return url.QueryEscape(string(args))
}

func editCommand(a core.Annotation) lsp.Command {
	return lsp.Command{
		Title:   "Edit Note",
		Command: EditCommandID,
		// The original spelling of the path travels here, not the
		// normalized comparison form.
		Arguments: []any{EditArguments{FilePath: a.Path, Line: a.Line}},
	}
}
