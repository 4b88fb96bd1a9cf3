// Package render computes the visual decoration set for an editor view from
// the current annotation store. It is pure: no I/O, no state, the same inputs
// always produce the same decorations.
package render

import (
	lsp "github.com/tliron/glsp/protocol_3_16"
)

// EditCommandID is the command identifier embedded in hover payloads.
// Hosts wire it to their edit-note handler.
const EditCommandID = "codecanvas.editNote"

// DefaultIcon is the glyph shown in gutters and hover previews when the
// configuration does not override it.
const DefaultIcon = "📌"

// Decoration is a single gutter marker: one annotated line of the view,
// anchored at column 0, with a rich hover payload.
type Decoration struct {
	// Line is the zero-based line the marker is attached to.
	Line int

	// Text is the literal annotation text.
	Text string

	// Range anchors the marker at column 0 of Line.
	Range lsp.Range

	// Hover is the preview payload (icon + text + edit link markdown).
	Hover lsp.Hover

	// Edit round-trips the original, non-normalized path and line so the
	// host can invoke the edit-note command from the hover.
	Edit lsp.Command
}

// EditArguments is the payload carried by a Decoration's Edit command.
type EditArguments struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
}

func lineRange(line int) lsp.Range {
	pos := lsp.Position{Line: lsp.UInteger(line), Character: 0}
	return lsp.Range{Start: pos, End: pos}
}
