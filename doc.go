// Package canvas is the Composition Root for Code Canvas.
//
// It connects the core annotation logic (Domain Layer) with the persistence
// adapter (a single JSON document on disk) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// Code Canvas pins short free-text notes to specific lines of source files.
// Notes live outside the files they annotate: nothing is inserted into the
// code, nothing needs committing. The store is a flat JSON object mapping
// "path::line" keys to note text; an editor host renders the notes as gutter
// markers with hover previews.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Crash Safe**: every mutation is flushed atomically (temp file + rename).
//   - **Forgiving Loads**: a missing or malformed notes file never breaks the
//     session; it is logged and the store starts empty.
//   - **Editor-Protocol Payloads**: hovers and edit links use LSP types, so any
//     host that speaks the protocol can render them directly.
//   - **Reactive**: the store watches its backing file and re-renders open
//     views when another process rewrites it.
//
// Usage:
//
//	// Compose a session against your editor surface
//	sess, err := canvas.NewSession(workdir, mySurface,
//		canvas.WithLogger(logger),
//	)
//
//	// Track the view the user has open
//	view, _ := sess.OpenView(ctx, "/repo/main.ts", 120)
//	sess.SetCursor(view.ID, 5)
//
//	// Attach a note at the cursor
//	msg, _ := sess.AddNote(ctx, "fix this before release")
package canvas
