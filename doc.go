// Package drills bundles three small console exercises behind one module:
// a binary-to-decimal converter (pkg/binary), a note-taking tool backed by a
// JSON file (pkg/core with the pkg/adapters/fs storage adapter) and a word
// frequency counter (pkg/wordfreq).
//
// The cmd/drills binary exposes each exercise as a subcommand. This package is
// the composition root for the notes tool:
//
//	nb, err := drills.OpenNotebook(ctx, "notes/notes.json",
//		drills.WithLogger(logger),
//	)
//
//	// Create, then persist on quit
//	_, _, err = nb.Create("groceries", "milk, eggs")
//	err = nb.Save(ctx)
package drills
