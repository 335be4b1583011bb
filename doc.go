// Package notekeep is the Composition Root for the notekeep application.
//
// It connects the core notebook domain (store, views, export) with the
// infrastructure adapters (filesystem and Badger persistence) using the
// Hexagonal Architecture pattern.
//
// Philosophy:
//
// Notekeep treats a personal collection of study notebooks as a small
// transactional database: every mutation persists the full collection before
// it becomes visible, so the in-memory state and the stored state never
// drift apart. The storage substrate is abstracted behind core.Adapter,
// with a single-file JSON/YAML adapter and an embedded Badger adapter
// provided out of the box.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Persist-then-commit**: A failed save leaves the visible state untouched.
//   - **Derived Views**: Non-destructive sort and search over the collection.
//   - **Change Feed**: Subscribers receive an event per committed mutation.
//   - **External Change Detection**: The fs adapter can watch the store file
//     and reconcile edits made by other processes.
//   - **AI Augmentation**: An optional gateway produces explanations,
//     summaries, and quizzes for a notebook via a completion provider.
//
// Usage:
//
//	// Open a store with functional options
//	store, err := notekeep.Open(ctx, "./notebooks.json",
//		notekeep.WithAutoInit(true),
//		notekeep.WithLogger(logger),
//	)
//
//	// Create a notebook
//	nb, err := store.Create(ctx, "Graph Theory")
package notekeep
