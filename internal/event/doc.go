// Package event provides the handler registry behind the input dispatcher.
//
// Handlers are stored per Category in a List. A List keeps two views of its
// entries:
//
//   - an arena, append-only, that Handle indices point into
//   - a dispatch order, which is what a pass iterates
//
// Entries are never removed individually. Disabling a handle is the deletion
// substitute, so a handle stays valid for the lifetime of the list and can be
// re-enabled later. Clear drops everything and invalidates all handles issued
// before it.
//
// # Dispatch Passes
//
// A pass detaches the dispatch order, leaving an empty one behind, and walks
// the detached snapshot:
//
//	snap := list.Detach()
//	defer list.Restore(snap)
//	snap.Each(func(h KeyFunc) { h(ev) })
//
// Handlers running inside the pass may Add to the list or toggle handles.
// Additions land in the fresh dispatch order and are not part of the current
// pass. Restore puts the snapshot back after anything added during the pass.
// Which entries run is decided when the pass starts: toggling a handle
// mid-pass affects later passes only.
//
// A handler that fires the same category again from inside a pass sees only
// what was added during the pass, usually nothing, so the nested pass is a
// no-op instead of a recursion.
//
// # Thread Safety
//
// Lists are not safe for concurrent use. They are driven from the goroutine
// that polls the backend.
package event
