// Package dropdir turns files appearing in a directory into path drops.
//
// Hosts without a native drag-and-drop surface, such as a terminal, can
// watch a "drop folder": every file created in or moved into the folder
// is reported as a dropped path. Files arriving close together are
// grouped into one batch so a multi-file copy arrives as a single drop,
// matching what a window system reports for a multi-file drag.
//
// Batches are collected on a background goroutine and handed to the
// caller's goroutine by Drain.
package dropdir
