// Package drop filters dropped file paths by extension and adapts
// drop handlers to the per-path and batch shapes.
//
// The extension of a path is the text after the last '.' of the whole
// path string, compared case-sensitively. A path without a '.' has the
// empty extension. An empty Filter accepts every path.
package drop
