// Package tables locates tabular structures inside a page of drawn
// primitives (line segments, rectangle outlines, character glyphs) and,
// optionally, fills their cells with recovered text.
//
// The pipeline is pure: given the same PageSource and settings it always
// produces the same ordered Tables. It performs no I/O, holds no state
// across calls, and is safe to run concurrently across different pages.
package tables
