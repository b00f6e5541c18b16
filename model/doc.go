// Package model provides the intermediate representation (IR) for parsed
// songbook content.
//
// This package defines the user-facing data structures that represent a
// song reconstructed from a scanned songbook page. All parsing operations
// ultimately produce these types, making them the primary API for
// consuming parsed content.
//
// # Input
//
// The [TextRun] type is the sole input primitive: one positioned piece of
// text as read from a PDF page, with its bounding box, font size, and
// accent-color flag. Runs are produced once per page by an extraction
// collaborator and never mutated.
//
// # Output
//
// The [Song] type represents a complete parsed song:
//
//   - [Song] - title, optional kapodaster, verses, comments
//   - [Verse] - a role token plus its lyric lines in reading order
//   - [VerseLine] - lyric text with offset-sorted [Chord] annotations
//   - [Chord] - chord name and its character offset in the lyric line
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with edge and containment helpers
//   - [Point] - 2D point
//
// All coordinates are top-down: Y grows toward the bottom of the page,
// and multi-page documents carry page-offset-adjusted Y values so that
// reading order is monotonic in Y across pages.
package model
