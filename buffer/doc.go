// Package buffer implements the byte-oriented document model for atto.
//
// A Document is an ordered list of rows. Coordinates are 0-based: rows are
// line indices, columns are byte offsets into a row's text. Render columns
// are offsets into the tab-expanded form of a row.
package buffer
