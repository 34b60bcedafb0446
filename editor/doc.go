// Package editor provides the Bubble Tea session that drives an atto
// document.
//
// The package owns key handling, the save-as prompt, status messages and
// frame rendering. All text mutation and viewport math is delegated to the
// buffer package.
package editor
