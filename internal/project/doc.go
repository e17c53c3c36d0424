// Package project manages the on-disk story project: a locked directory
// holding story.json.
//
// Opening a project takes an advisory file lock so only one editor process
// writes a project at a time. Loading a story reseeds its id allocator
// exactly once, before any new line can be created; saving writes the
// document atomically via a temp file rename.
package project
