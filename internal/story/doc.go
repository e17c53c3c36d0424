// Package story defines the branching-narrative document model and the
// line identifier allocator.
//
// A GfStory is an ordered sequence of typed lines (text, scene, option)
// plus opaque character records. Line identity is a decimal string issued
// by an Allocator that is reseeded from the document on load, so newly
// created lines never collide with ids already present and deleted ids
// are never recycled.
package story
