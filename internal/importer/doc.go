// Package importer bulk-registers asset references into the media store.
//
// References are classified by path convention: /audio/ prefixes become
// audio, /images/background/ prefixes become backgrounds, and everything
// else falls back to sprite. Remote URLs contribute their path component;
// the original reference string is stored as a remote link, never fetched.
// The result maps each input reference to its synthetic URL so callers can
// rewrite story documents to the internal addressing scheme.
//
// An optional fsnotify watcher registers files dropped into a local assets
// directory as binary payloads under the same classification rules.
package importer
