// Package api exposes the editor HTTP surface: media CRUD and resolution,
// bulk import, story document access, ephemeral object URL serving, and
// WebSocket streaming of the per-type media feeds.
//
// The package owns no domain logic; it adapts the media store, importer,
// and project packages for the browser-based editor UI.
package api
