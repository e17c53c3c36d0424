// Package media persists story assets in SQLite and exposes a coherent
// in-memory access layer over them.
//
// Assets are partitioned by type (audio, background, sprite) into one table
// each, keyed by name. A record holds either a binary payload or a remote
// link, never both. Three addressing spaces meet here: the persistent name,
// the synthetic "type:name" URL stored inside story documents, and the
// ephemeral object URL handed to the UI for binary payloads. Object URLs
// live only for the current session and are never revoked by the store.
//
// Every successful write republishes the affected type's full record list
// to its Feed, asynchronously after the write returns. Lookups for missing
// records return absent results, not errors; a missing asset degrades to an
// empty placeholder in the editor.
package media
