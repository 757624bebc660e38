package ports

// StateStore is a durable per-installation key/value store. Values are
// whole JSON documents; there is no partial or field-level access.
//
// Get decodes the stored value into the pointer `into` and reports whether
// a usable value was found. A missing key, unreadable store, or
// unparseable value all read as absent, never as an error. Set serializes
// and writes the value; on any failure it logs and silently drops the
// write, leaving the in-memory state authoritative until the next load.
type StateStore interface {
	Get(key string, into any) bool
	Set(key string, value any)
	Close() error
}
