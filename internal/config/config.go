package config

import (
	"os"
	"path/filepath"
)

// Store backend names
const (
	StoreSQLite = "sqlite"
	StoreCookie = "cookie"
)

// Persistence channel names. "store" persists each collection under its
// own key; "snapshot" persists the whole state as one encoded token.
const (
	ChannelStore    = "store"
	ChannelSnapshot = "snapshot"
)

// DataDir returns the directory holding the durable store, from
// BAKERSPAL_DATA_DIR, falling back to the XDG data directory.
func DataDir() string {
	if env := os.Getenv("BAKERSPAL_DATA_DIR"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bakerspal")
}

// StoreBackend returns the store backend from BAKERSPAL_STORE,
// falling back to sqlite.
func StoreBackend() string {
	if env := os.Getenv("BAKERSPAL_STORE"); env == StoreCookie {
		return StoreCookie
	}
	return StoreSQLite
}

// Channel returns the persistence channel from BAKERSPAL_CHANNEL,
// falling back to per-key storage.
func Channel() string {
	if env := os.Getenv("BAKERSPAL_CHANNEL"); env == ChannelSnapshot {
		return ChannelSnapshot
	}
	return ChannelStore
}

// StartView returns the view the TUI opens on, from BAKERSPAL_VIEW.
func StartView() string {
	return os.Getenv("BAKERSPAL_VIEW")
}

// GeminiAPIKey returns the Gemini API key from GEMINI_API_KEY.
// An empty key disables the advisor.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GeminiModel returns the model from BAKERSPAL_MODEL, falling back to
// gemini-2.5-flash.
func GeminiModel() string {
	if env := os.Getenv("BAKERSPAL_MODEL"); env != "" {
		return env
	}
	return "gemini-2.5-flash"
}
