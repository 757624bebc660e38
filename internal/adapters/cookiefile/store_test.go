package cookiefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	store.Set("theme", "dark")

	var theme string
	if !store.Get("theme", &theme) {
		t.Fatal("Get reported absent for a key just written")
	}
	if theme != "dark" {
		t.Errorf("theme = %q, want dark", theme)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var v string
	if store.Get("nope", &v) {
		t.Error("Get reported present for a missing key")
	}
}

func TestExpiredEntryReadsAbsent(t *testing.T) {
	store, err := Open(t.TempDir(), WithTTL(time.Millisecond))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	store.Set("theme", "light")
	time.Sleep(5 * time.Millisecond)

	var theme string
	if store.Get("theme", &theme) {
		t.Error("Get returned an expired entry")
	}
}

func TestOversizedValueDropped(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	store.Set("big", strings.Repeat("x", MaxValueSize+1))

	var v string
	if store.Get("big", &v) {
		t.Error("oversized value was stored despite the size ceiling")
	}
}

func TestCorruptFileReadsAbsent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cookies.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var v string
	if store.Get("theme", &v) {
		t.Error("Get reported present from a corrupt file")
	}

	// Writing afterwards recovers the file.
	store.Set("theme", "dark")
	if !store.Get("theme", &v) || v != "dark" {
		t.Error("store did not recover from a corrupt file on write")
	}
}

func TestUnparseableValueReadsAbsent(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	store.Set("count", "not-a-number")

	var count int
	if store.Get("count", &count) {
		t.Error("Get decoded a string into an int")
	}
}
