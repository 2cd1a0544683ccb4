package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestJSONStoreInitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastlit.json")

	gw := NewJSONStore(path)
	if err := gw.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := gw.Put("Example.v1", []byte(`"hello"`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Fresh gateway against the same file sees the persisted value.
	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := reloaded.Get("Example.v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `"hello"` {
		t.Errorf("expected %q, got %q", `"hello"`, got)
	}

	if _, err := reloaded.Get("Missing.v1"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound for missing key, got %v", err)
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastlit.json")

	gw := NewJSONStore(path)
	if err := gw.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected second Init to fail on existing file")
	}
}

func TestJSONStoreRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastlit.json")

	gw := NewJSONStore(path)
	if err := gw.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := gw.Put("Bad.v1", []byte("{oops")); err == nil {
		t.Error("expected Put to reject invalid JSON")
	}
}

func TestJSONStoreLoadWithoutInit(t *testing.T) {
	gw := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
	if err := gw.Load(); err == nil {
		t.Error("expected Load to fail before init")
	}
}
