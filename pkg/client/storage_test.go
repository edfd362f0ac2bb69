package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := NewFileTokenStore(path)

	if token, err := store.Load(); err != nil || token != "" {
		t.Fatalf("load before save: token=%q err=%v", token, err)
	}

	if err := store.Save("abc.def.ghi"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if token, err := store.Load(); err != nil || token != "abc.def.ghi" {
		t.Fatalf("load after save: token=%q err=%v", token, err)
	}

	if err := store.Save("new.token.value"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if token, _ := store.Load(); token != "new.token.value" {
		t.Fatalf("expected overwritten token, got %q", token)
	}
}

func TestFileTokenStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileTokenStore(path)
	if err := store.Save("secret"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("token file must be private, got %v", perm)
	}
}

func TestFileTokenStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileTokenStore(path)

	if err := store.Clear(); err != nil {
		t.Fatalf("clear on missing file must succeed: %v", err)
	}

	if err := store.Save("abc"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if token, err := store.Load(); err != nil || token != "" {
		t.Fatalf("load after clear: token=%q err=%v", token, err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("repeated clear must succeed: %v", err)
	}
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	if token, _ := store.Load(); token != "" {
		t.Fatalf("fresh store must be empty, got %q", token)
	}
	_ = store.Save("tok")
	if token, _ := store.Load(); token != "tok" {
		t.Fatalf("expected tok, got %q", token)
	}
	_ = store.Clear()
	if token, _ := store.Load(); token != "" {
		t.Fatalf("expected empty after clear, got %q", token)
	}
}
