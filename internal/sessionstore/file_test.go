package sessionstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genesi-finance/genesi-client/internal/model"
)

func TestFileStore_SaveLoadClear(t *testing.T) {
	s := NewFileStore(t.TempDir())

	u, err := s.Load()
	if err != nil || u != nil {
		t.Fatalf("empty slot: u=%+v err=%v", u, err)
	}

	want := &model.User{ID: "u1", Name: "Ana", Email: "a@x.com", WhatsApp: "+550000"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || *got != *want {
		t.Fatalf("Load mismatch: %+v", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if u, _ := s.Load(); u != nil {
		t.Fatalf("slot not empty after Clear: %+v", u)
	}
	// clearing an already-empty slot succeeds
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear empty: %v", err)
	}
}

func TestFileStore_MalformedFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	p := filepath.Join(dir, userFile)

	if err := os.WriteFile(p, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	u, err := s.Load()
	if err != nil || u != nil {
		t.Fatalf("want empty on corrupt file: u=%+v err=%v", u, err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("corrupt file not removed")
	}

	// well-formed JSON without an id is treated the same way
	if err := os.WriteFile(p, []byte(`{"name":"x"}`), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if u, _ := s.Load(); u != nil {
		t.Fatalf("want empty on record without id: %+v", u)
	}
}

func TestFileStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "genesi")
	s := NewFileStore(dir)
	if err := s.Save(&model.User{ID: "u2", Name: "Bia"}); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if u, err := s.Load(); err != nil || u == nil || u.ID != "u2" {
		t.Fatalf("round trip: u=%+v err=%v", u, err)
	}
}
