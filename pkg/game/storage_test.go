package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func exerciseStorage(t *testing.T, storage Storage) {
	t.Helper()

	if storage.Exists("save_alice.sav") {
		t.Fatal("fresh storage should be empty")
	}
	if _, err := storage.Load("save_alice.sav"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) = %v, want ErrNotFound", err)
	}

	payload := []byte{0x01, 0x02, 0x03}
	if err := storage.Save("save_alice.sav", payload); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !storage.Exists("save_alice.sav") {
		t.Fatal("Exists() = false after Save")
	}
	got, err := storage.Load("save_alice.sav")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Load() = %v, want %v", got, payload)
	}

	if err := storage.Delete("save_alice.sav"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if storage.Exists("save_alice.sav") {
		t.Error("Exists() = true after Delete")
	}
	if err := storage.Delete("save_alice.sav"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestDirStorage(t *testing.T) {
	exerciseStorage(t, newTestDirStorage(t))
}

func TestDirStorageRejectsPathKeys(t *testing.T) {
	storage := newTestDirStorage(t)
	if err := storage.Save("../escape.sav", []byte("x")); err == nil {
		t.Error("Save with path separator should fail")
	}
}

func TestMemStorage(t *testing.T) {
	exerciseStorage(t, NewMemStorage())
}

func TestGdataStorage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: "roguedash_storage_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	exerciseStorage(t, NewGdataStorage(manager, "accounts"))
}
