package kvstore

import "testing"

func newTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestNewMemory(t *testing.T) {
	kv := newTestKV(t)

	var version int
	kv.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/mood.db"
	kv, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	kv.Close()

	// Reopen and read back
	kv2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv2.Close()
	got, err := kv2.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("unexpected value after reopen: %s", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	kv := newTestKV(t)
	got, err := kv.Get("never-written")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %q", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	kv := newTestKV(t)
	if err := kv.Put("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Put("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	kv := newTestKV(t)
	if err := kv.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}
