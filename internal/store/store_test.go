package store

import (
	"testing"
	"time"

	"github.com/selo-ai/mood-app/internal/kvstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := kvstore.NewMemory()
	if err != nil {
		t.Fatalf("new memory kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	s, err := Open(kv)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

// setClock pins the store's clock so day boundaries are deterministic.
func setClock(s *Store, at time.Time) {
	s.now = func() time.Time { return at }
}

// ============================================================
// Open and defaults
// ============================================================

func TestOpenEmptyStartsFromDefaults(t *testing.T) {
	s := newTestStore(t)

	cats := s.ListCategories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 default categories, got %d", len(cats))
	}
	if cats[0].ID != "daily-routines" || cats[0].Name != "Günlük Rutinler" {
		t.Fatalf("unexpected first category: %+v", cats[0])
	}

	mods := s.ListModules()
	if len(mods) != 10 {
		t.Fatalf("expected 10 modules, got %d", len(mods))
	}
	if s.GetUser() != nil {
		t.Fatal("expected no user on an empty store")
	}
}

func TestReopenRoundTrip(t *testing.T) {
	kv, err := kvstore.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	s, err := Open(kv)
	if err != nil {
		t.Fatal(err)
	}
	task := s.AddTask("Raporu bitir", "", "work", "high", "daily")
	s.SetUser(User{ID: "u1", Name: "Selo"})

	// A second Open over the same kv sees everything the first wrote.
	s2, err := Open(kv)
	if err != nil {
		t.Fatal(err)
	}
	rec := s2.CurrentDailyRecord()
	if len(rec.Tasks) != 1 || rec.Tasks[0].ID != task.ID {
		t.Fatalf("task did not survive reopen: %+v", rec.Tasks)
	}
	if rec.Tasks[0].CreatedAt.IsZero() {
		t.Fatal("createdAt lost in round trip")
	}
	u := s2.GetUser()
	if u == nil || u.Name != "Selo" {
		t.Fatalf("user did not survive reopen: %+v", u)
	}
}

func TestDecodeStateDegradesBadDates(t *testing.T) {
	blob := []byte(`{
		"dailyRecords": {
			"2026-08-27": {
				"date": "2026-08-27",
				"tasks": [{"id": "t1", "title": "x", "completed": true, "createdAt": "garbage", "completedAt": "also-garbage"}],
				"mistakes": [{"id": "m1", "type": "other", "severity": 1, "timestamp": "2026-08-27T10:00:00Z"}]
			}
		},
		"notes": [{"id": "n1", "type": "text", "title": "ok", "createdAt": "2026-08-27T09:00:00Z", "updatedAt": 12345}]
	}`)

	state, err := decodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec, ok := state.DailyRecords["2026-08-27"]
	if !ok {
		t.Fatal("day key lost")
	}
	if rec.Date != "2026-08-27" {
		t.Fatalf("day-key date string mangled: %q", rec.Date)
	}
	task := rec.Tasks[0]
	if !task.CreatedAt.IsZero() {
		t.Fatalf("bad createdAt should decode to zero, got %v", task.CreatedAt)
	}
	if task.CompletedAt != nil {
		t.Fatal("bad completedAt should decode to nil")
	}
	if !task.Completed {
		t.Fatal("unrelated fields must survive the date walk")
	}
	if rec.Mistakes[0].Timestamp.IsZero() {
		t.Fatal("valid timestamp should survive")
	}
	if state.Notes[0].CreatedAt.IsZero() {
		t.Fatal("valid createdAt should survive")
	}
	if !state.Notes[0].UpdatedAt.IsZero() {
		t.Fatal("non-string date should decode to zero")
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	if _, err := decodeState([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed blob")
	}
}

func TestEnsureMapsBackfillsOldBlobs(t *testing.T) {
	kv, err := kvstore.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	// A blob from before several collections existed.
	if err := kv.Put(StateKey, []byte(`{"notes": []}`)); err != nil {
		t.Fatal(err)
	}
	s, err := Open(kv)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.ListCategories()) != 6 {
		t.Fatal("missing categories not backfilled")
	}
	if len(s.ListModules()) != 10 {
		t.Fatal("missing modules not backfilled")
	}
	if got := s.NutritionSettings().WaterTarget; got != 2000 {
		t.Fatalf("missing nutrition settings not backfilled: %d", got)
	}
	// Date-keyed maps must be usable immediately.
	if s.CurrentDailyRecord().Date == "" {
		t.Fatal("daily records map unusable")
	}
}

// ============================================================
// User and categories
// ============================================================

func TestSetAndGetUser(t *testing.T) {
	s := newTestStore(t)
	s.SetUser(User{ID: "u1", Name: "Selo", Preferences: UserPreferences{Theme: "dark"}})

	u := s.GetUser()
	if u == nil || u.Preferences.Theme != "dark" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// The returned pointer is a copy; mutating it must not leak in.
	u.Name = "mutated"
	if s.GetUser().Name != "Selo" {
		t.Fatal("GetUser leaked internal state")
	}
}

func TestAddRemoveCategory(t *testing.T) {
	s := newTestStore(t)
	s.AddCategory(Category{ID: "sport", Name: "Spor", Order: 7})
	if len(s.ListCategories()) != 7 {
		t.Fatal("category not added")
	}
	s.RemoveCategory("sport")
	if len(s.ListCategories()) != 6 {
		t.Fatal("category not removed")
	}
	// Unknown id is a no-op.
	s.RemoveCategory("nope")
	if len(s.ListCategories()) != 6 {
		t.Fatal("unknown id should not change categories")
	}
}

func TestReorderCategories(t *testing.T) {
	s := newTestStore(t)
	cats := s.ListCategories()
	reversed := make([]Category, 0, len(cats))
	for i := len(cats) - 1; i >= 0; i-- {
		reversed = append(reversed, cats[i])
	}
	s.ReorderCategories(reversed)
	if got := s.ListCategories(); got[0].ID != cats[len(cats)-1].ID {
		t.Fatalf("reorder not applied, first is %q", got[0].ID)
	}
}
