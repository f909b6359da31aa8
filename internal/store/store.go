// Package store is the single state container behind every tracking
// module. All state is kept in memory, mutated under one lock, and
// snapshotted to a single key-value blob after every mutation.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/selo-ai/mood-app/internal/kvstore"
)

// StateKey is the fixed blob key the whole state lives under.
const StateKey = "my-mood-storage"

// State is the full persisted state tree, one field per top-level
// collection. Date-scoped collections are maps keyed by YYYY-MM-DD.
type State struct {
	User              *User                      `json:"user"`
	ActiveCategories  []Category                 `json:"activeCategories"`
	DailyRecords      map[string]DailyRecord     `json:"dailyRecords"`
	DailyRoutines     []DailyRoutine             `json:"dailyRoutines"`
	NutritionData     map[string]NutritionData   `json:"nutritionData"`
	NutritionSettings NutritionSettings          `json:"nutritionSettings"`
	Notes             []Note                     `json:"notes"`
	Books             []Book                     `json:"books"`
	Medications       []Medication               `json:"medications"`
	Appointments      []DoctorAppointment        `json:"appointments"`
	Supplements       []Supplement               `json:"supplements"`
	Routines          []Routine                  `json:"routines"`
	PrayerData        map[string]PrayerData      `json:"prayerData"`
	ShoppingLists     []ShoppingList             `json:"shoppingLists"`
	SpecialDays       []SpecialDay               `json:"specialDays"`
	DailyHealthData   map[string]DailyHealthData `json:"dailyHealthData"`
	PomodoroData      map[string]PomodoroData    `json:"pomodoroData"`
	PomodoroSettings  PomodoroSettings           `json:"pomodoroSettings"`
	Modules           []Module                   `json:"modules"`
}

// Store owns State. Reads that materialize or roll over a record write
// it back immediately; every mutation ends in persist().
type Store struct {
	mu    sync.Mutex
	kv    *kvstore.KV
	state State
	dirty bool // last persist failed; retried on next mutation

	// transient, never persisted
	activeFocus *FocusSession

	now func() time.Time
}

// Open loads the persisted state from kv, reviving date fields, or
// starts from defaults when nothing has been stored yet.
func Open(kv *kvstore.KV) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}

	blob, err := kv.Get(StateKey)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if blob == nil {
		s.state = defaultState()
		return s, nil
	}

	state, err := decodeState(blob)
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	s.state = *state
	s.ensureMaps()
	return s, nil
}

func defaultState() State {
	return State{
		ActiveCategories:  defaultCategories(),
		DailyRecords:      map[string]DailyRecord{},
		NutritionData:     map[string]NutritionData{},
		NutritionSettings: defaultNutritionSettings(),
		PrayerData:        map[string]PrayerData{},
		DailyHealthData:   map[string]DailyHealthData{},
		PomodoroData:      map[string]PomodoroData{},
		PomodoroSettings:  defaultPomodoroSettings(),
		Modules:           defaultModules(),
	}
}

// ensureMaps guards against blobs written before a collection existed.
func (s *Store) ensureMaps() {
	if s.state.DailyRecords == nil {
		s.state.DailyRecords = map[string]DailyRecord{}
	}
	if s.state.NutritionData == nil {
		s.state.NutritionData = map[string]NutritionData{}
	}
	if s.state.PrayerData == nil {
		s.state.PrayerData = map[string]PrayerData{}
	}
	if s.state.DailyHealthData == nil {
		s.state.DailyHealthData = map[string]DailyHealthData{}
	}
	if s.state.PomodoroData == nil {
		s.state.PomodoroData = map[string]PomodoroData{}
	}
	if len(s.state.ActiveCategories) == 0 {
		s.state.ActiveCategories = defaultCategories()
	}
	if len(s.state.Modules) == 0 {
		s.state.Modules = defaultModules()
	}
	if s.state.NutritionSettings.WaterTarget == 0 {
		s.state.NutritionSettings = defaultNutritionSettings()
	}
	if s.state.PomodoroSettings.WorkDuration == 0 {
		s.state.PomodoroSettings = defaultPomodoroSettings()
	}
}

// persist snapshots the whole state under StateKey. Callers hold mu.
// A failed write leaves the in-memory state intact and is retried on
// the next mutation.
func (s *Store) persist() {
	blob, err := encodeState(&s.state)
	if err != nil {
		s.dirty = true
		return
	}
	if err := s.kv.Put(StateKey, blob); err != nil {
		s.dirty = true
		return
	}
	s.dirty = false
}

// Snapshot returns the encoded state blob, for export and tests.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeState(&s.state)
}

func newID() string {
	return uuid.NewString()
}

// ============================================================
// User and categories
// ============================================================

func (s *Store) SetUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &u
	s.persist()
}

func (s *Store) GetUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

func (s *Store) AddCategory(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveCategories = append(s.state.ActiveCategories, c)
	s.persist()
}

func (s *Store) RemoveCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.ActiveCategories[:0]
	for _, c := range s.state.ActiveCategories {
		if c.ID != categoryID {
			kept = append(kept, c)
		}
	}
	s.state.ActiveCategories = kept
	s.persist()
}

func (s *Store) ReorderCategories(categories []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveCategories = categories
	s.persist()
}

func (s *Store) ListCategories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Category, len(s.state.ActiveCategories))
	copy(out, s.state.ActiveCategories)
	return out
}

func defaultCategories() []Category {
	return []Category{
		{ID: "daily-routines", Name: "Günlük Rutinler", Icon: "🏠", Color: "#4CAF50", IsDefault: true, Order: 1},
		{ID: "tasks", Name: "Görevler", Icon: "📋", Color: "#2196F3", IsDefault: true, Order: 2},
		{ID: "medications", Name: "İlaçlar / Takviyeler", Icon: "💊", Color: "#FF9800", IsDefault: true, Order: 3},
		{ID: "notes", Name: "Notlar", Icon: "📝", Color: "#9C27B0", IsDefault: true, Order: 4},
		{ID: "nutrition", Name: "Beslenme", Icon: "🍎", Color: "#4CAF50", IsDefault: true, Order: 5},
		{ID: "reading", Name: "Kitap Oku", Icon: "📚", Color: "#795548", IsDefault: true, Order: 6},
	}
}
