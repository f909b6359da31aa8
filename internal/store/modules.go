package store

import "sort"

func defaultModules() []Module {
	return []Module{
		{ID: "daily-routines", Name: "daily-routines", DisplayName: "Günlük Rutinler", Icon: "🏠", Color: "#4CAF50", IsDefault: true, IsEnabled: true, Order: 1},
		{ID: "tasks", Name: "tasks", DisplayName: "Görevler", Icon: "📋", Color: "#2196F3", IsDefault: true, IsEnabled: true, Order: 2},
		{ID: "medications", Name: "medications", DisplayName: "İlaçlar / Takviyeler", Icon: "💊", Color: "#FF9800", IsDefault: true, IsEnabled: true, Order: 3},
		{ID: "notes", Name: "notes", DisplayName: "Notlar", Icon: "📝", Color: "#9C27B0", IsDefault: true, IsEnabled: true, Order: 4},
		{ID: "nutrition", Name: "nutrition", DisplayName: "Beslenme", Icon: "🍎", Color: "#4CAF50", IsDefault: true, IsEnabled: true, Order: 5},
		{ID: "reading", Name: "reading", DisplayName: "Kitap Oku", Icon: "📚", Color: "#795548", IsDefault: true, IsEnabled: true, Order: 6},
		{ID: "prayer", Name: "prayer", DisplayName: "İbadet", Icon: "🕌", Color: "#607D8B", Order: 7},
		{ID: "shopping", Name: "shopping", DisplayName: "Alışveriş Listesi", Icon: "🛒", Color: "#E91E63", Order: 8},
		{ID: "pomodoro", Name: "pomodoro", DisplayName: "Pomodoro", Icon: "🍅", Color: "#FF6B6B", Order: 9},
		{ID: "special-days", Name: "special-days", DisplayName: "Özel Günler", Icon: "🎉", Color: "#FFC107", Order: 10},
	}
}

// ToggleModule flips a module tile's enabled flag. Module data is never
// touched; a disabled module keeps everything it recorded.
func (s *Store) ToggleModule(moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Modules {
		if s.state.Modules[i].ID == moduleID {
			s.state.Modules[i].IsEnabled = !s.state.Modules[i].IsEnabled
			s.persist()
			return
		}
	}
}

// ReorderModules applies the given order of module ids; unknown ids are
// ignored and unmentioned modules keep their relative order at the end.
func (s *Store) ReorderModules(moduleIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rank := make(map[string]int, len(moduleIDs))
	for i, id := range moduleIDs {
		rank[id] = i + 1
	}
	next := len(moduleIDs) + 1
	for i := range s.state.Modules {
		if r, ok := rank[s.state.Modules[i].ID]; ok {
			s.state.Modules[i].Order = r
		} else {
			s.state.Modules[i].Order = next
			next++
		}
	}
	sort.SliceStable(s.state.Modules, func(i, j int) bool {
		return s.state.Modules[i].Order < s.state.Modules[j].Order
	})
	s.persist()
}

func (s *Store) ListModules() []Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Module, len(s.state.Modules))
	copy(out, s.state.Modules)
	return out
}

// EnabledModules returns the enabled tiles in display order.
func (s *Store) EnabledModules() []Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Module
	for _, m := range s.state.Modules {
		if m.IsEnabled {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
