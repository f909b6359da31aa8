package store

import "time"

func (s *Store) AddSpecialDay(title string, date time.Time, notes string) SpecialDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	d := SpecialDay{ID: newID(), Title: title, Date: date, Notes: notes, CreatedAt: now, UpdatedAt: now}
	s.state.SpecialDays = append(s.state.SpecialDays, d)
	s.persist()
	return d
}

func (s *Store) UpdateSpecialDay(specialDayID string, mutate func(*SpecialDay)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.SpecialDays {
		if s.state.SpecialDays[i].ID == specialDayID {
			mutate(&s.state.SpecialDays[i])
			s.state.SpecialDays[i].UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteSpecialDay(specialDayID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.SpecialDays {
		if s.state.SpecialDays[i].ID == specialDayID {
			s.state.SpecialDays = append(s.state.SpecialDays[:i], s.state.SpecialDays[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetSpecialDay(specialDayID string) (SpecialDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.state.SpecialDays {
		if d.ID == specialDayID {
			return d, true
		}
	}
	return SpecialDay{}, false
}

func (s *Store) ListSpecialDays() []SpecialDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SpecialDay, len(s.state.SpecialDays))
	copy(out, s.state.SpecialDays)
	return out
}
