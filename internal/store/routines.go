package store

import "time"

// Daily routines are a flat list rather than a date-keyed map; each
// routine carries its own lastUpdate and the whole list resets together
// when any routine's stamp is from an earlier day.

func (s *Store) AddDailyRoutine(title, timeCategory, notes string, hasReminder bool, order int) DailyRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := DailyRoutine{
		ID:           newID(),
		Title:        title,
		TimeCategory: timeCategory,
		HasReminder:  hasReminder,
		Notes:        notes,
		Order:        order,
		LastUpdate:   s.now().Format(time.RFC3339),
	}
	s.state.DailyRoutines = append(s.state.DailyRoutines, r)
	s.persist()
	return r
}

func (s *Store) UpdateDailyRoutine(routineID string, mutate func(*DailyRoutine)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.DailyRoutines {
		if s.state.DailyRoutines[i].ID == routineID {
			mutate(&s.state.DailyRoutines[i])
			s.state.DailyRoutines[i].LastUpdate = s.now().Format(time.RFC3339)
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteDailyRoutine(routineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.DailyRoutines {
		if s.state.DailyRoutines[i].ID == routineID {
			s.state.DailyRoutines = append(s.state.DailyRoutines[:i], s.state.DailyRoutines[i+1:]...)
			s.persist()
			return
		}
	}
}

// ListDailyRoutines applies the daily rollover before returning: when
// any routine was last touched before today, every completed flag is
// cleared while titles, ordering and reminders are kept.
func (s *Store) ListDailyRoutines() []DailyRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverDailyRoutinesLocked()

	out := make([]DailyRoutine, len(s.state.DailyRoutines))
	copy(out, s.state.DailyRoutines)
	return out
}

func (s *Store) rolloverDailyRoutinesLocked() {
	now := s.now()
	needsReset := false
	for _, r := range s.state.DailyRoutines {
		if r.LastUpdate == "" || staleDay(r.LastUpdate, now) {
			needsReset = true
			break
		}
	}
	if !needsReset {
		return
	}
	stamp := now.Format(time.RFC3339)
	for i := range s.state.DailyRoutines {
		s.state.DailyRoutines[i].Completed = false
		s.state.DailyRoutines[i].LastUpdate = stamp
	}
	s.persist()
}

// ToggleDailyRoutineCompletion rolls the list over first, then flips
// the matching routine. Unknown ids are a no-op.
func (s *Store) ToggleDailyRoutineCompletion(routineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolloverDailyRoutinesLocked()

	for i := range s.state.DailyRoutines {
		if s.state.DailyRoutines[i].ID == routineID {
			r := &s.state.DailyRoutines[i]
			r.Completed = !r.Completed
			r.LastUpdate = s.now().Format(time.RFC3339)
			s.persist()
			return
		}
	}
}
