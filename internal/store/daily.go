package store

import (
	"sort"
	"time"
)

func emptyDailyRecord(date string) DailyRecord {
	return DailyRecord{
		Date:       date,
		DailyScore: DailyScore{DailyMood: "neutral"},
	}
}

// CurrentDailyRecord returns today's record, creating it on first
// access. Each day gets its own key, so there is no reset transform.
func (s *Store) CurrentDailyRecord() DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDailyLocked()
}

func (s *Store) currentDailyLocked() DailyRecord {
	rec, changed := currentDated(s.state.DailyRecords, s.now(), emptyDailyRecord, nil, nil)
	if changed {
		s.persist()
	}
	return rec
}

// GetDailyRecord returns the record for an arbitrary date key, without
// materializing one.
func (s *Store) GetDailyRecord(date string) (DailyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.DailyRecords[date]
	return rec, ok
}

// ListDailyRecords returns every stored record sorted by date key.
// Day keys sort chronologically as plain strings.
func (s *Store) ListDailyRecords() []DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]DailyRecord, 0, len(s.state.DailyRecords))
	for _, rec := range s.state.DailyRecords {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records
}

// CurrentScore returns today's finalScore.
func (s *Store) CurrentScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDailyLocked().DailyScore.FinalScore
}

// commitDaily is the single write path for DailyRecord mutations: it
// recomputes the derived score so it can never go stale relative to the
// record's child lists, then persists. Callers hold mu.
func (s *Store) commitDaily(rec DailyRecord) {
	rec.DailyScore = CalculateDailyScore(rec.Tasks, rec.Mistakes, rec.FocusSessions, rec.MoodEntries)
	s.state.DailyRecords[rec.Date] = rec
	s.persist()
}

// ============================================================
// Tasks
// ============================================================

func (s *Store) AddTask(title, description, category, priority, duration string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	task := Task{
		ID:          newID(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Duration:    duration,
		CreatedAt:   s.now(),
	}
	rec.Tasks = append(rec.Tasks, task)
	s.commitDaily(rec)
	return task
}

// UpdateTask applies mutate to the matching task in today's record.
// Unknown ids are a silent no-op.
func (s *Store) UpdateTask(taskID string, mutate func(*Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == taskID {
			mutate(&rec.Tasks[i])
			s.commitDaily(rec)
			return
		}
	}
}

func (s *Store) DeleteTask(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == taskID {
			rec.Tasks = append(rec.Tasks[:i], rec.Tasks[i+1:]...)
			s.commitDaily(rec)
			return
		}
	}
}

// ToggleTaskCompletion flips the completed flag and sets or clears
// completedAt with it.
func (s *Store) ToggleTaskCompletion(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	for i := range rec.Tasks {
		if rec.Tasks[i].ID == taskID {
			t := &rec.Tasks[i]
			t.Completed = !t.Completed
			if t.Completed {
				now := s.now()
				t.CompletedAt = &now
			} else {
				t.CompletedAt = nil
			}
			s.commitDaily(rec)
			return
		}
	}
}

// ============================================================
// Mistakes
// ============================================================

func (s *Store) AddMistake(kind, description string, severity int) Mistake {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	m := Mistake{
		ID:          newID(),
		Type:        kind,
		Description: description,
		Severity:    severity,
		Timestamp:   s.now(),
	}
	rec.Mistakes = append(rec.Mistakes, m)
	s.commitDaily(rec)
	return m
}

func (s *Store) DeleteMistake(mistakeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	for i := range rec.Mistakes {
		if rec.Mistakes[i].ID == mistakeID {
			rec.Mistakes = append(rec.Mistakes[:i], rec.Mistakes[i+1:]...)
			s.commitDaily(rec)
			return
		}
	}
}

// ============================================================
// Mood entries
// ============================================================

func (s *Store) AddMoodEntry(score int, note string, triggers []string) MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	entry := MoodEntry{
		ID:        newID(),
		Score:     score,
		Note:      note,
		Triggers:  triggers,
		Timestamp: s.now(),
	}
	rec.MoodEntries = append(rec.MoodEntries, entry)
	s.commitDaily(rec)
	return entry
}

func (s *Store) DeleteMoodEntry(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.currentDailyLocked()
	for i := range rec.MoodEntries {
		if rec.MoodEntries[i].ID == entryID {
			rec.MoodEntries = append(rec.MoodEntries[:i], rec.MoodEntries[i+1:]...)
			s.commitDaily(rec)
			return
		}
	}
}

// ============================================================
// Focus sessions
// ============================================================

// StartFocusSession opens an in-flight session. It is transient: not
// part of the day's record or the persisted blob until ended.
func (s *Store) StartFocusSession() FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := FocusSession{
		ID:        newID(),
		StartTime: s.now(),
	}
	s.activeFocus = &session
	return session
}

// EndFocusSession completes the in-flight session into today's record
// with a floor-minutes duration. No-op when no session is active.
func (s *Store) EndFocusSession() (FocusSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeFocus == nil {
		return FocusSession{}, false
	}
	end := s.now()
	session := *s.activeFocus
	session.EndTime = &end
	mins := int(end.Sub(session.StartTime) / time.Minute)
	if mins < 0 {
		mins = 0
	}
	session.Duration = mins
	s.activeFocus = nil

	rec := s.currentDailyLocked()
	rec.FocusSessions = append(rec.FocusSessions, session)
	s.commitDaily(rec)
	return session, true
}

// ActiveFocusSession returns the in-flight session, if any.
func (s *Store) ActiveFocusSession() (FocusSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeFocus == nil {
		return FocusSession{}, false
	}
	return *s.activeFocus, true
}
