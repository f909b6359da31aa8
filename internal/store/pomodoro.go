package store

import "time"

func defaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:       25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
		LongBreakInterval:  4,
		AutoStartBreaks:    true,
		SoundEnabled:       true,
	}
}

func (s *Store) emptyPomodoroData(date string) PomodoroData {
	return PomodoroData{
		Date:       date,
		LastUpdate: s.now().Format(time.RFC3339),
	}
}

func resetPomodoroData(d PomodoroData, now time.Time) PomodoroData {
	d.Sessions = nil
	d.CompletedPomodoros = 0
	d.TotalWorkTime = 0
	d.TotalBreakTime = 0
	d.LastUpdate = now.Format(time.RFC3339)
	return d
}

// CurrentPomodoroData returns today's pomodoro tally, materializing or
// rolling it over as needed.
func (s *Store) CurrentPomodoroData() PomodoroData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPomodoroLocked()
}

func (s *Store) currentPomodoroLocked() PomodoroData {
	data, changed := currentDated(s.state.PomodoroData, s.now(), s.emptyPomodoroData,
		func(d PomodoroData) string { return d.LastUpdate }, resetPomodoroData)
	if changed {
		s.persist()
	}
	return data
}

func (s *Store) GetPomodoroData(date string) (PomodoroData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.PomodoroData[date]
	return d, ok
}

// RecordPomodoroSession appends a finished phase to today's tally. A
// completed work phase counts toward completedPomodoros and work time;
// break phases accumulate break time.
func (s *Store) RecordPomodoroSession(sessionType string, durationMins int, completed, isCycle bool, startTime, endTime time.Time) PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentPomodoroLocked()
	session := PomodoroSession{
		ID:          newID(),
		Type:        sessionType,
		Duration:    durationMins,
		IsCompleted: completed,
		StartTime:   &startTime,
		EndTime:     &endTime,
		CreatedAt:   s.now(),
		IsCycle:     isCycle,
	}
	d.Sessions = append(d.Sessions, session)
	if completed {
		if sessionType == "work" {
			d.CompletedPomodoros++
			d.TotalWorkTime += durationMins
		} else {
			d.TotalBreakTime += durationMins
		}
	}
	d.LastUpdate = s.now().Format(time.RFC3339)
	s.state.PomodoroData[d.Date] = d
	s.persist()
	return session
}

func (s *Store) PomodoroSettings() PomodoroSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PomodoroSettings
}

func (s *Store) UpdatePomodoroSettings(mutate func(*PomodoroSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.state.PomodoroSettings)
	s.state.PomodoroSettings.LastUpdate = s.now().Format(time.RFC3339)
	s.persist()
}
