package store

import (
	"testing"
	"time"
)

func TestDefaultPomodoroSettings(t *testing.T) {
	s := newTestStore(t)

	cfg := s.PomodoroSettings()
	if cfg.WorkDuration != 25 || cfg.ShortBreakDuration != 5 || cfg.LongBreakDuration != 15 {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.LongBreakInterval != 4 || !cfg.AutoStartBreaks || !cfg.SoundEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AutoStartPomodoros {
		t.Fatal("auto-start pomodoros defaults off")
	}
}

func TestRecordPomodoroSessions(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	start := day1
	end := start.Add(25 * time.Minute)
	sess := s.RecordPomodoroSession("work", 25, true, false, start, end)
	if sess.ID == "" || sess.Type != "work" || !sess.IsCompleted {
		t.Fatalf("session incomplete: %+v", sess)
	}

	s.RecordPomodoroSession("shortBreak", 5, true, false, end, end.Add(5*time.Minute))
	s.RecordPomodoroSession("work", 25, false, false, end, end.Add(10*time.Minute)) // abandoned

	d := s.CurrentPomodoroData()
	if len(d.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(d.Sessions))
	}
	if d.CompletedPomodoros != 1 {
		t.Fatalf("abandoned work must not count, got %d", d.CompletedPomodoros)
	}
	if d.TotalWorkTime != 25 || d.TotalBreakTime != 5 {
		t.Fatalf("tally wrong: work=%d break=%d", d.TotalWorkTime, d.TotalBreakTime)
	}
}

func TestPomodoroNewDayStartsFresh(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)
	s.RecordPomodoroSession("work", 25, true, false, day1, day1.Add(25*time.Minute))

	setClock(s, day1.AddDate(0, 0, 1))
	d := s.CurrentPomodoroData()
	if d.CompletedPomodoros != 0 || len(d.Sessions) != 0 {
		t.Fatalf("new day must start clean: %+v", d)
	}

	old, ok := s.GetPomodoroData("2026-08-27")
	if !ok || old.CompletedPomodoros != 1 {
		t.Fatalf("yesterday's tally lost: %+v", old)
	}
}

func TestUpdatePomodoroSettings(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.UpdatePomodoroSettings(func(cfg *PomodoroSettings) {
		cfg.WorkDuration = 50
		cfg.LongBreakInterval = 2
	})
	cfg := s.PomodoroSettings()
	if cfg.WorkDuration != 50 || cfg.LongBreakInterval != 2 {
		t.Fatalf("settings not updated: %+v", cfg)
	}
	if cfg.LastUpdate == "" {
		t.Fatal("settings update must stamp lastUpdate")
	}
}
