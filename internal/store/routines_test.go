package store

import (
	"testing"
	"time"
)

func TestDailyRoutineCRUD(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	r := s.AddDailyRoutine("Yatak topla", "morning", "", false, 1)
	if r.ID == "" || r.LastUpdate == "" {
		t.Fatalf("routine missing id or stamp: %+v", r)
	}

	s.UpdateDailyRoutine(r.ID, func(dr *DailyRoutine) { dr.Title = "Yatağı topla" })
	list := s.ListDailyRoutines()
	if len(list) != 1 || list[0].Title != "Yatağı topla" {
		t.Fatalf("update not applied: %+v", list)
	}

	s.UpdateDailyRoutine("missing", func(dr *DailyRoutine) { dr.Title = "boom" })
	if s.ListDailyRoutines()[0].Title != "Yatağı topla" {
		t.Fatal("unknown id must be a no-op")
	}

	s.DeleteDailyRoutine(r.ID)
	if len(s.ListDailyRoutines()) != 0 {
		t.Fatal("routine not deleted")
	}
}

func TestDailyRoutineToggle(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	r := s.AddDailyRoutine("Su iç", "morning", "", false, 1)
	s.ToggleDailyRoutineCompletion(r.ID)
	if !s.ListDailyRoutines()[0].Completed {
		t.Fatal("toggle on not applied")
	}
	s.ToggleDailyRoutineCompletion(r.ID)
	if s.ListDailyRoutines()[0].Completed {
		t.Fatal("toggle off not applied")
	}
}

// Rollover clears every completed flag on the first touch of a new day
// but keeps titles, ordering and reminder settings.
func TestDailyRoutineRollover(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	a := s.AddDailyRoutine("Sabah sporu", "morning", "", true, 1)
	b := s.AddDailyRoutine("Kitap oku", "evening", "", false, 2)
	s.ToggleDailyRoutineCompletion(a.ID)
	s.ToggleDailyRoutineCompletion(b.ID)

	setClock(s, day1.AddDate(0, 0, 1))
	list := s.ListDailyRoutines()
	for _, r := range list {
		if r.Completed {
			t.Fatalf("completed flag survived rollover: %+v", r)
		}
	}
	if list[0].Title != "Sabah sporu" || !list[0].HasReminder || list[1].Order != 2 {
		t.Fatalf("rollover must keep configuration: %+v", list)
	}

	// Second listing on the same day must not reset again.
	s.ToggleDailyRoutineCompletion(a.ID)
	if !s.ListDailyRoutines()[0].Completed {
		t.Fatal("rollover is not idempotent within a day")
	}
}

// A toggle that lands right after midnight applies to the fresh day, it
// is not swallowed by the reset.
func TestDailyRoutineToggleAfterRollover(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	r := s.AddDailyRoutine("Namaz", "morning", "", false, 1)
	s.ToggleDailyRoutineCompletion(r.ID)

	setClock(s, day1.AddDate(0, 0, 1))
	s.ToggleDailyRoutineCompletion(r.ID)
	list := s.ListDailyRoutines()
	if !list[0].Completed {
		t.Fatal("post-midnight toggle must mark the routine for the new day")
	}
	if stale := staleDay(list[0].LastUpdate, day1.AddDate(0, 0, 1)); stale {
		t.Fatal("stamp not advanced by the toggle")
	}
}

func TestStaleDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 30, 0, 0, time.Local)
	yesterday := time.Date(2026, 8, 27, 23, 59, 0, 0, time.Local)

	if !staleDay(yesterday.Format(time.RFC3339), now) {
		t.Fatal("yesterday evening must be stale after midnight")
	}
	if staleDay(now.Format(time.RFC3339), now) {
		t.Fatal("same day must not be stale")
	}
	if staleDay("", now) {
		t.Fatal("empty stamp is handled by callers, not staleDay")
	}
	if staleDay("not-a-time", now) {
		t.Fatal("unparseable stamp must not be stale")
	}
}
