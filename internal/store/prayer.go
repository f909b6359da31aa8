package store

import (
	"strconv"
	"time"
)

// PrayerNames are the five fixed daily prayer slots, in day order.
var PrayerNames = []string{"sabah", "öğlen", "ikindi", "akşam", "yatsı"}

func (s *Store) emptyPrayerData(date string) PrayerData {
	prayers := make([]Prayer, len(PrayerNames))
	for i, name := range PrayerNames {
		prayers[i] = Prayer{ID: strconv.Itoa(i + 1), Name: name}
	}
	return PrayerData{
		Date:              date,
		Prayers:           prayers,
		TotalPrayersCount: len(PrayerNames),
		LastUpdate:        s.now().Format(time.RFC3339),
	}
}

// resetPrayerData clears every completion flag for a new day; the five
// slots themselves stay.
func resetPrayerData(d PrayerData, now time.Time) PrayerData {
	prayers := make([]Prayer, len(d.Prayers))
	for i, p := range d.Prayers {
		p.IsCompleted = false
		p.CompletedAt = nil
		prayers[i] = p
	}
	d.Prayers = prayers
	d.QuranReading = nil
	d.IlmihalReading = nil
	d.TasbihPrayer = nil
	d.TotalPrayersCompleted = 0
	d.LastUpdate = now.Format(time.RFC3339)
	return d
}

func (s *Store) CurrentPrayerData() PrayerData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPrayerLocked()
}

func (s *Store) currentPrayerLocked() PrayerData {
	data, changed := currentDated(s.state.PrayerData, s.now(), s.emptyPrayerData,
		func(d PrayerData) string { return d.LastUpdate }, resetPrayerData)
	if changed {
		s.persist()
	}
	return data
}

func (s *Store) GetPrayerData(date string) (PrayerData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.PrayerData[date]
	return d, ok
}

func (s *Store) commitPrayer(d PrayerData) {
	total := 0
	for _, p := range d.Prayers {
		if p.IsCompleted {
			total++
		}
	}
	d.TotalPrayersCompleted = total
	d.LastUpdate = s.now().Format(time.RFC3339)
	s.state.PrayerData[d.Date] = d
	s.persist()
}

// TogglePrayer flips the named slot in today's record.
func (s *Store) TogglePrayer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentPrayerLocked()
	for i := range d.Prayers {
		if d.Prayers[i].Name == name {
			p := &d.Prayers[i]
			p.IsCompleted = !p.IsCompleted
			if p.IsCompleted {
				now := s.now()
				p.CompletedAt = &now
			} else {
				p.CompletedAt = nil
			}
			s.commitPrayer(d)
			return
		}
	}
}

func (s *Store) toggleReadingFlag(get func(*PrayerData) **ReadingFlag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentPrayerLocked()
	slot := get(&d)
	completed := *slot != nil && (*slot).IsCompleted

	flag := &ReadingFlag{ID: newID(), IsCompleted: !completed}
	if flag.IsCompleted {
		now := s.now()
		flag.CompletedAt = &now
	}
	*slot = flag
	s.commitPrayer(d)
}

func (s *Store) ToggleQuranReading() {
	s.toggleReadingFlag(func(d *PrayerData) **ReadingFlag { return &d.QuranReading })
}

func (s *Store) ToggleIlmihalReading() {
	s.toggleReadingFlag(func(d *PrayerData) **ReadingFlag { return &d.IlmihalReading })
}

func (s *Store) ToggleTasbihPrayer() {
	s.toggleReadingFlag(func(d *PrayerData) **ReadingFlag { return &d.TasbihPrayer })
}
