package store

import "time"

// dayKey returns the local calendar date key (YYYY-MM-DD) for t.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// staleDay reports whether lastUpdate's calendar day is strictly before
// now's calendar day, both in local time. Empty or unparseable stamps
// are not stale; collections that want "missing means stale" check for
// the empty string themselves.
func staleDay(lastUpdate string, now time.Time) bool {
	if lastUpdate == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, lastUpdate)
	if err != nil {
		return false
	}
	return startOfDay(t.In(now.Location())).Before(startOfDay(now))
}

// currentDated is the shared accessor for every date-keyed collection:
// look up today's record, synthesize a fresh one when absent, or apply
// the collection's rollover reset when the stored record is from an
// earlier day. The bool result reports whether m was modified, so the
// caller can persist. Rollover is idempotent because reset stamps
// lastUpdate with now.
func currentDated[T any](
	m map[string]T,
	now time.Time,
	fresh func(date string) T,
	lastUpdate func(T) string,
	reset func(T, time.Time) T,
) (T, bool) {
	key := dayKey(now)
	rec, ok := m[key]
	if !ok {
		rec = fresh(key)
		m[key] = rec
		return rec, true
	}
	if reset != nil && staleDay(lastUpdate(rec), now) {
		rec = reset(rec, now)
		m[key] = rec
		return rec, true
	}
	return rec, false
}
