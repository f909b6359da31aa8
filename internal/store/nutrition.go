package store

import "time"

func defaultNutritionSettings() NutritionSettings {
	return NutritionSettings{
		WaterTarget: 2000,
		MealTimes: MealTimes{
			Breakfast:      "08:00",
			MorningSnack:   "10:30",
			Lunch:          "13:00",
			AfternoonSnack: "15:30",
			Dinner:         "19:00",
		},
	}
}

func (s *Store) emptyNutritionData(date string) NutritionData {
	mt := s.state.NutritionSettings.MealTimes
	return NutritionData{
		Date:          date,
		WaterTarget:   s.state.NutritionSettings.WaterTarget,
		Meals: []Meal{
			{ID: "1", Name: "Sabah Kahvaltısı", Time: mt.Breakfast},
			{ID: "2", Name: "Ara Öğün", Time: mt.MorningSnack},
			{ID: "3", Name: "Öğlen Yemeği", Time: mt.Lunch},
			{ID: "4", Name: "Ara Öğün", Time: mt.AfternoonSnack},
			{ID: "5", Name: "Akşam Yemeği", Time: mt.Dinner},
		},
		LastUpdate: s.now().Format(time.RFC3339),
	}
}

// resetNutritionData clears intake counters and meal flags for a new
// day while keeping the water target and the meal schedule.
func resetNutritionData(d NutritionData, now time.Time) NutritionData {
	d.WaterIntake = 0
	d.DailyCalories = 0
	meals := make([]Meal, len(d.Meals))
	for i, m := range d.Meals {
		m.IsCompleted = false
		m.CompletedAt = nil
		meals[i] = m
	}
	d.Meals = meals
	d.LastUpdate = now.Format(time.RFC3339)
	return d
}

// CurrentNutritionData returns today's nutrition record, materializing
// or rolling it over as needed.
func (s *Store) CurrentNutritionData() NutritionData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentNutritionLocked()
}

func (s *Store) currentNutritionLocked() NutritionData {
	data, changed := currentDated(s.state.NutritionData, s.now(), s.emptyNutritionData,
		func(d NutritionData) string { return d.LastUpdate }, resetNutritionData)
	if changed {
		s.persist()
	}
	return data
}

func (s *Store) GetNutritionData(date string) (NutritionData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.NutritionData[date]
	return d, ok
}

func (s *Store) commitNutrition(d NutritionData) {
	d.LastUpdate = s.now().Format(time.RFC3339)
	s.state.NutritionData[d.Date] = d
	s.persist()
}

func (s *Store) AddWater(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentNutritionLocked()
	d.WaterIntake += amount
	s.commitNutrition(d)
}

func (s *Store) RemoveWater(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentNutritionLocked()
	d.WaterIntake -= amount
	if d.WaterIntake < 0 {
		d.WaterIntake = 0
	}
	s.commitNutrition(d)
}

// SetWaterTarget updates both today's record and the durable setting.
func (s *Store) SetWaterTarget(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentNutritionLocked()
	d.WaterTarget = target
	s.state.NutritionSettings.WaterTarget = target
	s.commitNutrition(d)
}

func (s *Store) AddCalories(calories int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentNutritionLocked()
	d.DailyCalories += calories
	s.commitNutrition(d)
}

// ToggleMeal flips the matching meal inside today's record, keeping
// order and siblings intact.
func (s *Store) ToggleMeal(mealID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentNutritionLocked()
	for i := range d.Meals {
		if d.Meals[i].ID == mealID {
			m := &d.Meals[i]
			m.IsCompleted = !m.IsCompleted
			if m.IsCompleted {
				now := s.now()
				m.CompletedAt = &now
			} else {
				m.CompletedAt = nil
			}
			s.commitNutrition(d)
			return
		}
	}
}

// ResetDailyNutrition replaces today's record with a fresh default one.
func (s *Store) ResetDailyNutrition() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dayKey(s.now())
	s.state.NutritionData[key] = s.emptyNutritionData(key)
	s.persist()
}

func (s *Store) NutritionSettings() NutritionSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.NutritionSettings
}

func (s *Store) UpdateNutritionSettings(settings NutritionSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.NutritionSettings = settings
	s.persist()
}
