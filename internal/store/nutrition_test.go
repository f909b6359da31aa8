package store

import (
	"testing"
	"time"
)

func TestCurrentNutritionDataDefaults(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	d := s.CurrentNutritionData()
	if d.Date != "2026-08-27" {
		t.Fatalf("unexpected date: %q", d.Date)
	}
	if d.WaterTarget != 2000 {
		t.Fatalf("expected default water target 2000, got %d", d.WaterTarget)
	}
	if len(d.Meals) != 5 {
		t.Fatalf("expected 5 meal slots, got %d", len(d.Meals))
	}
	if d.Meals[0].ID != "1" || d.Meals[0].Name != "Sabah Kahvaltısı" || d.Meals[0].Time != "08:00" {
		t.Fatalf("unexpected first meal: %+v", d.Meals[0])
	}
	if d.Meals[4].Name != "Akşam Yemeği" || d.Meals[4].Time != "19:00" {
		t.Fatalf("unexpected last meal: %+v", d.Meals[4])
	}
}

func TestWaterIntake(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.AddWater(250)
	s.AddWater(500)
	if got := s.CurrentNutritionData().WaterIntake; got != 750 {
		t.Fatalf("expected 750, got %d", got)
	}

	s.RemoveWater(200)
	if got := s.CurrentNutritionData().WaterIntake; got != 550 {
		t.Fatalf("expected 550, got %d", got)
	}

	// Intake floors at zero.
	s.RemoveWater(10000)
	if got := s.CurrentNutritionData().WaterIntake; got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestSetWaterTargetUpdatesDayAndSettings(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.SetWaterTarget(3000)
	if got := s.CurrentNutritionData().WaterTarget; got != 3000 {
		t.Fatalf("day record target not updated: %d", got)
	}
	if got := s.NutritionSettings().WaterTarget; got != 3000 {
		t.Fatalf("durable setting not updated: %d", got)
	}

	// The new day inherits the durable target.
	setClock(s, day1.AddDate(0, 0, 1))
	if got := s.CurrentNutritionData().WaterTarget; got != 3000 {
		t.Fatalf("new day should inherit target 3000, got %d", got)
	}
}

func TestAddCaloriesAndToggleMeal(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.AddCalories(450)
	s.AddCalories(300)
	if got := s.CurrentNutritionData().DailyCalories; got != 750 {
		t.Fatalf("expected 750 calories, got %d", got)
	}

	s.ToggleMeal("3")
	d := s.CurrentNutritionData()
	if !d.Meals[2].IsCompleted || d.Meals[2].CompletedAt == nil {
		t.Fatalf("lunch not marked: %+v", d.Meals[2])
	}
	if d.Meals[0].IsCompleted || d.Meals[4].IsCompleted {
		t.Fatal("sibling meals must be untouched")
	}

	s.ToggleMeal("3")
	d = s.CurrentNutritionData()
	if d.Meals[2].IsCompleted || d.Meals[2].CompletedAt != nil {
		t.Fatalf("lunch not unmarked: %+v", d.Meals[2])
	}

	s.ToggleMeal("99") // unknown meal
	if len(s.CurrentNutritionData().Meals) != 5 {
		t.Fatal("unknown meal id must be a no-op")
	}
}

// A record stored under today's key but stamped yesterday is rolled
// over in place: counters and flags clear, target and schedule stay.
func TestNutritionRolloverKeepsConfiguration(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	key := dayKey(day1)
	stale := s.CurrentNutritionData()
	stale.WaterIntake = 1500
	stale.DailyCalories = 900
	stale.WaterTarget = 2500
	stale.Meals[0].IsCompleted = true
	stale.LastUpdate = day1.AddDate(0, 0, -1).Format(time.RFC3339)
	s.state.NutritionData[key] = stale

	d := s.CurrentNutritionData()
	if d.WaterIntake != 0 || d.DailyCalories != 0 {
		t.Fatalf("counters survived rollover: %+v", d)
	}
	if d.Meals[0].IsCompleted {
		t.Fatal("meal flag survived rollover")
	}
	if d.WaterTarget != 2500 {
		t.Fatalf("target must survive rollover, got %d", d.WaterTarget)
	}
	if d.Meals[0].Time != "08:00" || len(d.Meals) != 5 {
		t.Fatalf("meal schedule must survive rollover: %+v", d.Meals)
	}
}

func TestResetDailyNutrition(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.AddWater(500)
	s.SetWaterTarget(3000)
	s.ToggleMeal("1")

	s.ResetDailyNutrition()
	d := s.CurrentNutritionData()
	if d.WaterIntake != 0 || d.Meals[0].IsCompleted {
		t.Fatalf("reset did not clear the day: %+v", d)
	}
	// Reset rebuilds from settings, so the saved target applies.
	if d.WaterTarget != 3000 {
		t.Fatalf("reset should rebuild from settings, got target %d", d.WaterTarget)
	}
}

func TestUpdateNutritionSettings(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	settings := s.NutritionSettings()
	settings.MealTimes.Breakfast = "07:30"
	s.UpdateNutritionSettings(settings)

	if got := s.NutritionSettings().MealTimes.Breakfast; got != "07:30" {
		t.Fatalf("settings not updated: %q", got)
	}
	// New days pick up the new schedule.
	setClock(s, day1.AddDate(0, 0, 1))
	if got := s.CurrentNutritionData().Meals[0].Time; got != "07:30" {
		t.Fatalf("new day should use the new schedule, got %q", got)
	}
}
