package store

import "testing"

func TestMedicationCatalogCRUD(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	m := s.AddMedication("Concerta", "36mg", "morning", "")
	if m.ID == "" || m.CreatedAt.IsZero() {
		t.Fatalf("medication incomplete: %+v", m)
	}

	s.UpdateMedication(m.ID, func(med *Medication) { med.Dosage = "54mg" })
	got, ok := s.GetMedication(m.ID)
	if !ok || got.Dosage != "54mg" {
		t.Fatalf("update not applied: %+v", got)
	}

	s.DeleteMedication(m.ID)
	if _, ok := s.GetMedication(m.ID); ok {
		t.Fatal("medication not deleted")
	}
	if len(s.ListMedications()) != 0 {
		t.Fatal("list should be empty")
	}
}

func TestSupplementAndAppointmentCRUD(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	sp := s.AddSupplement("Omega 3", "1000mg", "noon", "")
	s.UpdateSupplement(sp.ID, func(x *Supplement) { x.Time = "evening" })
	if got, _ := s.GetSupplement(sp.ID); got.Time != "evening" {
		t.Fatalf("supplement update lost: %+v", got)
	}
	s.DeleteSupplement(sp.ID)
	if len(s.ListSupplements()) != 0 {
		t.Fatal("supplement not deleted")
	}

	a := s.AddAppointment("Dr. Yılmaz", "Nöroloji", "2026-09-15", "14:30", "kontrol")
	s.UpdateAppointment(a.ID, func(x *DoctorAppointment) { x.Time = "15:00" })
	if got, _ := s.GetAppointment(a.ID); got.Time != "15:00" {
		t.Fatalf("appointment update lost: %+v", got)
	}
	s.DeleteAppointment(a.ID)
	if len(s.ListAppointments()) != 0 {
		t.Fatal("appointment not deleted")
	}
}

func TestHealthRoutineToggle(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	r := s.AddRoutine("Tansiyon ölç")
	s.ToggleRoutineCompletion(r.ID)
	got, _ := s.GetRoutine(r.ID)
	if !got.Completed || got.CompletedAt == nil {
		t.Fatalf("toggle on not stamped: %+v", got)
	}
	s.ToggleRoutineCompletion(r.ID)
	got, _ = s.GetRoutine(r.ID)
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("toggle off not cleared: %+v", got)
	}
}

// The daily checklist snapshots the catalog at first access. Items
// added afterwards stay out of today's record until toggled.
func TestDailyHealthSnapshot(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	m1 := s.AddMedication("Concerta", "36mg", "morning", "")
	sp1 := s.AddSupplement("D Vitamini", "1000iu", "morning", "")

	d := s.CurrentDailyHealthData()
	if len(d.Medications) != 1 || d.Medications[0].MedicationID != m1.ID {
		t.Fatalf("medication snapshot wrong: %+v", d.Medications)
	}
	if len(d.Supplements) != 1 || d.Supplements[0].SupplementID != sp1.ID {
		t.Fatalf("supplement snapshot wrong: %+v", d.Supplements)
	}
	if d.Medications[0].Name != "Concerta" || d.Medications[0].Date != "2026-08-27" {
		t.Fatalf("snapshot entry incomplete: %+v", d.Medications[0])
	}

	// Catalog growth after the snapshot does not rewrite the day.
	s.AddMedication("Ritalin", "10mg", "noon", "")
	if got := s.CurrentDailyHealthData(); len(got.Medications) != 1 {
		t.Fatalf("snapshot must not grow: %+v", got.Medications)
	}
}

func TestToggleDailyMedication(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	m := s.AddMedication("Concerta", "36mg", "morning", "")
	s.CurrentDailyHealthData() // materialize snapshot

	s.ToggleDailyMedication(m.ID)
	d := s.CurrentDailyHealthData()
	if !d.Medications[0].IsCompleted || d.Medications[0].CompletedAt == nil {
		t.Fatalf("toggle on not applied: %+v", d.Medications[0])
	}

	s.ToggleDailyMedication(m.ID)
	d = s.CurrentDailyHealthData()
	if d.Medications[0].IsCompleted || d.Medications[0].CompletedAt != nil {
		t.Fatalf("toggle off not applied: %+v", d.Medications[0])
	}

	s.ToggleDailyMedication("missing")
	if len(s.CurrentDailyHealthData().Medications) != 1 {
		t.Fatal("unknown catalog id must be a no-op")
	}
}

// A catalog item added after today's snapshot joins the checklist
// lazily, already completed, on its first toggle.
func TestToggleLazyInsertsLateCatalogItem(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	s.CurrentDailyHealthData() // empty snapshot
	m := s.AddMedication("Ritalin", "10mg", "noon", "")
	sp := s.AddSupplement("Magnezyum", "200mg", "evening", "")

	s.ToggleDailyMedication(m.ID)
	s.ToggleDailySupplement(sp.ID)

	d := s.CurrentDailyHealthData()
	if len(d.Medications) != 1 || !d.Medications[0].IsCompleted {
		t.Fatalf("late medication not inserted completed: %+v", d.Medications)
	}
	if d.Medications[0].MedicationID != m.ID || d.Medications[0].Name != "Ritalin" {
		t.Fatalf("inserted entry wrong: %+v", d.Medications[0])
	}
	if len(d.Supplements) != 1 || !d.Supplements[0].IsCompleted {
		t.Fatalf("late supplement not inserted completed: %+v", d.Supplements)
	}
}

func TestDailyHealthNewDayResnapshots(t *testing.T) {
	s := newTestStore(t)
	setClock(s, day1)

	m := s.AddMedication("Concerta", "36mg", "morning", "")
	s.ToggleDailyMedication(m.ID)
	s.AddMedication("Ritalin", "10mg", "noon", "")

	setClock(s, day1.AddDate(0, 0, 1))
	d := s.CurrentDailyHealthData()
	// The new day snapshots the grown catalog, all incomplete.
	if len(d.Medications) != 2 {
		t.Fatalf("new day should snapshot both medications: %+v", d.Medications)
	}
	for _, dm := range d.Medications {
		if dm.IsCompleted {
			t.Fatalf("new day entries must start incomplete: %+v", dm)
		}
	}
}
