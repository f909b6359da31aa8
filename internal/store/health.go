package store

import "time"

// ============================================================
// Medication catalog
// ============================================================

func (s *Store) AddMedication(name, dosage, timeOfDay, notes string) Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Medication{ID: newID(), Name: name, Dosage: dosage, Time: timeOfDay, Notes: notes, CreatedAt: s.now()}
	s.state.Medications = append(s.state.Medications, m)
	s.persist()
	return m
}

func (s *Store) UpdateMedication(medicationID string, mutate func(*Medication)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Medications {
		if s.state.Medications[i].ID == medicationID {
			mutate(&s.state.Medications[i])
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteMedication(medicationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Medications {
		if s.state.Medications[i].ID == medicationID {
			s.state.Medications = append(s.state.Medications[:i], s.state.Medications[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetMedication(medicationID string) (Medication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.state.Medications {
		if m.ID == medicationID {
			return m, true
		}
	}
	return Medication{}, false
}

func (s *Store) ListMedications() []Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Medication, len(s.state.Medications))
	copy(out, s.state.Medications)
	return out
}

// ============================================================
// Supplement catalog
// ============================================================

func (s *Store) AddSupplement(name, dosage, timeOfDay, notes string) Supplement {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := Supplement{ID: newID(), Name: name, Dosage: dosage, Time: timeOfDay, Notes: notes, CreatedAt: s.now()}
	s.state.Supplements = append(s.state.Supplements, sp)
	s.persist()
	return sp
}

func (s *Store) UpdateSupplement(supplementID string, mutate func(*Supplement)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Supplements {
		if s.state.Supplements[i].ID == supplementID {
			mutate(&s.state.Supplements[i])
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteSupplement(supplementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Supplements {
		if s.state.Supplements[i].ID == supplementID {
			s.state.Supplements = append(s.state.Supplements[:i], s.state.Supplements[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetSupplement(supplementID string) (Supplement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sp := range s.state.Supplements {
		if sp.ID == supplementID {
			return sp, true
		}
	}
	return Supplement{}, false
}

func (s *Store) ListSupplements() []Supplement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Supplement, len(s.state.Supplements))
	copy(out, s.state.Supplements)
	return out
}

// ============================================================
// Doctor appointments
// ============================================================

func (s *Store) AddAppointment(doctorName, specialty, date, timeOfDay, notes string) DoctorAppointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := DoctorAppointment{ID: newID(), DoctorName: doctorName, Specialty: specialty, Date: date, Time: timeOfDay, Notes: notes, CreatedAt: s.now()}
	s.state.Appointments = append(s.state.Appointments, a)
	s.persist()
	return a
}

func (s *Store) UpdateAppointment(appointmentID string, mutate func(*DoctorAppointment)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Appointments {
		if s.state.Appointments[i].ID == appointmentID {
			mutate(&s.state.Appointments[i])
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteAppointment(appointmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Appointments {
		if s.state.Appointments[i].ID == appointmentID {
			s.state.Appointments = append(s.state.Appointments[:i], s.state.Appointments[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetAppointment(appointmentID string) (DoctorAppointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.state.Appointments {
		if a.ID == appointmentID {
			return a, true
		}
	}
	return DoctorAppointment{}, false
}

func (s *Store) ListAppointments() []DoctorAppointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DoctorAppointment, len(s.state.Appointments))
	copy(out, s.state.Appointments)
	return out
}

// ============================================================
// Health routines (flat, no rollover)
// ============================================================

func (s *Store) AddRoutine(title string) Routine {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Routine{ID: newID(), Title: title, CreatedAt: s.now()}
	s.state.Routines = append(s.state.Routines, r)
	s.persist()
	return r
}

func (s *Store) UpdateRoutine(routineID string, mutate func(*Routine)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Routines {
		if s.state.Routines[i].ID == routineID {
			mutate(&s.state.Routines[i])
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteRoutine(routineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Routines {
		if s.state.Routines[i].ID == routineID {
			s.state.Routines = append(s.state.Routines[:i], s.state.Routines[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) ToggleRoutineCompletion(routineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Routines {
		if s.state.Routines[i].ID == routineID {
			r := &s.state.Routines[i]
			r.Completed = !r.Completed
			if r.Completed {
				now := s.now()
				r.CompletedAt = &now
			} else {
				r.CompletedAt = nil
			}
			s.persist()
			return
		}
	}
}

func (s *Store) GetRoutine(routineID string) (Routine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.state.Routines {
		if r.ID == routineID {
			return r, true
		}
	}
	return Routine{}, false
}

func (s *Store) ListRoutines() []Routine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Routine, len(s.state.Routines))
	copy(out, s.state.Routines)
	return out
}

// ============================================================
// Daily health checklist
// ============================================================

// emptyDailyHealthData snapshots the medication and supplement catalogs
// as they exist right now. Catalog items added later in the day do not
// join this record until a new day, or lazily on first toggle.
func (s *Store) emptyDailyHealthData(date string) DailyHealthData {
	meds := make([]DailyMedication, 0, len(s.state.Medications))
	for _, m := range s.state.Medications {
		meds = append(meds, DailyMedication{
			ID:           newID(),
			MedicationID: m.ID,
			Name:         m.Name,
			Date:         date,
		})
	}
	supps := make([]DailySupplement, 0, len(s.state.Supplements))
	for _, sp := range s.state.Supplements {
		supps = append(supps, DailySupplement{
			ID:           newID(),
			SupplementID: sp.ID,
			Name:         sp.Name,
			Date:         date,
		})
	}
	return DailyHealthData{
		Date:        date,
		Medications: meds,
		Supplements: supps,
		LastUpdate:  s.now().Format(time.RFC3339),
	}
}

func resetDailyHealthData(d DailyHealthData, now time.Time) DailyHealthData {
	meds := make([]DailyMedication, len(d.Medications))
	for i, m := range d.Medications {
		m.IsCompleted = false
		m.CompletedAt = nil
		meds[i] = m
	}
	supps := make([]DailySupplement, len(d.Supplements))
	for i, sp := range d.Supplements {
		sp.IsCompleted = false
		sp.CompletedAt = nil
		supps[i] = sp
	}
	d.Medications = meds
	d.Supplements = supps
	d.LastUpdate = now.Format(time.RFC3339)
	return d
}

func (s *Store) CurrentDailyHealthData() DailyHealthData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDailyHealthLocked()
}

func (s *Store) currentDailyHealthLocked() DailyHealthData {
	data, changed := currentDated(s.state.DailyHealthData, s.now(), s.emptyDailyHealthData,
		func(d DailyHealthData) string { return d.LastUpdate }, resetDailyHealthData)
	if changed {
		s.persist()
	}
	return data
}

func (s *Store) GetDailyHealthData(date string) (DailyHealthData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.DailyHealthData[date]
	return d, ok
}

func (s *Store) commitDailyHealth(d DailyHealthData) {
	d.LastUpdate = s.now().Format(time.RFC3339)
	s.state.DailyHealthData[d.Date] = d
	s.persist()
}

// ToggleDailyMedication flips the checklist entry for a catalog
// medication. A catalog item missing from today's snapshot (added after
// the record materialized) is inserted completed on first toggle.
func (s *Store) ToggleDailyMedication(medicationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentDailyHealthLocked()
	for i := range d.Medications {
		if d.Medications[i].MedicationID == medicationID {
			m := &d.Medications[i]
			m.IsCompleted = !m.IsCompleted
			if m.IsCompleted {
				now := s.now()
				m.CompletedAt = &now
			} else {
				m.CompletedAt = nil
			}
			s.commitDailyHealth(d)
			return
		}
	}

	for _, m := range s.state.Medications {
		if m.ID == medicationID {
			now := s.now()
			d.Medications = append(d.Medications, DailyMedication{
				ID:           newID(),
				MedicationID: m.ID,
				Name:         m.Name,
				IsCompleted:  true,
				CompletedAt:  &now,
				Date:         d.Date,
			})
			s.commitDailyHealth(d)
			return
		}
	}
}

// ToggleDailySupplement mirrors ToggleDailyMedication for supplements.
func (s *Store) ToggleDailySupplement(supplementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.currentDailyHealthLocked()
	for i := range d.Supplements {
		if d.Supplements[i].SupplementID == supplementID {
			sp := &d.Supplements[i]
			sp.IsCompleted = !sp.IsCompleted
			if sp.IsCompleted {
				now := s.now()
				sp.CompletedAt = &now
			} else {
				sp.CompletedAt = nil
			}
			s.commitDailyHealth(d)
			return
		}
	}

	for _, sp := range s.state.Supplements {
		if sp.ID == supplementID {
			now := s.now()
			d.Supplements = append(d.Supplements, DailySupplement{
				ID:           newID(),
				SupplementID: sp.ID,
				Name:         sp.Name,
				IsCompleted:  true,
				CompletedAt:  &now,
				Date:         d.Date,
			})
			s.commitDailyHealth(d)
			return
		}
	}
}
