package store

// AddTextNote appends a text note.
func (s *Store) AddTextNote(title, content string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := Note{ID: newID(), Type: "text", Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	s.state.Notes = append(s.state.Notes, n)
	s.persist()
	return n
}

// AddAudioNote appends an audio note by recording URI and duration in
// seconds. Recording itself happens outside the store.
func (s *Store) AddAudioNote(title, audioURI string, durationSecs int) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := Note{ID: newID(), Type: "audio", Title: title, AudioURI: audioURI, AudioDuration: durationSecs, CreatedAt: now, UpdatedAt: now}
	s.state.Notes = append(s.state.Notes, n)
	s.persist()
	return n
}

func (s *Store) UpdateNote(noteID string, mutate func(*Note)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notes {
		if s.state.Notes[i].ID == noteID {
			mutate(&s.state.Notes[i])
			s.state.Notes[i].UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteNote(noteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notes {
		if s.state.Notes[i].ID == noteID {
			s.state.Notes = append(s.state.Notes[:i], s.state.Notes[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetNote(noteID string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.state.Notes {
		if n.ID == noteID {
			return n, true
		}
	}
	return Note{}, false
}

func (s *Store) ListNotes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.state.Notes))
	copy(out, s.state.Notes)
	return out
}
