package store

func (s *Store) AddBook(title, author string, totalPages int) Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b := Book{
		ID:         newID(),
		Title:      title,
		Author:     author,
		TotalPages: totalPages,
		StartedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.state.Books = append(s.state.Books, b)
	s.persist()
	return b
}

func (s *Store) UpdateBook(bookID string, mutate func(*Book)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Books {
		if s.state.Books[i].ID == bookID {
			mutate(&s.state.Books[i])
			s.state.Books[i].UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteBook(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Books {
		if s.state.Books[i].ID == bookID {
			s.state.Books = append(s.state.Books[:i], s.state.Books[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateBookProgress sets the current page and derives isCompleted.
// The completedAt stamp is set when the page count first reaches the
// total and cleared if progress drops back below it.
func (s *Store) UpdateBookProgress(bookID string, currentPage int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Books {
		if s.state.Books[i].ID == bookID {
			b := &s.state.Books[i]
			wasCompleted := b.IsCompleted
			b.CurrentPage = currentPage
			b.IsCompleted = currentPage >= b.TotalPages
			if b.IsCompleted && !wasCompleted {
				now := s.now()
				b.CompletedAt = &now
			} else if !b.IsCompleted {
				b.CompletedAt = nil
			}
			b.UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

// CompleteBook jumps the book to its last page.
func (s *Store) CompleteBook(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Books {
		if s.state.Books[i].ID == bookID {
			b := &s.state.Books[i]
			now := s.now()
			b.CurrentPage = b.TotalPages
			b.IsCompleted = true
			b.CompletedAt = &now
			b.UpdatedAt = now
			s.persist()
			return
		}
	}
}

func (s *Store) GetBook(bookID string) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.state.Books {
		if b.ID == bookID {
			return b, true
		}
	}
	return Book{}, false
}

func (s *Store) ListBooks() []Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Book, len(s.state.Books))
	copy(out, s.state.Books)
	return out
}
