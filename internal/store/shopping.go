package store

// AddShoppingList creates an empty list and returns its id.
func (s *Store) AddShoppingList(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	list := ShoppingList{ID: newID(), Name: name, CreatedAt: now, UpdatedAt: now}
	s.state.ShoppingLists = append(s.state.ShoppingLists, list)
	s.persist()
	return list.ID
}

func (s *Store) UpdateShoppingList(listID string, mutate func(*ShoppingList)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID == listID {
			mutate(&s.state.ShoppingLists[i])
			s.state.ShoppingLists[i].UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteShoppingList(listID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID == listID {
			s.state.ShoppingLists = append(s.state.ShoppingLists[:i], s.state.ShoppingLists[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) GetShoppingList(listID string) (ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.state.ShoppingLists {
		if l.ID == listID {
			return l, true
		}
	}
	return ShoppingList{}, false
}

func (s *Store) ListShoppingLists() []ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShoppingList, len(s.state.ShoppingLists))
	copy(out, s.state.ShoppingLists)
	return out
}

func (s *Store) AddShoppingItem(listID, name, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID == listID {
			list := &s.state.ShoppingLists[i]
			list.Items = append(list.Items, ShoppingItem{ID: newID(), Name: name, Notes: notes})
			list.UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}

func (s *Store) UpdateShoppingItem(listID, itemID string, mutate func(*ShoppingItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID != listID {
			continue
		}
		list := &s.state.ShoppingLists[i]
		for j := range list.Items {
			if list.Items[j].ID == itemID {
				mutate(&list.Items[j])
				list.UpdatedAt = s.now()
				s.persist()
				return
			}
		}
		return
	}
}

func (s *Store) DeleteShoppingItem(listID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID != listID {
			continue
		}
		list := &s.state.ShoppingLists[i]
		for j := range list.Items {
			if list.Items[j].ID == itemID {
				list.Items = append(list.Items[:j], list.Items[j+1:]...)
				list.UpdatedAt = s.now()
				s.persist()
				return
			}
		}
		return
	}
}

// ToggleShoppingItem flips one item inside one list, preserving sibling
// order.
func (s *Store) ToggleShoppingItem(listID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID != listID {
			continue
		}
		list := &s.state.ShoppingLists[i]
		for j := range list.Items {
			if list.Items[j].ID == itemID {
				item := &list.Items[j]
				item.IsCompleted = !item.IsCompleted
				if item.IsCompleted {
					now := s.now()
					item.CompletedAt = &now
				} else {
					item.CompletedAt = nil
				}
				list.UpdatedAt = s.now()
				s.persist()
				return
			}
		}
		return
	}
}

// ReplaceShoppingListItems swaps the list's items for fresh, unchecked
// ones named after newItems.
func (s *Store) ReplaceShoppingListItems(listID string, newItems []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ShoppingLists {
		if s.state.ShoppingLists[i].ID == listID {
			list := &s.state.ShoppingLists[i]
			items := make([]ShoppingItem, 0, len(newItems))
			for _, name := range newItems {
				items = append(items, ShoppingItem{ID: newID(), Name: name})
			}
			list.Items = items
			list.UpdatedAt = s.now()
			s.persist()
			return
		}
	}
}
