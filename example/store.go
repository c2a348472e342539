package main

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pthm/domcmp/example/components"
)

// Store is an in-memory todo store that implements components.TodoStore.
type Store struct {
	mu     sync.RWMutex
	todos  map[string]*components.Todo
	order  []string
	nextID int
}

// NewStore creates a new store with sample data.
func NewStore() *Store {
	s := &Store{
		todos:  make(map[string]*components.Todo),
		nextID: 1,
	}

	s.Add("Buy groceries")
	s.Add("Review PR #123")
	s.Add("Write documentation")

	return s
}

// Add creates a new todo and returns its ID.
func (s *Store) Add(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("todo-%d", s.nextID)
	s.nextID++
	s.todos[id] = &components.Todo{ID: id, Title: title, Status: components.StatusPending}
	s.order = append(s.order, id)
	return id
}

// Toggle toggles the completed status of a todo.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return false
	}
	if todo.Status == components.StatusCompleted {
		todo.Status = components.StatusPending
	} else {
		todo.Status = components.StatusCompleted
	}
	return true
}

// Delete removes a todo by ID.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return false
	}
	delete(s.todos, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	return true
}

// List returns todos in creation order, optionally filtered by status.
func (s *Store) List(status *components.Status) []*components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*components.Todo
	for _, id := range s.order {
		todo := s.todos[id]
		if status != nil && todo.Status != *status {
			continue
		}
		result = append(result, todo)
	}
	return result
}

// Stats returns statistics about the todos.
func (s *Store) Stats() components.TodoStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats components.TodoStats
	for _, todo := range s.todos {
		stats.Total++
		if todo.Status == components.StatusCompleted {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	return stats
}
