// Package todosmemstore keeps todos in process memory. It backs the
// memory store driver and the service tests.
package todosmemstore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jrazmi/todoserver/core/repositories/todosrepo"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	todos  map[int64]todosrepo.Todo
}

func NewStore() *Store {
	return &Store{
		todos: make(map[int64]todosrepo.Todo),
	}
}

func (s *Store) FindAll(ctx context.Context) ([]todosrepo.Todo, error) {
	return s.filter(func(todosrepo.Todo) bool { return true }), nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (todosrepo.Todo, error) {
	s.mu.RLock()
	todo, ok := s.todos[id]
	s.mu.RUnlock()

	if !ok {
		return todosrepo.Todo{}, todosrepo.ErrNotFound
	}
	return clone(todo), nil
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	_, ok := s.todos[id]
	s.mu.RUnlock()

	return ok, nil
}

func (s *Store) Save(ctx context.Context, todo todosrepo.Todo) (todosrepo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if todo.ID == 0 {
		s.nextID++
		todo.ID = s.nextID
	} else if _, ok := s.todos[todo.ID]; !ok {
		return todosrepo.Todo{}, todosrepo.ErrNotFound
	}

	todo = clone(todo)
	s.todos[todo.ID] = todo

	return clone(todo), nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return todosrepo.ErrNotFound
	}
	delete(s.todos, id)

	return nil
}

func (s *Store) FindByCompleted(ctx context.Context, completed bool) ([]todosrepo.Todo, error) {
	return s.filter(func(t todosrepo.Todo) bool { return t.Completed == completed }), nil
}

func (s *Store) FindByTitleContainingIgnoreCase(ctx context.Context, keyword string) ([]todosrepo.Todo, error) {
	keyword = strings.ToLower(keyword)
	return s.filter(func(t todosrepo.Todo) bool {
		return strings.Contains(strings.ToLower(t.Title), keyword)
	}), nil
}

func (s *Store) FindByPriority(ctx context.Context, priority string) ([]todosrepo.Todo, error) {
	return s.filter(func(t todosrepo.Todo) bool { return t.Priority == priority }), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// filter returns matching todos in ascending id order.
func (s *Store) filter(keep func(todosrepo.Todo) bool) []todosrepo.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]todosrepo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if keep(t) {
			todos = append(todos, clone(t))
		}
	}

	slices.SortFunc(todos, func(a, b todosrepo.Todo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return todos
}

// clone copies the description so callers cannot mutate stored state.
func clone(t todosrepo.Todo) todosrepo.Todo {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}
