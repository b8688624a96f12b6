// Package todoservice maps todo records to their wire shape and checks
// existence before any mutation.
package todoservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todoserver/core/repositories/todosrepo"
	"github.com/jrazmi/todoserver/sdk/logger"
)

// Repository is the part of todosrepo.Repository the service calls.
type Repository interface {
	FindAll(ctx context.Context) ([]todosrepo.Todo, error)
	FindByID(ctx context.Context, id int64) (todosrepo.Todo, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, todo todosrepo.Todo) (todosrepo.Todo, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByCompleted(ctx context.Context, completed bool) ([]todosrepo.Todo, error)
	FindByTitleContainingIgnoreCase(ctx context.Context, keyword string) ([]todosrepo.Todo, error)
	FindByPriority(ctx context.Context, priority string) ([]todosrepo.Todo, error)
}

type Service struct {
	log  *logger.Logger
	repo Repository
}

func New(log *logger.Logger, repo Repository) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) GetAllTodos(ctx context.Context) ([]Todo, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all todos: %w", err)
	}
	return toTodos(records), nil
}

func (s *Service) GetTodoByID(ctx context.Context, id int64) (Todo, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return Todo{}, err
	}
	return toTodo(record), nil
}

// CreateTodo persists input as a new todo. Any id on input is ignored.
func (s *Service) CreateTodo(ctx context.Context, input Todo) (Todo, error) {
	record, err := s.repo.Save(ctx, input.applyTo(todosrepo.Todo{}))
	if err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo created", "id", record.ID)
	return toTodo(record), nil
}

// UpdateTodo overwrites title, description, completed and priority of the
// stored todo with those of input.
func (s *Service) UpdateTodo(ctx context.Context, id int64, input Todo) (Todo, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return Todo{}, err
	}

	saved, err := s.repo.Save(ctx, input.applyTo(record))
	if err != nil {
		return Todo{}, notFound(id, fmt.Errorf("update todo: %w", err))
	}
	return toTodo(saved), nil
}

func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if !exists {
		return &NotFoundError{ID: id}
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return notFound(id, fmt.Errorf("delete todo: %w", err))
	}

	s.log.InfoContext(ctx, "todo deleted", "id", id)
	return nil
}

func (s *Service) ToggleTodoStatus(ctx context.Context, id int64) (Todo, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return Todo{}, err
	}

	record.Completed = !record.Completed

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		return Todo{}, notFound(id, fmt.Errorf("toggle todo: %w", err))
	}
	return toTodo(saved), nil
}

func (s *Service) GetTodosByStatus(ctx context.Context, completed bool) ([]Todo, error) {
	records, err := s.repo.FindByCompleted(ctx, completed)
	if err != nil {
		return nil, fmt.Errorf("get todos by status: %w", err)
	}
	return toTodos(records), nil
}

// SearchTodos matches keyword verbatim against titles, ignoring case.
func (s *Service) SearchTodos(ctx context.Context, keyword string) ([]Todo, error) {
	records, err := s.repo.FindByTitleContainingIgnoreCase(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search todos: %w", err)
	}
	return toTodos(records), nil
}

func (s *Service) GetTodosByPriority(ctx context.Context, priority string) ([]Todo, error) {
	records, err := s.repo.FindByPriority(ctx, priority)
	if err != nil {
		return nil, fmt.Errorf("get todos by priority: %w", err)
	}
	return toTodos(records), nil
}

func (s *Service) find(ctx context.Context, id int64) (todosrepo.Todo, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return todosrepo.Todo{}, notFound(id, fmt.Errorf("find todo: %w", err))
	}
	return record, nil
}

// notFound replaces a storage miss with a NotFoundError for id.
func notFound(id int64, err error) error {
	if errors.Is(err, todosrepo.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}
