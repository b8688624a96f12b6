// Package todosrepo defines todo storage and the repository over it.
package todosrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todoserver/sdk/logger"
)

// Set of error values for CRUD operations on todo resource
var (
	ErrNotFound = errors.New("todo not found")
)

// Storer is the storage contract a todo store must satisfy. Lookups of a
// missing id return ErrNotFound.
type Storer interface {
	FindAll(ctx context.Context) ([]Todo, error)
	FindByID(ctx context.Context, id int64) (Todo, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, todo Todo) (Todo, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByCompleted(ctx context.Context, completed bool) ([]Todo, error)
	FindByTitleContainingIgnoreCase(ctx context.Context, keyword string) ([]Todo, error)
	FindByPriority(ctx context.Context, priority string) ([]Todo, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]Todo, error) {
	records, err := r.storer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("todo repository find all: %w", err)
	}

	return nonNil(records), nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (Todo, error) {
	record, err := r.storer.FindByID(ctx, id)
	if err != nil {
		return Todo{}, fmt.Errorf("todo repository find by id %d: %w", id, err)
	}
	return record, nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ok, err := r.storer.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("todo repository exists by id %d: %w", id, err)
	}
	return ok, nil
}

// Save inserts todo when it has no id yet and updates it otherwise.
func (r *Repository) Save(ctx context.Context, todo Todo) (Todo, error) {
	record, err := r.storer.Save(ctx, todo)
	if err != nil {
		return Todo{}, fmt.Errorf("todo repository save: %w", err)
	}

	r.log.DebugContext(ctx, "todo saved", "id", record.ID, "inserted", todo.ID == 0)
	return record, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.storer.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("todo repository delete by id %d: %w", id, err)
	}

	r.log.DebugContext(ctx, "todo deleted", "id", id)
	return nil
}

func (r *Repository) FindByCompleted(ctx context.Context, completed bool) ([]Todo, error) {
	records, err := r.storer.FindByCompleted(ctx, completed)
	if err != nil {
		return nil, fmt.Errorf("todo repository find by completed: %w", err)
	}
	return nonNil(records), nil
}

func (r *Repository) FindByTitleContainingIgnoreCase(ctx context.Context, keyword string) ([]Todo, error) {
	records, err := r.storer.FindByTitleContainingIgnoreCase(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("todo repository search title: %w", err)
	}
	return nonNil(records), nil
}

func (r *Repository) FindByPriority(ctx context.Context, priority string) ([]Todo, error) {
	records, err := r.storer.FindByPriority(ctx, priority)
	if err != nil {
		return nil, fmt.Errorf("todo repository find by priority: %w", err)
	}
	return nonNil(records), nil
}

// Ping reports whether the underlying store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.storer.Ping(ctx)
}

func nonNil(records []Todo) []Todo {
	if records == nil {
		return []Todo{}
	}
	return records
}
