package todospgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo"
	"github.com/jrazmi/todoserver/infrastructure/postgresdb"
	"github.com/jrazmi/todoserver/sdk/logger"
)

const selectColumns = `SELECT id, title, description, completed, priority FROM todos`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) FindAll(ctx context.Context) ([]todosrepo.Todo, error) {
	return s.list(ctx, selectColumns+` ORDER BY id`, nil)
}

func (s *Store) FindByID(ctx context.Context, id int64) (todosrepo.Todo, error) {
	query := selectColumns + ` WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	return s.one(ctx, query, args)
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM todos WHERE id = @id)`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, postgresdb.HandlePgError(err)
	}

	return exists, nil
}

// Save inserts todo when its id is zero and updates the stored row
// otherwise. Updating a missing row returns todosrepo.ErrNotFound.
func (s *Store) Save(ctx context.Context, todo todosrepo.Todo) (todosrepo.Todo, error) {
	args := pgx.NamedArgs{
		"id":          todo.ID,
		"title":       todo.Title,
		"description": todo.Description,
		"completed":   todo.Completed,
		"priority":    todo.Priority,
	}

	if todo.ID == 0 {
		query := `INSERT INTO todos (title, description, completed, priority)
			VALUES (@title, @description, @completed, @priority)
			RETURNING id, title, description, completed, priority`

		return s.one(ctx, query, args)
	}

	query := `UPDATE todos
		SET title = @title,
			description = @description,
			completed = @completed,
			priority = @priority
		WHERE id = @id
		RETURNING id, title, description, completed, priority`

	return s.one(ctx, query, args)
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM todos WHERE id = @id`

	tag, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return todosrepo.ErrNotFound
	}

	return nil
}

func (s *Store) FindByCompleted(ctx context.Context, completed bool) ([]todosrepo.Todo, error) {
	query := selectColumns + ` WHERE completed = @completed ORDER BY id`

	return s.list(ctx, query, pgx.NamedArgs{"completed": completed})
}

// FindByTitleContainingIgnoreCase matches keyword as a literal substring,
// so LIKE wildcards in it carry no meaning.
func (s *Store) FindByTitleContainingIgnoreCase(ctx context.Context, keyword string) ([]todosrepo.Todo, error) {
	query := selectColumns + ` WHERE POSITION(LOWER(@keyword) IN LOWER(title)) > 0 ORDER BY id`

	return s.list(ctx, query, pgx.NamedArgs{"keyword": keyword})
}

func (s *Store) FindByPriority(ctx context.Context, priority string) ([]todosrepo.Todo, error) {
	query := selectColumns + ` WHERE priority = @priority ORDER BY id`

	return s.list(ctx, query, pgx.NamedArgs{"priority": priority})
}

func (s *Store) Ping(ctx context.Context) error {
	return postgresdb.StatusCheck(ctx, s.pool)
}

func (s *Store) list(ctx context.Context, query string, args pgx.NamedArgs) ([]todosrepo.Todo, error) {
	var queryArgs []any
	if args != nil {
		queryArgs = append(queryArgs, args)
	}

	rows, err := s.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	todos, err := pgx.CollectRows(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return todos, nil
}

func (s *Store) one(ctx context.Context, query string, args pgx.NamedArgs) (todosrepo.Todo, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	// CollectOneRow returns pgx.ErrNoRows if no rows
	todo, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todosrepo.Todo{}, todosrepo.ErrNotFound
		}
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}

	return todo, nil
}
