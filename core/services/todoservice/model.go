package todoservice

import "github.com/jrazmi/todoserver/core/repositories/todosrepo"

// Todo is the wire-facing shape of a todo item. ID is nil until the todo
// has been persisted.
type Todo struct {
	ID          *int64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
}

// NewTodo returns a Todo carrying the defaults a client may omit.
func NewTodo(title string) Todo {
	return Todo{
		Title:    title,
		Priority: todosrepo.DefaultPriority,
	}
}

func toTodo(r todosrepo.Todo) Todo {
	id := r.ID
	return Todo{
		ID:          &id,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    r.Priority,
	}
}

func toTodos(records []todosrepo.Todo) []Todo {
	todos := make([]Todo, len(records))
	for i, r := range records {
		todos[i] = toTodo(r)
	}
	return todos
}

// applyTo overwrites every client-controlled field of r with t.
func (t Todo) applyTo(r todosrepo.Todo) todosrepo.Todo {
	r.Title = t.Title
	r.Description = t.Description
	r.Completed = t.Completed
	r.Priority = t.Priority
	return r
}
