package todosrepo

// DefaultPriority is stored when a todo is created without one.
const DefaultPriority = "MEDIUM"

// Todo is the persisted form of a todo item. An ID of zero marks a record
// that has not been saved yet.
type Todo struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Completed   bool    `db:"completed"`
	Priority    string  `db:"priority"`
}
