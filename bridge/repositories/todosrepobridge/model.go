package todosrepobridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jrazmi/todoserver/bridge/scaffolding/errs"
	"github.com/jrazmi/todoserver/core/services/todoservice"
	"github.com/jrazmi/todoserver/schema"
	"github.com/jrazmi/todoserver/sdk/validation"
)

var todoSchema = validation.MustSchemaValidator("todo.schema.json", schema.TodoJSONSchema)

// todoInput is the request body of create and update. Omitted or null
// completed and priority keep the defaults from todoservice.NewTodo.
type todoInput struct {
	todoservice.Todo
}

// Decode implements web.Decoder.
func (in *todoInput) Decode(data []byte) error {
	if err := todoSchema.Validate(data); err != nil {
		return err
	}

	todo := todoservice.NewTodo("")
	if err := json.Unmarshal(data, &todo); err != nil {
		return fmt.Errorf("unmarshal todo: %w", err)
	}

	in.Todo = todo
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Newf(errs.InvalidArgument, "invalid id: %s", raw)
	}
	return id, nil
}

func parseCompleted(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errs.Newf(errs.InvalidArgument, "invalid completed status: %s", raw)
}

// decodeError reports a rejected body without leaking Go type names.
func decodeError(err error) *errs.Error {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return errs.Newf(errs.InvalidArgument, "invalid request body: %s", fe)
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return errs.Newf(errs.InvalidArgument, "invalid request body: %s: value out of range", te.Field)
	}

	return errs.Newf(errs.InvalidArgument, "invalid request body")
}
