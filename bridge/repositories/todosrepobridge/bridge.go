package todosrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/todoserver/bridge/scaffolding/envelope"
	"github.com/jrazmi/todoserver/bridge/scaffolding/errs"
	"github.com/jrazmi/todoserver/core/services/todoservice"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/logger"
)

const healthMessage = "Todo Backend is running!"

type bridge struct {
	log         *logger.Logger
	todoService *todoservice.Service
}

func newBridge(log *logger.Logger, todoService *todoservice.Service) *bridge {
	return &bridge{
		log:         log,
		todoService: todoService,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	todos, err := b.todoService.GetAllTodos(ctx)
	if err != nil {
		return toError(err)
	}
	return envelope.Success(todos)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(web.Param(r, "id"))
	if err != nil {
		return toError(err)
	}

	todo, err := b.todoService.GetTodoByID(ctx, id)
	if err != nil {
		return toError(err)
	}
	return envelope.Success(todo)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input todoInput
	if err := web.Decode(r, &input); err != nil {
		return decodeError(err)
	}

	todo, err := b.todoService.CreateTodo(ctx, input.Todo)
	if err != nil {
		return toError(err)
	}
	return envelope.Created("Todo created successfully", todo)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(web.Param(r, "id"))
	if err != nil {
		return toError(err)
	}

	var input todoInput
	if err := web.Decode(r, &input); err != nil {
		return decodeError(err)
	}

	todo, err := b.todoService.UpdateTodo(ctx, id, input.Todo)
	if err != nil {
		return toError(err)
	}
	return envelope.SuccessWithMessage("Todo updated successfully", todo)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(web.Param(r, "id"))
	if err != nil {
		return toError(err)
	}

	if err := b.todoService.DeleteTodo(ctx, id); err != nil {
		return toError(err)
	}
	return envelope.Message("Todo deleted successfully")
}

func (b *bridge) httpToggle(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(web.Param(r, "id"))
	if err != nil {
		return toError(err)
	}

	todo, err := b.todoService.ToggleTodoStatus(ctx, id)
	if err != nil {
		return toError(err)
	}
	return envelope.SuccessWithMessage("Todo status toggled", todo)
}

func (b *bridge) httpListByStatus(ctx context.Context, r *http.Request) web.Encoder {
	completed, err := parseCompleted(web.Param(r, "completed"))
	if err != nil {
		return toError(err)
	}

	todos, err := b.todoService.GetTodosByStatus(ctx, completed)
	if err != nil {
		return toError(err)
	}
	return envelope.Success(todos)
}

func (b *bridge) httpSearch(ctx context.Context, r *http.Request) web.Encoder {
	keyword, ok := web.LookupQueryParam(r, "keyword")
	if !ok {
		return errs.Newf(errs.InvalidArgument, "missing query parameter: keyword")
	}

	todos, err := b.todoService.SearchTodos(ctx, keyword)
	if err != nil {
		return toError(err)
	}
	return envelope.Success(todos)
}

func (b *bridge) httpListByPriority(ctx context.Context, r *http.Request) web.Encoder {
	todos, err := b.todoService.GetTodosByPriority(ctx, web.Param(r, "priority"))
	if err != nil {
		return toError(err)
	}
	return envelope.Success(todos)
}

func (b *bridge) httpHealth(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewTextResponse(healthMessage)
}

// toError maps service failures onto bridge error codes. Anything that is
// not already an errs.Error or a missing todo is logged and masked.
func toError(err error) *errs.Error {
	var appErr *errs.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, todoservice.ErrNotFound):
		return errs.New(errs.NotFound, err)
	default:
		return errs.New(errs.InternalOnlyLog, err)
	}
}
