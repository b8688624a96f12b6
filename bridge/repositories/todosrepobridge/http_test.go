package todosrepobridge_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/todoserver/bridge/repositories/todosrepobridge"
	"github.com/jrazmi/todoserver/bridge/scaffolding/mid"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo"
	"github.com/jrazmi/todoserver/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoserver/core/services/todoservice"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/logger"
	"github.com/jrazmi/todoserver/sdk/telemetry"
)

type envelopeBody struct {
	Success bool            `json:"success"`
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(t *testing.T) http.Handler {
	t.Helper()

	log := logger.NewDiscard()
	tel := telemetry.NewTelemetry()

	wh := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"*"}},
		web.WithTelemetry(tel),
		web.WithLogging(log.Logger),
		web.WithNotFound(mid.RouteNotFound),
		web.WithGlobalMiddleware(
			mid.Logger(log, tel),
			mid.Errors(log, tel),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	svc := todoservice.New(log, todosrepo.NewRepository(log, todosmemstore.NewStore()))
	todosrepobridge.AddHttpRoutes(wh.Group("/api"), todosrepobridge.Config{
		Log:     log,
		Service: svc,
	})

	return wh
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env envelopeBody
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: invalid envelope %q: %v", method, path, rr.Body.String(), err)
		}
	}
	return rr, env
}

func decodeTodo(t *testing.T, raw json.RawMessage) todoservice.Todo {
	t.Helper()
	var td todoservice.Todo
	if err := json.Unmarshal(raw, &td); err != nil {
		t.Fatalf("invalid todo %s: %v", raw, err)
	}
	return td
}

func decodeTodos(t *testing.T, raw json.RawMessage) []todoservice.Todo {
	t.Helper()
	var tds []todoservice.Todo
	if err := json.Unmarshal(raw, &tds); err != nil {
		t.Fatalf("invalid todo list %s: %v", raw, err)
	}
	return tds
}

func messageOf(env envelopeBody) string {
	if env.Message == nil {
		return ""
	}
	return *env.Message
}

func TestBuyMilkScenario(t *testing.T) {
	app := newApp(t)

	rr, env := doJSON(t, app, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rr.Code, rr.Body.String())
	}
	if !env.Success || messageOf(env) != "Todo created successfully" {
		t.Errorf("create: unexpected envelope %+v", env)
	}
	created := decodeTodo(t, env.Data)
	if created.ID == nil || created.Completed || created.Priority != "MEDIUM" || created.Description != nil {
		t.Fatalf("create: unexpected todo %+v", created)
	}
	id := *created.ID

	rr, env = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", id), "")
	if rr.Code != http.StatusOK || messageOf(env) != "Todo status toggled" {
		t.Fatalf("toggle: status = %d, body %s", rr.Code, rr.Body.String())
	}
	if !decodeTodo(t, env.Data).Completed {
		t.Error("toggle: expected completed true")
	}

	rr, env = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), "")
	if rr.Code != http.StatusOK || messageOf(env) != "Todo deleted successfully" {
		t.Fatalf("delete: status = %d, body %s", rr.Code, rr.Body.String())
	}
	if string(env.Data) != "null" {
		t.Errorf("delete: expected null data, got %s", env.Data)
	}

	rr, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d", rr.Code)
	}
	if env.Success || messageOf(env) != fmt.Sprintf("Todo not found with id: %d", id) {
		t.Errorf("get after delete: unexpected envelope %+v", env)
	}
}

func TestUpdate(t *testing.T) {
	app := newApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/todos", `{"title":"draft","description":"d","priority":"LOW","completed":true}`)
	id := *decodeTodo(t, env.Data).ID

	rr, env := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), `{"id":77,"title":"final","priority":null}`)
	if rr.Code != http.StatusOK || messageOf(env) != "Todo updated successfully" {
		t.Fatalf("update: status = %d, body %s", rr.Code, rr.Body.String())
	}

	got := decodeTodo(t, env.Data)
	if *got.ID != id {
		t.Errorf("update changed id to %d", *got.ID)
	}
	if got.Title != "final" || got.Description != nil || got.Completed || got.Priority != "MEDIUM" {
		t.Errorf("update did not overwrite wholesale: %+v", got)
	}

	rr, _ = doJSON(t, app, http.MethodPut, "/api/todos/999", `{"title":"x"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("update missing: status = %d", rr.Code)
	}
}

func TestListAndFilters(t *testing.T) {
	app := newApp(t)

	rr, env := doJSON(t, app, http.MethodGet, "/api/todos", "")
	if rr.Code != http.StatusOK || string(env.Data) != "[]" || env.Message != nil {
		t.Fatalf("empty list: status = %d, body %s", rr.Code, rr.Body.String())
	}

	for _, body := range []string{
		`{"title":"Buy MILK","priority":"HIGH"}`,
		`{"title":"walk dog","completed":true,"priority":"LOW"}`,
		`{"title":"milkshake","completed":true,"priority":"HIGH"}`,
	} {
		if rr, _ := doJSON(t, app, http.MethodPost, "/api/todos", body); rr.Code != http.StatusCreated {
			t.Fatalf("seed %s: status = %d", body, rr.Code)
		}
	}

	tests := []struct {
		path   string
		titles []string
	}{
		{"/api/todos", []string{"Buy MILK", "walk dog", "milkshake"}},
		{"/api/todos/status/true", []string{"walk dog", "milkshake"}},
		{"/api/todos/status/FALSE", []string{"Buy MILK"}},
		{"/api/todos/search?keyword=milk", []string{"Buy MILK", "milkshake"}},
		{"/api/todos/search?keyword=", []string{"Buy MILK", "walk dog", "milkshake"}},
		{"/api/todos/search?keyword=%25", []string{}},
		{"/api/todos/priority/HIGH", []string{"Buy MILK", "milkshake"}},
		{"/api/todos/priority/URGENT", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr, env := doJSON(t, app, http.MethodGet, tt.path, "")
			if rr.Code != http.StatusOK || !env.Success {
				t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
			}
			got := decodeTodos(t, env.Data)
			if len(got) != len(tt.titles) {
				t.Fatalf("got %d todos, want %d: %s", len(got), len(tt.titles), env.Data)
			}
			for i, title := range tt.titles {
				if got[i].Title != title {
					t.Errorf("todo %d: got %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	app := newApp(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		contains string
	}{
		{"non numeric id", http.MethodGet, "/api/todos/abc", "", "invalid id: abc"},
		{"non numeric toggle id", http.MethodPatch, "/api/todos/1x/toggle", "", "invalid id: 1x"},
		{"bad status", http.MethodGet, "/api/todos/status/maybe", "", "invalid completed status: maybe"},
		{"numeric status", http.MethodGet, "/api/todos/status/1", "", "invalid completed status: 1"},
		{"missing keyword", http.MethodGet, "/api/todos/search", "", "keyword"},
		{"empty body", http.MethodPost, "/api/todos", "", "invalid request body"},
		{"malformed body", http.MethodPost, "/api/todos", `{"title":`, "malformed json"},
		{"missing title", http.MethodPost, "/api/todos", `{"completed":true}`, "title"},
		{"wrong title type", http.MethodPost, "/api/todos", `{"title":5}`, "title"},
		{"wrong completed type", http.MethodPut, "/api/todos/1", `{"title":"x","completed":"yes"}`, "completed"},
		{"overflowing id", http.MethodPost, "/api/todos", `{"title":"x","id":1e30}`, "invalid request body: id: value out of range"},
		{"fractional id", http.MethodPost, "/api/todos", `{"title":"x","id":2.0}`, "invalid request body: id: value out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := doJSON(t, app, tt.method, tt.path, tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", rr.Code, rr.Body.String())
			}
			if env.Success || string(env.Data) != "null" {
				t.Errorf("unexpected envelope %s", rr.Body.String())
			}
			if !strings.Contains(messageOf(env), tt.contains) {
				t.Errorf("message %q does not contain %q", messageOf(env), tt.contains)
			}
			if strings.Contains(messageOf(env), "Go struct") {
				t.Errorf("message %q exposes Go types", messageOf(env))
			}
		})
	}
}

func TestNotFoundRoutes(t *testing.T) {
	app := newApp(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/todos/41"},
		{http.MethodDelete, "/api/todos/41"},
		{http.MethodPatch, "/api/todos/41/toggle"},
	} {
		rr, env := doJSON(t, app, tc.method, tc.path, "")
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d", tc.method, tc.path, rr.Code)
		}
		if messageOf(env) != "Todo not found with id: 41" {
			t.Errorf("%s %s: message %q", tc.method, tc.path, messageOf(env))
		}
	}

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/api/todos/"},
		{http.MethodGet, "/api/todos/1/2/3"},
		{http.MethodPost, "/api/todos/1"},
	} {
		rr, env := doJSON(t, app, tc.method, tc.path, "")
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", tc.method, tc.path, rr.Code)
		}
		if env.Success || string(env.Data) != "null" {
			t.Errorf("%s %s: unexpected envelope %s", tc.method, tc.path, rr.Body.String())
		}
		if want := "route not found: " + tc.method + " " + tc.path; messageOf(env) != want {
			t.Errorf("%s %s: message %q, want %q", tc.method, tc.path, messageOf(env), want)
		}
	}
}

func TestHealth(t *testing.T) {
	app := newApp(t)

	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/todos/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "Todo Backend is running!" {
		t.Errorf("body = %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/todos/5/toggle", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing allow origin header: %v", rr.Header())
	}
}
