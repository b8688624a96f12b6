package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/todoserver/infrastructure/web"
)

type stubTelemetry struct{}

type traceKey struct{}

func (stubTelemetry) SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceKey{}, "trace-1")
}

func (stubTelemetry) GetTraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceKey{}).(string)
	return v
}

func TestHandleJSONAndStatus(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithTelemetry(stubTelemetry{}))

	api := wh.Group("/api/")
	api.POST("/things", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponseWithStatus(map[string]string{"trace": stubTelemetry{}.GetTraceID(ctx)}, http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/things", nil)
	rr := httptest.NewRecorder()
	wh.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	if body := rr.Body.String(); body != `{"trace":"trace-1"}` {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				order = append(order, name)
				return next(ctx, r)
			}
		}
	}

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mark("global")))
	g := wh.Group("/v1", mark("group"))
	g.GET("/ping", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler")
		return web.NewTextResponse("pong")
	}, mark("route"))

	rr := httptest.NewRecorder()
	wh.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	want := []string{"global", "group", "route", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("Expected order %v, got %v", want, order)
	}
	if rr.Body.String() != "pong" {
		t.Errorf("Expected 'pong', got %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text content type, got %q", ct)
	}
}

func TestCORSPreflight(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"http://app.test"}})
	wh.PATCH("/items/{id}/toggle", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewTextResponse("ok")
	})

	req := httptest.NewRequest(http.MethodOptions, "/items/7/toggle", nil)
	req.Header.Set("Origin", "http://app.test")
	rr := httptest.NewRecorder()
	wh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 for preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Errorf("Expected allowed origin header, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PATCH") {
		t.Errorf("Expected PATCH in allowed methods, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials for a listed origin, got %q", got)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("Expected empty preflight body, got %q", rr.Body.String())
	}
}

func TestCORSWildcardWithoutCredentials(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"*"}})
	wh.GET("/items", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewTextResponse("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	rr := httptest.NewRecorder()
	wh.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Expected no credentials header with wildcard origin, got %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	tests := []struct {
		name     string
		opts     []web.HandlerOption
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"default get", nil, http.MethodGet, "/nope", http.StatusNotFound, `{"error":"not found"}`},
		{"default trailing slash", nil, http.MethodGet, "/items/", http.StatusNotFound, `{"error":"not found"}`},
		{"default unregistered method", nil, http.MethodDelete, "/items", http.StatusNotFound, `{"error":"not found"}`},
		{
			name: "custom handler",
			opts: []web.HandlerOption{web.WithNotFound(func(ctx context.Context, r *http.Request) web.Encoder {
				return web.NewJSONResponseWithStatus(map[string]string{"path": r.URL.Path}, http.StatusNotFound)
			})},
			method:   http.MethodPost,
			path:     "/missing",
			wantCode: http.StatusNotFound,
			wantBody: `{"path":"/missing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wh := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"*"}}, tt.opts...)
			wh.GET("/items", func(ctx context.Context, r *http.Request) web.Encoder {
				return web.NewTextResponse("ok")
			})

			rr := httptest.NewRecorder()
			wh.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			if rr.Code != tt.wantCode {
				t.Fatalf("Expected %d, got %d", tt.wantCode, rr.Code)
			}
			if rr.Body.String() != tt.wantBody {
				t.Errorf("Expected body %s, got %q", tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestLookupQueryParam(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		present bool
	}{
		{"/search?keyword=milk", "milk", true},
		{"/search?keyword=", "", true},
		{"/search", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			got, ok := web.LookupQueryParam(r, "keyword")
			if got != tt.want || ok != tt.present {
				t.Errorf("LookupQueryParam = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.present)
			}
		})
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	var v map[string]any
	if err := web.Decode(r, &v); err == nil {
		t.Fatal("Expected error for empty body")
	}
}
