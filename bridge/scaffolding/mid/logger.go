package mid

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/logger"
)

// Logger writes information about the request to the logs.
func Logger(log *logger.Logger, tel web.Telemetry) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = fmt.Sprintf("%s?%s", path, r.URL.RawQuery)
			}

			log.InfoContext(ctx, "request started",
				"trace_id", tel.GetTraceID(ctx),
				"method", r.Method,
				"path", path,
				"remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed",
				"trace_id", tel.GetTraceID(ctx),
				"method", r.Method,
				"path", path,
				"statusCode", statusOf(resp),
				"since", time.Since(now).String())

			return resp
		}
	}
}
