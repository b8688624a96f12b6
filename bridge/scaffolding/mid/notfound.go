package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/todoserver/bridge/scaffolding/errs"
	"github.com/jrazmi/todoserver/infrastructure/web"
)

// RouteNotFound answers requests that match no registered route.
func RouteNotFound(ctx context.Context, r *http.Request) web.Encoder {
	return errs.Newf(errs.NotFound, "route not found: %s %s", r.Method, r.URL.Path)
}
