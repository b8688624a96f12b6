// Package checkbridge exposes the readiness probe.
package checkbridge

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/todoserver/bridge/scaffolding/envelope"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger func(ctx context.Context) error

// Config holds the dependencies for the check routes.
type Config struct {
	Log     *logger.Logger
	Ping    Pinger
	Timeout time.Duration
}

type bridge struct {
	log     *logger.Logger
	ping    Pinger
	timeout time.Duration
}

// AddHttpRoutes registers GET /readiness on the group.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		log:     cfg.Log,
		ping:    cfg.Ping,
		timeout: cfg.Timeout,
	}
	if b.timeout == 0 {
		b.timeout = time.Second
	}

	group.GET("/readiness", b.readiness)
}

func (b *bridge) readiness(ctx context.Context, r *http.Request) web.Encoder {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if err := b.ping(ctx); err != nil {
		b.log.WarnContext(ctx, "readiness failure", "error", err)
		return envelope.Failure(http.StatusServiceUnavailable, "storage unavailable")
	}

	return envelope.SuccessWithMessage[*struct{}]("ok", nil)
}
