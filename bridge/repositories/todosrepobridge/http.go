// Package todosrepobridge contains HTTP route registration for Todo.
package todosrepobridge

import (
	"github.com/jrazmi/todoserver/core/services/todoservice"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/logger"
)

// Config holds configuration for the Todo bridge
type Config struct {
	Log        *logger.Logger
	Service    *todoservice.Service
	Middleware []web.Middleware
}

// AddHttpRoutes registers the /todos routes on group. Middleware in cfg
// applies to every todo route.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Service)

	todos := group.Group("/todos", cfg.Middleware...)

	todos.GET("", b.httpList)
	todos.POST("", b.httpCreate)
	todos.GET("/health", b.httpHealth)
	todos.GET("/search", b.httpSearch)
	todos.GET("/status/{completed}", b.httpListByStatus)
	todos.GET("/priority/{priority}", b.httpListByPriority)
	todos.GET("/{id}", b.httpGetByID)
	todos.PUT("/{id}", b.httpUpdate)
	todos.DELETE("/{id}", b.httpDelete)
	todos.PATCH("/{id}/toggle", b.httpToggle)
}
