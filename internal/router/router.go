// Package router defines how HTTP routes are registered for the API.  Routes
// are declared in an explicit table and applied to the Echo instance at
// startup; nothing is discovered by reflection.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/monastery360/internal/handler"
)

// Route binds one method and path to a handler with optional route-level
// middleware, applied outermost first.
type Route struct {
	Method     string
	Path       string
	Handler    echo.HandlerFunc
	Middleware []echo.MiddlewareFunc
}

// CatalogMiddleware groups the middleware applied to the collection routes.
// Nil entries are skipped.
type CatalogMiddleware struct {
	CORS      echo.MiddlewareFunc // origin allow-list; also answers preflights
	RateLimit echo.MiddlewareFunc // token bucket per client
	Cache     echo.MiddlewareFunc // Redis response cache
}

// HealthRoutes returns the liveness routes.  They carry no CORS policy.
func HealthRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: handler.Root},
		{Method: http.MethodGet, Path: "/health", Handler: handler.Root},
		{Method: http.MethodGet, Path: "/api/health", Handler: handler.APIHealth},
	}
}

// CatalogRoutes returns the two collection routes and their preflight
// counterparts.  Preflights only pass through CORS so that browsers from an
// allowed origin can negotiate before the GET.
func CatalogRoutes(h *handler.CatalogHandler, mw CatalogMiddleware) []Route {
	get := compact(mw.CORS, mw.RateLimit, mw.Cache)
	preflight := compact(mw.CORS)
	return []Route{
		{Method: http.MethodGet, Path: "/api/monasteries", Handler: h.ListMonasteries, Middleware: get},
		{Method: http.MethodOptions, Path: "/api/monasteries", Handler: handler.Preflight, Middleware: preflight},
		{Method: http.MethodGet, Path: "/api/events", Handler: h.ListEvents, Middleware: get},
		{Method: http.MethodOptions, Path: "/api/events", Handler: handler.Preflight, Middleware: preflight},
	}
}

// MetricsRoute exposes the Prometheus handler on /metrics.
func MetricsRoute(metrics http.Handler) Route {
	return Route{Method: http.MethodGet, Path: "/metrics", Handler: echo.WrapHandler(metrics)}
}

// Register adds every route in the table to e.
func Register(e *echo.Echo, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, r.Path, r.Handler, r.Middleware...)
	}
}

func compact(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
