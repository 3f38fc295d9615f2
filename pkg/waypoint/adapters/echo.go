package adapters

import (
	"github.com/labstack/echo/v4"

	"github.com/toyz/waypoint/pkg/waypoint"
)

// MountEcho registers the first resolvable route of each path on e for all methods. Routes flagged
// Auth get authMiddleware when it is non-nil.
func MountEcho(e *echo.Echo, table *waypoint.Table, resolve Resolver[echo.HandlerFunc], authMiddleware echo.MiddlewareFunc) int {
	return eachRoute(table, resolve,
		func(h echo.HandlerFunc) bool { return h == nil },
		EchoPath,
		func(path string, route waypoint.RouteRecord, h echo.HandlerFunc) {
			var middlewares []echo.MiddlewareFunc
			if route.Auth && authMiddleware != nil {
				middlewares = append(middlewares, authMiddleware)
			}
			for _, r := range e.Any(path, h, middlewares...) {
				r.Name = route.Name
			}
		})
}

// EchoPath converts a route path to echo syntax
func EchoPath(path string) string {
	return waypoint.RoutePath(path).ColonStyle("*")
}
