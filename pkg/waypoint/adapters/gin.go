package adapters

import (
	"github.com/gin-gonic/gin"

	"github.com/toyz/waypoint/pkg/waypoint"
)

// MountGin registers the first resolvable route of each path on engine for all methods. Routes
// flagged Auth get authMiddleware in front of their handler when it is non-nil.
func MountGin(engine gin.IRoutes, table *waypoint.Table, resolve Resolver[gin.HandlerFunc], authMiddleware gin.HandlerFunc) int {
	return eachRoute(table, resolve,
		func(h gin.HandlerFunc) bool { return h == nil },
		GinPath,
		func(path string, route waypoint.RouteRecord, h gin.HandlerFunc) {
			handlers := []gin.HandlerFunc{h}
			if route.Auth && authMiddleware != nil {
				handlers = []gin.HandlerFunc{authMiddleware, h}
			}
			engine.Any(path, handlers...)
		})
}

// GinPath converts a route path to gin syntax
func GinPath(path string) string {
	return waypoint.RoutePath(path).ColonStyle("*path")
}
