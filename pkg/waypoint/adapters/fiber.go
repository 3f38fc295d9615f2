package adapters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/toyz/waypoint/pkg/waypoint"
)

// MountFiber registers the first resolvable route of each path on app for all methods. Routes
// flagged Auth get authMiddleware in front of their handler when it is non-nil.
func MountFiber(app fiber.Router, table *waypoint.Table, resolve Resolver[fiber.Handler], authMiddleware fiber.Handler) int {
	return eachRoute(table, resolve,
		func(h fiber.Handler) bool { return h == nil },
		FiberPath,
		func(path string, route waypoint.RouteRecord, h fiber.Handler) {
			handlers := []fiber.Handler{h}
			if route.Auth && authMiddleware != nil {
				handlers = []fiber.Handler{authMiddleware, h}
			}
			app.All(path, handlers...).Name(route.Name)
		})
}

// FiberPath converts a route path to fiber syntax
func FiberPath(path string) string {
	return waypoint.RoutePath(path).ColonStyle("*")
}
