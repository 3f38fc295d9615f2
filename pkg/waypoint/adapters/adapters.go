// Package adapters hands a discovered route table to a web framework router.
// Routes are registered for every HTTP method; dispatch stays with the framework.
// Discovery does not reject repeated paths, so only the first route of each
// framework path is mounted.
package adapters

import (
	"github.com/toyz/waypoint/pkg/waypoint"
)

// Resolver maps a route record to the framework handler serving it.
// A zero handler skips the route.
type Resolver[H any] func(route waypoint.RouteRecord) H

// eachRoute calls mount with the framework path of every route whose resolver
// yields a handler, skipping paths already mounted, and returns how many were mounted
func eachRoute[H any](table *waypoint.Table, resolve Resolver[H], isZero func(H) bool, convert func(string) string, mount func(string, waypoint.RouteRecord, H)) int {
	if table == nil || resolve == nil {
		return 0
	}
	seen := make(map[string]bool)
	for _, route := range table.Routes {
		if route.Path == "" {
			continue
		}
		path := convert(route.Path)
		if seen[path] {
			continue
		}
		h := resolve(route)
		if isZero(h) {
			continue
		}
		seen[path] = true
		mount(path, route, h)
	}
	return len(seen)
}
