// Package waypoint assembles an application's route table from YAML route
// files and @Route annotations on controller methods.
package waypoint

import (
	"github.com/toyz/waypoint/internal/models"
	"github.com/toyz/waypoint/internal/registry"
)

// RouteRecord is one entry of the route table
type RouteRecord = models.RouteRecord

// Registry is an explicit controller registry usable in place of source parsing
type Registry = registry.Registry

// RouteDocumenter exposes method doc comments for registered controllers
type RouteDocumenter = registry.RouteDocumenter

// NewRegistry creates an empty controller registry
func NewRegistry() *Registry {
	return registry.NewRegistry()
}

// Order decides which source comes first in the aggregated table
type Order int

const (
	// YAMLFirst places YAML-sourced routes before code-sourced routes
	YAMLFirst Order = iota
	// CodeFirst places code-sourced routes before YAML-sourced routes
	CodeFirst
)

// String returns the configuration spelling of the order
func (o Order) String() string {
	if o == CodeFirst {
		return "code-first"
	}
	return "yaml-first"
}

// ParseOrder accepts "yaml-first" or "code-first"; anything else is YAMLFirst
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "code-first", "code":
		return CodeFirst, true
	case "yaml-first", "yaml", "":
		return YAMLFirst, true
	default:
		return YAMLFirst, false
	}
}
