package waypoint

import (
	"github.com/google/uuid"

	"github.com/toyz/waypoint/internal/loader"
	"github.com/toyz/waypoint/internal/utils"
)

// Reporter receives the failures discovery swallows
type Reporter = utils.Reporter

// Options configures a discovery run
type Options struct {
	YAMLDir       string // directory of *.yaml route files; empty skips YAML
	ControllerDir string // directory of controller sources; empty skips code
	Namespace     string // prefix of controller identifiers
	Separator     string // identifier separator, defaults to a backslash
	Extension     string // controller source extension, defaults to .go
	Order         Order
	CamelCase     bool      // map snake_case file names to CamelCase types
	Registry      *Registry // when set, controllers are looked up here instead of parsed
	Reporter      Reporter
}

func (o Options) loaderOptions() []loader.Option {
	opts := []loader.Option{
		loader.WithExtension(o.Extension),
		loader.WithReporter(o.Reporter),
	}
	if o.Separator != "" {
		opts = append(opts, loader.WithSeparator(o.Separator))
	}
	if o.CamelCase {
		opts = append(opts, loader.WithTypeNamer(loader.CamelCaseTypeNamer))
	}
	if o.Registry != nil {
		opts = append(opts, loader.WithTypeLoader(o.Registry))
	}
	return opts
}

// Table is the aggregated result of one discovery run
type Table struct {
	RunID  uuid.UUID
	Routes []RouteRecord
}

// Discover runs both loaders and aggregates their output. It never fails; a
// source that cannot be read contributes no routes.
func Discover(opts Options) *Table {
	var yamlRoutes, codeRoutes []RouteRecord
	if opts.YAMLDir != "" {
		yamlRoutes = loader.LoadFromYaml(opts.YAMLDir, opts.loaderOptions()...)
	}
	if opts.ControllerDir != "" {
		codeRoutes = loader.LoadFromDirectory(opts.ControllerDir, opts.Namespace, opts.loaderOptions()...)
	}
	return &Table{
		RunID:  uuid.New(),
		Routes: Aggregate(opts.Order, yamlRoutes, codeRoutes),
	}
}

// Aggregate concatenates the two sources in the requested order
func Aggregate(order Order, yamlRoutes, codeRoutes []RouteRecord) []RouteRecord {
	first, second := yamlRoutes, codeRoutes
	if order == CodeFirst {
		first, second = codeRoutes, yamlRoutes
	}
	routes := make([]RouteRecord, 0, len(first)+len(second))
	routes = append(routes, first...)
	return append(routes, second...)
}

// Len returns the number of routes
func (t *Table) Len() int {
	return len(t.Routes)
}

// Lookup returns the first route with the given name
func (t *Table) Lookup(name string) (RouteRecord, bool) {
	for _, r := range t.Routes {
		if r.Name == name {
			return r, true
		}
	}
	return RouteRecord{}, false
}

// Duplicates lists route names that appear more than once, in first-seen order.
// Discovery does not reject them; callers decide.
func (t *Table) Duplicates() []string {
	counts := make(map[string]int)
	var order []string
	for _, r := range t.Routes {
		if counts[r.Name] == 0 {
			order = append(order, r.Name)
		}
		counts[r.Name]++
	}
	var dups []string
	for _, name := range order {
		if counts[name] > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}
