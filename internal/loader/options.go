// Package loader turns controller source directories and YAML route
// directories into route records.
package loader

import (
	"github.com/toyz/waypoint/internal/utils"
)

const (
	// DefaultSeparator joins the namespace, the Controller segment and the type name
	DefaultSeparator = `\`

	// ControllerSegment is the fixed segment between namespace and type name
	ControllerSegment = "Controller"

	// DefaultSourceExtension selects controller source files
	DefaultSourceExtension = ".go"

	// YAMLExtension selects route files; ".yml" is deliberately not accepted
	YAMLExtension = ".yaml"
)

// TypeNamer derives a controller type name from a file base name
type TypeNamer func(base string) string

type options struct {
	separator  string
	extension  string
	typeNamer  TypeNamer
	typeLoader TypeLoader
	reporter   utils.Reporter
}

// Option configures a loader
type Option func(*options)

// WithSeparator changes the identifier separator
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithExtension changes the controller source extension
func WithExtension(ext string) Option {
	return func(o *options) {
		if ext != "" {
			o.extension = ext
		}
	}
}

// WithTypeNamer changes how file base names map to type names
func WithTypeNamer(namer TypeNamer) Option {
	return func(o *options) {
		if namer != nil {
			o.typeNamer = namer
		}
	}
}

// WithTypeLoader replaces source parsing with another type loader, such as a registry
func WithTypeLoader(tl TypeLoader) Option {
	return func(o *options) {
		if tl != nil {
			o.typeLoader = tl
		}
	}
}

// WithReporter receives the failures a loader swallows
func WithReporter(r utils.Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		separator: DefaultSeparator,
		extension: DefaultSourceExtension,
		typeNamer: IdentityTypeNamer,
		reporter:  utils.NopReporter(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.typeLoader == nil {
		o.typeLoader = NewSourceTypeLoader()
	}
	return o
}

// IdentityTypeNamer uses the file base name as the type name
func IdentityTypeNamer(base string) string {
	return base
}

// CamelCaseTypeNamer maps snake or kebab file names to exported type names:
// "blog_admin" becomes "BlogAdmin".
func CamelCaseTypeNamer(base string) string {
	var out []rune
	upper := true
	for _, r := range base {
		if r == '_' || r == '-' || r == '.' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		out = append(out, r)
	}
	return string(out)
}

// ControllerID composes the fully-qualified controller identifier
func ControllerID(namespace, separator, typeName string) string {
	return namespace + separator + ControllerSegment + separator + typeName
}
