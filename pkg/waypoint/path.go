package waypoint

import (
	"strings"
)

// PathPartType represents the type of path part
type PathPartType int

const (
	StaticPart PathPartType = iota
	ParameterPart
	WildcardPart
)

// PathPart represents a single part of a route path
type PathPart struct {
	Type      PathPartType
	Value     string // literal text for static parts, parameter name for parameters
	ParamType string // declared type of a {name:type} parameter, empty when untyped
}

// RoutePath is a route path written with {name}, {name:type} and {*} segments
type RoutePath string

// Parts splits the path into static, parameter and wildcard parts
func (p RoutePath) Parts() []PathPart {
	path := string(p)
	var parts []PathPart

	i := 0
	for i < len(path) {
		if path[i] != '{' {
			start := i
			for i < len(path) && path[i] != '{' {
				i++
			}
			parts = append(parts, PathPart{Type: StaticPart, Value: path[start:i]})
			continue
		}

		j := strings.IndexByte(path[i:], '}')
		if j < 0 {
			// unclosed brace, keep the rest verbatim
			parts = append(parts, PathPart{Type: StaticPart, Value: path[i:]})
			break
		}
		content := path[i+1 : i+j]
		i += j + 1

		if content == "*" {
			parts = append(parts, PathPart{Type: WildcardPart, Value: "*"})
			continue
		}
		name, typ, _ := strings.Cut(content, ":")
		parts = append(parts, PathPart{Type: ParameterPart, Value: name, ParamType: typ})
	}

	return parts
}

// Params returns the parameter names in order of appearance
func (p RoutePath) Params() []string {
	var names []string
	for _, part := range p.Parts() {
		if part.Type == ParameterPart {
			names = append(names, part.Value)
		}
	}
	return names
}

// ColonStyle renders the path in the :param syntax shared by gin, echo and fiber.
// wildcard replaces {*} segments, e.g. "*path" for gin or "*" for echo and fiber.
func (p RoutePath) ColonStyle(wildcard string) string {
	var b strings.Builder
	for _, part := range p.Parts() {
		switch part.Type {
		case ParameterPart:
			b.WriteString(":")
			b.WriteString(part.Value)
		case WildcardPart:
			b.WriteString(wildcard)
		default:
			b.WriteString(part.Value)
		}
	}
	return b.String()
}
