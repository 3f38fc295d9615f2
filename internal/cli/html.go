package cli

import (
	"fmt"
	"html"
	"sort"
	"strconv"

	"github.com/rohanthewiz/element"

	"github.com/toyz/waypoint/pkg/waypoint"
)

// routeList renders routes as nested unordered lists, one "key => value" item per field
type routeList struct {
	Routes []waypoint.RouteRecord
}

func (l routeList) Render(b *element.Builder) any {
	b.Ul("class", "routes").R(
		func() any {
			for i, r := range l.Routes {
				b.Li().R(
					b.T(strconv.Itoa(i)+" => "),
					b.Em().T("array"),
					fieldList{Fields: routeFields(r)}.Render(b),
				)
			}
			return nil
		}(),
	)
	return nil
}

// field is one "key => value" item; Nested is set for maps and lists
type field struct {
	Key    string
	Value  string
	Nested []field
}

type fieldList struct {
	Fields []field
}

func (l fieldList) Render(b *element.Builder) any {
	b.Ul().R(
		func() any {
			for _, f := range l.Fields {
				if f.Nested != nil {
					b.Li().R(
						b.T(html.EscapeString(f.Key)+" => "),
						b.Em().T("array"),
						fieldList{Fields: f.Nested}.Render(b),
					)
					continue
				}
				b.Li().R(
					b.T(html.EscapeString(f.Key)+" => "),
					b.Strong().T(html.EscapeString(f.Value)),
				)
			}
			return nil
		}(),
	)
	return nil
}

// routeFields lists the populated fields of a record. Records read from YAML
// show every key of the original entry.
func routeFields(r waypoint.RouteRecord) []field {
	if entry, ok := r.Raw.(map[string]any); ok {
		return mapFields(entry)
	}

	fields := []field{
		{Key: "path", Value: r.Path},
		{Key: "name", Value: r.Name},
		{Key: "auth", Value: strconv.FormatBool(r.Auth)},
	}
	if r.Controller != "" {
		fields = append(fields, field{Key: "controller", Value: r.Controller})
	}
	if r.Method != "" {
		fields = append(fields, field{Key: "method", Value: r.Method})
	}
	return fields
}

func mapFields(m map[string]any) []field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, valueField(k, m[k]))
	}
	return fields
}

// valueField prints scalars as-is and booleans as true/false. Maps and lists
// become nested fields, list items keyed by index.
func valueField(key string, v any) field {
	switch t := v.(type) {
	case map[string]any:
		return field{Key: key, Nested: mapFields(t)}
	case []any:
		nested := make([]field, 0, len(t))
		for i, item := range t {
			nested = append(nested, valueField(strconv.Itoa(i), item))
		}
		return field{Key: key, Nested: nested}
	case bool:
		return field{Key: key, Value: strconv.FormatBool(t)}
	case nil:
		return field{Key: key}
	default:
		return field{Key: key, Value: fmt.Sprint(t)}
	}
}

// RenderHTML returns the route table as an HTML fragment
func RenderHTML(routes []waypoint.RouteRecord) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routeList{Routes: routes})
	return b.String()
}
