package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/toyz/waypoint/pkg/waypoint"
)

// OutputFormat specifies how to render the route table.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputHTML  OutputFormat = "html"
)

// ParseOutputFormat parses and validates the output format flag.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "table", "":
		return OutputTable, nil
	case "json":
		return OutputJSON, nil
	case "yaml":
		return OutputYAML, nil
	case "html":
		return OutputHTML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: table, json, yaml, html)", s)
	}
}

// Render writes the routes in the requested format.
func Render(w io.Writer, format OutputFormat, routes []waypoint.RouteRecord) error {
	if routes == nil {
		routes = []waypoint.RouteRecord{}
	}
	switch format {
	case OutputJSON:
		return printJSON(w, routes)
	case OutputYAML:
		return printYAML(w, routes)
	case OutputHTML:
		_, err := io.WriteString(w, RenderHTML(routes))
		return err
	default:
		return printTable(w, routes)
	}
}

func printJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

func printTable(w io.Writer, routes []waypoint.RouteRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tAUTH\tCONTROLLER\tMETHOD")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			dash(r.Name), dash(r.Path), strconv.FormatBool(r.Auth), dash(r.Controller), dash(r.Method))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
