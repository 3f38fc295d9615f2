package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/models"
	"github.com/toyz/waypoint/internal/utils"
)

// YAMLLoader reads route records from a flat directory of .yaml files
type YAMLLoader struct {
	opts *options
}

// NewYAMLLoader creates a YAML route loader
func NewYAMLLoader(opts ...Option) *YAMLLoader {
	return &YAMLLoader{opts: newOptions(opts)}
}

// LoadFromYaml is a one-shot YAMLLoader.Load
func LoadFromYaml(dir string, opts ...Option) []models.RouteRecord {
	return NewYAMLLoader(opts...).Load(dir)
}

// Load flattens the route lists of every .yaml file in dir, in file then list
// order. Entries are not validated. A failure on any file empties the result.
func (l *YAMLLoader) Load(dir string) []models.RouteRecord {
	routes, err := l.scan(dir)
	if err != nil {
		l.opts.reporter.Warn("discarding routes from %s: %v", dir, err)
		return []models.RouteRecord{}
	}
	return routes
}

func (l *YAMLLoader) scan(dir string) ([]models.RouteRecord, error) {
	files, err := utils.ListFiles(dir, utils.ExtensionFilter(YAMLExtension))
	if err != nil {
		return nil, errors.WrapFileSystemError("read directory", dir, err)
	}

	routes := make([]models.RouteRecord, 0)
	for _, file := range files {
		found, err := readRouteFile(file)
		if err != nil {
			return nil, err
		}
		l.opts.reporter.Debug("%s: %d route(s)", file, len(found))
		routes = append(routes, found...)
	}
	return routes, nil
}

func readRouteFile(path string) ([]models.RouteRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WrapParseError(path, err)
	}
	// a route file holds exactly one document; empty trailing documents are tolerated
	for {
		var extra yaml.Node
		err := dec.Decode(&extra)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParseError(path, err)
		}
		if !emptyDocument(&extra) {
			return nil, errors.WrapParseError(path, fmt.Errorf("multiple YAML documents are not supported"))
		}
	}

	items, err := documentItems(&doc)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}

	routes := make([]models.RouteRecord, 0, len(items))
	for _, item := range items {
		var raw any
		if err := item.Decode(&raw); err != nil {
			return nil, errors.WrapParseError(path, err)
		}
		route := recordFromEntry(raw)
		route.Source = path
		routes = append(routes, route)
	}
	return routes, nil
}

// documentItems returns the entries of a route document: the items of a
// sequence, or the values of a mapping in document order. Scalars and empty
// documents hold no routes.
func documentItems(doc *yaml.Node) ([]*yaml.Node, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.AliasNode {
		root = root.Alias
	}

	switch root.Kind {
	case yaml.SequenceNode:
		return root.Content, nil
	case yaml.MappingNode:
		values := make([]*yaml.Node, 0, len(root.Content)/2)
		for i := 1; i < len(root.Content); i += 2 {
			values = append(values, root.Content[i])
		}
		return values, nil
	default:
		return nil, nil
	}
}

func emptyDocument(doc *yaml.Node) bool {
	if len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.Tag == "!!null"
}

// recordFromEntry copies the well-typed route fields out of a decoded entry and
// keeps the entry itself as Raw
func recordFromEntry(raw any) models.RouteRecord {
	route := models.RouteRecord{Raw: raw}
	entry, ok := raw.(map[string]any)
	if !ok {
		return route
	}
	if v, ok := entry["path"].(string); ok {
		route.Path = v
	}
	if v, ok := entry["name"].(string); ok {
		route.Name = v
	}
	if v, ok := entry["auth"].(bool); ok {
		route.Auth = v
	}
	if v, ok := entry["controller"].(string); ok {
		route.Controller = v
	}
	return route
}
