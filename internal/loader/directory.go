package loader

import (
	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/models"
	"github.com/toyz/waypoint/internal/reflector"
	"github.com/toyz/waypoint/internal/utils"
)

// DirectoryLoader discovers annotated routes from a flat directory of controller sources
type DirectoryLoader struct {
	opts *options
}

// NewDirectoryLoader creates a directory loader
func NewDirectoryLoader(opts ...Option) *DirectoryLoader {
	return &DirectoryLoader{opts: newOptions(opts)}
}

// LoadFromDirectory is a one-shot DirectoryLoader.Load
func LoadFromDirectory(dir, namespace string, opts ...Option) []models.RouteRecord {
	return NewDirectoryLoader(opts...).Load(dir, namespace)
}

// Load scans the immediate controller files of dir. Each file named <Type><ext>
// is resolved to the controller <namespace><sep>Controller<sep><Type>; files that
// do not provide that type are skipped. Any failure empties the whole result.
func (l *DirectoryLoader) Load(dir, namespace string) []models.RouteRecord {
	routes, err := l.scan(dir, namespace)
	if err != nil {
		l.opts.reporter.Warn("discarding routes from %s: %v", dir, err)
		return []models.RouteRecord{}
	}
	return routes
}

// Controllers resolves the controller types dir provides, in file order
func (l *DirectoryLoader) Controllers(dir, namespace string) ([]Controller, error) {
	files, err := utils.ListFiles(dir, utils.ExtensionFilter(l.opts.extension))
	if err != nil {
		return nil, errors.WrapFileSystemError("read directory", dir, err)
	}

	controllers := make([]Controller, 0, len(files))
	for _, file := range files {
		typeName := l.opts.typeNamer(utils.BaseNameWithoutExt(file))
		id := ControllerID(namespace, l.opts.separator, typeName)

		t, err := l.opts.typeLoader.Load(file, typeName, id)
		if err != nil {
			return nil, errors.WrapLoaderError(id, file, err)
		}
		if t == nil {
			l.opts.reporter.Debug("skipping %s: no type %s", file, typeName)
			continue
		}
		controllers = append(controllers, Controller{ID: id, File: file, Type: t})
	}
	return controllers, nil
}

func (l *DirectoryLoader) scan(dir, namespace string) ([]models.RouteRecord, error) {
	controllers, err := l.Controllers(dir, namespace)
	if err != nil {
		return nil, err
	}

	routes := make([]models.RouteRecord, 0)
	for _, c := range controllers {
		found := reflector.ExtractRoutes(c.Type, c.ID)
		for i := range found {
			if found[i].Source == "" {
				found[i].Source = c.File
			}
		}
		l.opts.reporter.Debug("%s: %d route(s)", c.ID, len(found))
		routes = append(routes, found...)
	}
	return routes, nil
}

// Controller is a controller type resolved from a source file
type Controller struct {
	ID   string
	File string
	Type *reflector.Type
}
