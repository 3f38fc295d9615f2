package loader

import (
	"go/parser"
	"go/token"

	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/reflector"
)

// TypeLoader resolves a controller file to a type description. A nil type with
// a nil error means the file does not provide the type and is skipped.
type TypeLoader interface {
	Load(path, typeName, id string) (*reflector.Type, error)
}

// SourceTypeLoader parses Go source files and looks the type up in the AST
type SourceTypeLoader struct {
	fileSet *token.FileSet
}

// NewSourceTypeLoader creates a loader with its own file set
func NewSourceTypeLoader() *SourceTypeLoader {
	return &SourceTypeLoader{fileSet: token.NewFileSet()}
}

// Load parses path with comments and returns the description of typeName
func (l *SourceTypeLoader) Load(path, typeName, id string) (*reflector.Type, error) {
	file, err := parser.ParseFile(l.fileSet, path, nil, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}
	return reflector.FromFile(l.fileSet, file, typeName), nil
}
