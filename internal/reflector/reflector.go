// Package reflector enumerates the methods of a controller type and turns
// their @Route doc comments into route records.
package reflector

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/toyz/waypoint/internal/annotations"
	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/models"
)

// Type describes a loaded controller type
type Type struct {
	Name    string
	Methods []Method
}

// Method is one method of a controller type with its raw doc comment
type Method struct {
	Name     string
	Doc      string
	Exported bool
	Pos      errors.SourceLocation
}

// PublicMethods returns the exported methods in enumeration order
func (t *Type) PublicMethods() []Method {
	if t == nil {
		return nil
	}
	var methods []Method
	for _, m := range t.Methods {
		if m.Exported {
			methods = append(methods, m)
		}
	}
	return methods
}

// ExtractRoutes builds one record per public method whose doc comment carries a
// valid @Route annotation. A nil type yields no records.
func ExtractRoutes(t *Type, controllerID string) []models.RouteRecord {
	routes := make([]models.RouteRecord, 0)
	for _, method := range t.PublicMethods() {
		match := annotations.ParseRouteAnnotation(method.Doc)
		if match == nil {
			continue
		}
		route := match.Record(controllerID, method.Name)
		route.Source = method.Pos.File
		routes = append(routes, route)
	}
	return routes
}

// FromFile collects the methods declared in file on the named receiver type.
// It returns nil when the file does not declare a type with that name.
func FromFile(fset *token.FileSet, file *ast.File, typeName string) *Type {
	if file == nil || !declaresType(file, typeName) {
		return nil
	}

	t := &Type{Name: typeName, Methods: make([]Method, 0)}
	insp := inspector.New([]*ast.File{file})
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if receiverTypeName(fn) != typeName {
			return
		}
		pos := fset.Position(fn.Pos())
		t.Methods = append(t.Methods, Method{
			Name:     fn.Name.Name,
			Doc:      rawDoc(fn.Doc),
			Exported: fn.Name.IsExported(),
			Pos:      errors.SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column},
		})
	})
	return t
}

func declaresType(file *ast.File, typeName string) bool {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == typeName {
				return true
			}
		}
	}
	return false
}

// receiverTypeName returns the base type name of a method receiver, or "" for functions
func receiverTypeName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}

// rawDoc joins the comment lines as written, markers included
func rawDoc(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	lines := make([]string, 0, len(group.List))
	for _, c := range group.List {
		lines = append(lines, c.Text)
	}
	return strings.Join(lines, "\n")
}
