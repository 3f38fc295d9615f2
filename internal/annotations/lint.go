package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/waypoint/internal/errors"
)

// Severity ranks a lint finding
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the lower-case severity label
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single problem reported for a route annotation
type Finding struct {
	Severity Severity
	Location errors.SourceLocation
	Target   string // method the annotation is attached to
	Message  string
}

// Err converts the finding into a lint error
func (f Finding) Err() *errors.BaseError {
	err := errors.NewLintError(f.Location, "%s", f.Message).
		WithContext("severity", f.Severity.String())
	if f.Target != "" {
		err.WithContext("target", f.Target)
	}
	return err
}

// String renders the finding on one line
func (f Finding) String() string {
	var b strings.Builder
	if !f.Location.IsEmpty() {
		b.WriteString(f.Location.String())
		b.WriteString(": ")
	}
	b.WriteString(f.Severity.String())
	b.WriteString(": ")
	if f.Target != "" {
		b.WriteString(f.Target)
		b.WriteString(": ")
	}
	b.WriteString(f.Message)
	return b.String()
}

// RouteAnnotation is the full argument list of one @Route annotation
type RouteAnnotation struct {
	Pos  lexer.Position
	Path string      `parser:"Marker '(' @String"`
	Args []*RouteArg `parser:"( ','? @@ )* ','? ')'"`
}

// RouteArg is a single key=value argument
type RouteArg struct {
	Pos   lexer.Position
	Key   string    `parser:"@Ident '='"`
	Value *ArgValue `parser:"@@"`
}

// ArgValue holds the raw value of an argument
type ArgValue struct {
	String *string `parser:"  @String"`
	Bool   *string `parser:"| @Bool"`
	Number *string `parser:"| @Number"`
	Ident  *string `parser:"| @Ident"`
}

// Raw returns the value as written
func (v *ArgValue) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return *v.String
	case v.Bool != nil:
		return *v.Bool
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `@Route`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Bool", Pattern: `\b(true|false)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[(),=]`},
	{Name: "Decoration", Pattern: `//|/?\*+/?`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `.`},
})

var routeGrammar = participle.MustBuild[RouteAnnotation](
	participle.Lexer(routeLexer),
	participle.Elide("Whitespace", "Decoration"),
	participle.UseLookahead(2),
)

// knownKeys lists the arguments discovery understands
var knownKeys = map[string]bool{"name": true, "auth": true}

// ParseRouteArguments parses the first @Route annotation of doc into its argument list
func ParseRouteArguments(doc string) (*RouteAnnotation, error) {
	idx := strings.Index(doc, RouteMarker)
	if idx < 0 {
		return nil, fmt.Errorf("no %s annotation", RouteMarker)
	}
	annotation, err := routeGrammar.ParseString("", doc[idx:], participle.AllowTrailing(true))
	if err != nil {
		return nil, err
	}
	annotation.Path = unquote(annotation.Path)
	return annotation, nil
}

// Lint inspects the route annotation in doc and reports anything discovery would
// silently drop or misread. It never changes what ParseRouteAnnotation returns.
func Lint(doc string, loc errors.SourceLocation, target string) []Finding {
	count := CountRouteMarkers(doc)
	if count == 0 {
		return nil
	}

	var findings []Finding
	report := func(sev Severity, format string, args ...interface{}) {
		findings = append(findings, Finding{
			Severity: sev,
			Location: loc,
			Target:   target,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	match := ParseRouteAnnotation(doc)
	parsed, err := ParseRouteArguments(doc)
	if err != nil {
		report(SeverityError, "malformed %s annotation: %v", RouteMarker, err)
	} else {
		findings = append(findings, lintArguments(parsed, loc, target)...)
	}
	if match == nil && !hasSeverity(findings, SeverityError) {
		report(SeverityError, "annotation is not discoverable: expected %s(\"<path>\", name=\"<name>\")", RouteMarker)
	}
	if match != nil && match.Path == "" {
		report(SeverityWarning, "route %q has an empty path", match.Name)
	}
	if count > 1 {
		report(SeverityWarning, "only the first %s annotation is used, %d more ignored", RouteMarker, count-1)
	}
	return findings
}

func lintArguments(a *RouteAnnotation, loc errors.SourceLocation, target string) []Finding {
	var findings []Finding
	report := func(sev Severity, format string, args ...interface{}) {
		findings = append(findings, Finding{Severity: sev, Location: loc, Target: target, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]int)
	for i, arg := range a.Args {
		if _, dup := seen[arg.Key]; dup {
			report(SeverityWarning, "argument %q given more than once, the first one wins", arg.Key)
			continue
		}
		seen[arg.Key] = i

		if !knownKeys[arg.Key] {
			report(SeverityWarning, "unknown argument %q is ignored", arg.Key)
			continue
		}
		switch arg.Key {
		case "name":
			if arg.Value.String == nil {
				report(SeverityError, "name must be a double-quoted string, got %s", arg.Value.Raw())
			}
		case "auth":
			if arg.Value.Bool == nil {
				report(SeverityWarning, "auth must be the literal true or false, got %s; treated as false", arg.Value.Raw())
			}
		}
	}

	nameIdx, hasName := seen["name"]
	authIdx, hasAuth := seen["auth"]
	if !hasName {
		report(SeverityError, "missing name argument")
	}
	if hasName && hasAuth && authIdx < nameIdx {
		report(SeverityWarning, "auth placed before name is ignored; move it after name")
	}
	return findings
}

func hasSeverity(findings []Finding, sev Severity) bool {
	for _, f := range findings {
		if f.Severity == sev {
			return true
		}
	}
	return false
}

func unquote(s string) string {
	if v, err := strconv.Unquote(s); err == nil {
		return v
	}
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
