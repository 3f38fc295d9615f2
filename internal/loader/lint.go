package loader

import (
	"github.com/toyz/waypoint/internal/annotations"
)

// LintDirectory runs the annotation linter over every method of every controller
// the directory provides. Unlike Load it returns the scan error instead of
// swallowing it.
func (l *DirectoryLoader) LintDirectory(dir, namespace string) ([]annotations.Finding, error) {
	controllers, err := l.Controllers(dir, namespace)
	if err != nil {
		return nil, err
	}

	var findings []annotations.Finding
	for _, c := range controllers {
		for _, method := range c.Type.Methods {
			target := c.ID + "::" + method.Name
			found := annotations.Lint(method.Doc, method.Pos, target)
			if !method.Exported && annotations.CountRouteMarkers(method.Doc) > 0 {
				found = append(found, annotations.Finding{
					Severity: annotations.SeverityWarning,
					Location: method.Pos,
					Target:   target,
					Message:  "method is not exported; its annotation is never discovered",
				})
			}
			findings = append(findings, found...)
		}
	}
	return findings, nil
}
