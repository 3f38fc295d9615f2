package annotations

import (
	"regexp"
	"strings"

	"github.com/toyz/waypoint/internal/models"
)

// RouteMarker opens a route annotation inside a doc comment
const RouteMarker = "@Route"

// routePattern recognises @Route("<path>" ... name="<name>" ... auth=<true|false>).
// The path must come first, name must follow it, and auth is only honoured after name.
var routePattern = regexp.MustCompile(`@Route\("(.*?)"[^)]*name="(.*?)"(?:[^)]*auth=(true|false))?`)

// ParseRouteAnnotation extracts the first @Route annotation from a doc comment.
// It returns nil when the comment carries no annotation with both a path and a name.
func ParseRouteAnnotation(doc string) *models.AnnotationMatch {
	if !strings.Contains(doc, RouteMarker) {
		return nil
	}

	groups := routePattern.FindStringSubmatchIndex(doc)
	if len(groups) < 6 || groups[2] < 0 || groups[4] < 0 {
		return nil
	}

	match := &models.AnnotationMatch{
		Path: doc[groups[2]:groups[3]],
		Name: doc[groups[4]:groups[5]],
	}
	if len(groups) >= 8 && groups[6] >= 0 {
		match.Auth = doc[groups[6]:groups[7]] == "true"
	}
	return match
}

// CountRouteMarkers reports how many @Route markers appear in a doc comment
func CountRouteMarkers(doc string) int {
	return strings.Count(doc, RouteMarker)
}
