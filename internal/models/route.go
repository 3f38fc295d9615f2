package models

// RouteRecord is one entry of the discovered route table
type RouteRecord struct {
	Path       string `json:"path" yaml:"path"`                                 // URL pattern
	Name       string `json:"name" yaml:"name"`                                 // logical route identifier
	Auth       bool   `json:"auth" yaml:"auth"`                                 // whether the route requires authentication
	Controller string `json:"controller,omitempty" yaml:"controller,omitempty"` // fully-qualified controller identifier
	Method     string `json:"method,omitempty" yaml:"method,omitempty"`         // controller method carrying the annotation

	Source string `json:"-" yaml:"-"` // file the record was read from
	Raw    any    `json:"-" yaml:"-"` // decoded YAML entry, untouched
}

// FromCode reports whether the record was discovered from a controller annotation
func (r RouteRecord) FromCode() bool {
	return r.Controller != "" && r.Method != ""
}

// AnnotationMatch holds the fields extracted from a single @Route annotation
type AnnotationMatch struct {
	Path string
	Name string
	Auth bool
}

// Record folds the match into a RouteRecord owned by the given controller
func (m AnnotationMatch) Record(controller, method string) RouteRecord {
	return RouteRecord{
		Path:       m.Path,
		Name:       m.Name,
		Auth:       m.Auth,
		Controller: controller,
		Method:     method,
	}
}
