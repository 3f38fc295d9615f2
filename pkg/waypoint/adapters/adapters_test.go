package adapters

import (
	"github.com/toyz/waypoint/pkg/waypoint"
)

func testTable() *waypoint.Table {
	return &waypoint.Table{Routes: []waypoint.RouteRecord{
		{Path: "/admin", Name: "admin_home", Auth: true},
		{Path: "/blog/{slug}", Name: "blog_show", Controller: `App\Controller\Blog`, Method: "Show"},
		{Path: "/files/{*}", Name: "files"},
		{Path: "", Name: "pathless"},
		{Path: "/unresolved", Name: "unresolved"},
	}}
}

// duplicateTable repeats /blog; discovery keeps both records
func duplicateTable() *waypoint.Table {
	return &waypoint.Table{Routes: []waypoint.RouteRecord{
		{Path: "/blog", Name: "blog_index"},
		{Path: "/blog", Name: "blog_again"},
		{Path: "/blog/{id}", Name: "blog_show"},
		{Path: "/blog/{id}", Name: "blog_show_again"},
	}}
}
