package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/waypoint/pkg/waypoint"
)

func TestRenderHTML(t *testing.T) {
	html := RenderHTML(sampleRoutes())

	assert.Contains(t, html, `<ul class="routes">`)
	assert.Equal(t, 2, strings.Count(html, "<em>array</em>"))
	assert.Contains(t, html, "<strong>admin_home</strong>")
	assert.Contains(t, html, "<strong>true</strong>")
	assert.Contains(t, html, `<strong>App\Controller\Blog</strong>`)
	assert.Contains(t, html, "<strong>Index</strong>")
	assert.Contains(t, html, "methods")
}

func TestRouteFields(t *testing.T) {
	routes := sampleRoutes()

	yamlFields := routeFields(routes[0])
	keys := make([]string, 0, len(yamlFields))
	for _, f := range yamlFields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"auth", "methods", "name", "path"}, keys)
	assert.Equal(t, field{Key: "methods", Nested: []field{{Key: "0", Value: "GET"}}}, yamlFields[1])

	codeFields := routeFields(routes[1])
	assert.Equal(t, []field{
		{Key: "path", Value: "/blog"},
		{Key: "name", Value: "blog_index"},
		{Key: "auth", Value: "false"},
		{Key: "controller", Value: `App\Controller\Blog`},
		{Key: "method", Value: "Index"},
	}, codeFields)

	assert.Equal(t, []field{
		{Key: "path", Value: ""},
		{Key: "name", Value: ""},
		{Key: "auth", Value: "false"},
	}, routeFields(waypoint.RouteRecord{}))
}

func TestValueField(t *testing.T) {
	assert.Equal(t, field{Key: "k", Value: "true"}, valueField("k", true))
	assert.Equal(t, field{Key: "k", Value: "x"}, valueField("k", "x"))
	assert.Equal(t, field{Key: "k", Value: "3"}, valueField("k", 3))
	assert.Equal(t, field{Key: "k"}, valueField("k", nil))
	assert.Equal(t, field{Key: "k", Nested: []field{
		{Key: "a", Value: "1"},
		{Key: "b", Nested: []field{{Key: "0", Value: "false"}}},
	}}, valueField("k", map[string]any{"b": []any{false}, "a": 1}))
	assert.Equal(t, field{Key: "k", Nested: []field{}}, valueField("k", map[string]any{}))
}

func TestRenderHTML_NestedValues(t *testing.T) {
	html := RenderHTML([]waypoint.RouteRecord{{
		Raw: map[string]any{"name": "admin_home", "defaults": map[string]any{"page": 1}},
	}})

	assert.Equal(t, 2, strings.Count(html, "<em>array</em>"))
	assert.Contains(t, html, "<strong>1</strong>")
	assert.NotContains(t, html, "<strong></strong>")
}

func TestRenderHTML_EscapesText(t *testing.T) {
	html := RenderHTML([]waypoint.RouteRecord{
		{Path: `/search?q="a"&b=1`, Name: "<script>alert(1)</script>"},
		{Raw: map[string]any{"<key>": "R&D"}},
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<strong>&lt;script&gt;alert(1)&lt;/script&gt;</strong>")
	assert.Contains(t, html, "<strong>/search?q=&#34;a&#34;&amp;b=1</strong>")
	assert.Contains(t, html, "&lt;key&gt; => ")
	assert.Contains(t, html, "<strong>R&amp;D</strong>")
}
