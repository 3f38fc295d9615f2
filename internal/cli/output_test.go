package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/toyz/waypoint/pkg/waypoint"
)

func sampleRoutes() []waypoint.RouteRecord {
	return []waypoint.RouteRecord{
		{
			Path: "/admin", Name: "admin_home", Auth: true,
			Raw: map[string]any{"path": "/admin", "name": "admin_home", "auth": true, "methods": []any{"GET"}},
		},
		{Path: "/blog", Name: "blog_index", Controller: `App\Controller\Blog`, Method: "Index"},
	}
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{"": OutputTable, "TABLE": OutputTable, "json": OutputJSON, "yaml": OutputYAML, "html": OutputHTML} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputTable, sampleRoutes()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "PATH", "AUTH", "CONTROLLER", "METHOD"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"admin_home", "/admin", "true", "-", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"blog_index", "/blog", "false", `App\Controller\Blog`, "Index"}, strings.Fields(lines[2]))
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputJSON, sampleRoutes()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]any{"path": "/admin", "name": "admin_home", "auth": true}, decoded[0])
	assert.Equal(t, `App\Controller\Blog`, decoded[1]["controller"])

	buf.Reset()
	require.NoError(t, Render(&buf, OutputJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputYAML, sampleRoutes()))

	var decoded []waypoint.RouteRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "admin_home", decoded[0].Name)
	assert.True(t, decoded[0].Auth)
	assert.Equal(t, "Index", decoded[1].Method)
}
