package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeNames(t *testing.T, dir string) []string {
	t.Helper()
	var names []string
	for _, r := range LoadFromYaml(dir) {
		names = append(names, r.Name)
	}
	return names
}

func TestLoadFromYaml_FileThenListOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.yaml": "- {path: /b1, name: b1}\n- {path: /b2, name: b2}\n",
		"a.yaml": "- path: /a1\n  name: a1\n  auth: true\n- path: /a2\n  name: a2\n",
	})

	routes := LoadFromYaml(dir)
	require.Len(t, routes, 4)
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, routeNames(t, dir))
	assert.True(t, routes[0].Auth)
	assert.False(t, routes[1].Auth)
	assert.Equal(t, "/b2", routes[3].Path)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), routes[0].Source)
	assert.Empty(t, routes[0].Controller)
}

func TestLoadFromYaml_InvalidFileBlanksDirectory(t *testing.T) {
	dir := t.TempDir()
	reporter := &recordingReporter{}
	writeFiles(t, dir, map[string]string{
		"good.yaml":   "- {path: /ok, name: ok}\n",
		"broken.yaml": "- path: /x\n  name: [unclosed\n",
	})

	routes := LoadFromYaml(dir, WithReporter(reporter))
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
	require.Len(t, reporter.warnings, 1)
	assert.Contains(t, reporter.warnings[0], "broken.yaml")
}

func TestLoadFromYaml_MultipleDocumentsBlankDirectory(t *testing.T) {
	dir := t.TempDir()
	reporter := &recordingReporter{}
	writeFiles(t, dir, map[string]string{
		"good.yaml":  "- {path: /ok, name: ok}\n",
		"multi.yaml": "- {path: /one, name: one}\n---\n- {path: /two, name: two}\n",
	})

	routes := LoadFromYaml(dir, WithReporter(reporter))
	assert.Empty(t, routes)
	require.Len(t, reporter.warnings, 1)
	assert.Contains(t, reporter.warnings[0], "multiple YAML documents are not supported")
}

func TestLoadFromYaml_TrailingEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"routes.yaml": "- {path: /one, name: one}\n---\n",
	})

	assert.Equal(t, []string{"one"}, routeNames(t, dir))
}

func TestLoadFromYaml_OnlyDotYaml(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"routes.yaml":        "- {path: /a, name: a}\n",
		"routes.yml":         "- {path: /b, name: b}\n",
		"routes.YAML":        "- {path: /c, name: c}\n",
		"notes.txt":          "not yaml: [",
		"nested/deep.yaml":   "- {path: /d, name: d}\n",
		"routes.yaml.backup": "- {path: /e, name: e}\n",
	})

	assert.Equal(t, []string{"a"}, routeNames(t, dir))
}

func TestLoadFromYaml_MissingDirectory(t *testing.T) {
	routes := LoadFromYaml(filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestLoadFromYaml_PassesEntriesThrough(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"mixed.yaml": `- path: /typed
  name: typed
  auth: "yes"
  controller: App\Controller\Typed
  methods: [GET, POST]
- just a string
- 42
- name: no_path
`,
	})

	routes := LoadFromYaml(dir)
	require.Len(t, routes, 4)

	assert.Equal(t, "/typed", routes[0].Path)
	assert.False(t, routes[0].Auth, "auth is only read when it is a boolean")
	assert.Equal(t, `App\Controller\Typed`, routes[0].Controller)
	raw, ok := routes[0].Raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "yes", raw["auth"])
	assert.Equal(t, []any{"GET", "POST"}, raw["methods"])

	assert.Equal(t, "just a string", routes[1].Raw)
	assert.Empty(t, routes[1].Name)
	assert.Equal(t, 42, routes[2].Raw)
	assert.Equal(t, "no_path", routes[3].Name)
	assert.Empty(t, routes[3].Path)
}

func TestLoadFromYaml_DocumentShapes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"1-mapping.yaml": "home: {path: /, name: home}\nabout: {path: /about, name: about}\n",
		"2-empty.yaml":   "",
		"3-scalar.yaml":  "just text\n",
		"4-comment.yaml": "# nothing yet\n",
		"5-list.yaml":    "- {path: /last, name: last}\n",
	})

	assert.Equal(t, []string{"home", "about", "last"}, routeNames(t, dir))
}

func TestYAMLLoader_Reusable(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"r.yaml": "- {path: /a, name: a}\n"})

	l := NewYAMLLoader()
	first := l.Load(dir)
	writeFiles(t, dir, map[string]string{"s.yaml": "- {path: /b, name: b}\n"})
	second := l.Load(dir)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2, "every call re-reads the directory")
}
