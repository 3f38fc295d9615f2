package utils

import (
	"bytes"
	"strings"
	"testing"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(level, &buf)
	d.SetColors(false)
	d.SetShowTime(false)
	return d, &buf
}

func TestDiagnosticSystem_Levels(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticWarn)

	d.Error("e %d", 1)
	d.Warn("w %d", 2)
	d.Info("i")
	d.Debug("d")

	got := buf.String()
	if got != "[ERROR] e 1\n[WARN] w 2\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestDiagnosticSystem_Silent(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticSilent)
	d.Error("nope")
	d.Summary("title", []string{"a"}, map[string]interface{}{"a": 1})
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestDiagnosticSystem_ListIndent(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticInfo)

	d.Section("Routes")
	d.Indent()
	d.List("first")
	d.Unindent()
	d.Unindent()
	d.List("second")

	want := "Routes\n  - first\n- second\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestDiagnosticSystem_SummaryOrder(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticInfo)
	d.Summary("Done", []string{"b", "a"}, map[string]interface{}{"a": 1, "b": 2})

	want := "\nDone\n   b: 2\n   a: 1\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestDiagnosticSystem_Colorize(t *testing.T) {
	d, _ := newTestDiagnostics(DiagnosticInfo)
	if got := d.Colorize(0, "plain"); got != "plain" {
		t.Errorf("Expected uncolored text, got %q", got)
	}

	d.SetColors(true)
	if got := d.Colorize(31, "red"); !strings.Contains(got, "\x1b[31m") {
		t.Errorf("Expected an ANSI escape, got %q", got)
	}
}

func TestDiagnosticSystem_IsReporter(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticDebug)
	var r Reporter = d
	r.Debug("skipping %s", "x.go")
	if !strings.Contains(buf.String(), "[DEBUG] skipping x.go") {
		t.Errorf("Unexpected output: %q", buf.String())
	}

	NopReporter().Warn("ignored")
}
