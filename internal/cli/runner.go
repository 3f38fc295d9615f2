package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/toyz/waypoint/internal/annotations"
	"github.com/toyz/waypoint/internal/config"
	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/loader"
	"github.com/toyz/waypoint/internal/utils"
	"github.com/toyz/waypoint/pkg/waypoint"
)

// Summary describes the last discovery run
type Summary struct {
	RunID      string
	YAMLRoutes int
	CodeRoutes int
	Duplicates []string
	Elapsed    time.Duration
}

// Runner coordinates discovery for the CLI
type Runner struct {
	cfg            *config.Config
	diagnostics    *utils.DiagnosticSystem
	moduleResolver *ModuleResolver
	summary        Summary
}

// NewRunner creates a runner for a finalized configuration
func NewRunner(cfg *config.Config, diagnostics *utils.DiagnosticSystem) *Runner {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	return &Runner{
		cfg:            cfg,
		diagnostics:    diagnostics,
		moduleResolver: NewModuleResolver(),
	}
}

// GetSummary returns the summary of the last Discover call
func (r *Runner) GetSummary() Summary {
	return r.summary
}

// Options translates the configuration into discovery options
func (r *Runner) Options() (waypoint.Options, error) {
	d := r.cfg.Discovery
	order, ok := waypoint.ParseOrder(d.Order)
	if !ok {
		return waypoint.Options{}, errors.Newf(errors.ConfigurationErrorCode, "invalid order %q", d.Order)
	}

	namespace := d.Namespace
	if d.ControllerDir != "" {
		ns, err := r.moduleResolver.ResolveNamespace(d.Namespace, d.ControllerDir)
		if err != nil {
			return waypoint.Options{}, err
		}
		namespace = ns
	}

	return waypoint.Options{
		YAMLDir:       d.YAMLDir,
		ControllerDir: d.ControllerDir,
		Namespace:     namespace,
		Separator:     d.Separator,
		Extension:     d.Extension,
		Order:         order,
		CamelCase:     d.CamelCaseTypes,
		Reporter:      r.diagnostics,
	}, nil
}

// Discover runs discovery and records a summary
func (r *Runner) Discover() (*waypoint.Table, error) {
	opts, err := r.Options()
	if err != nil {
		return nil, err
	}
	if opts.YAMLDir == "" && opts.ControllerDir == "" {
		return nil, errors.New(errors.ConfigurationErrorCode, "nothing to scan").
			WithSuggestion("set --yaml-dir and/or --controller-dir, or discovery.yaml_dir / discovery.controller_dir in " + config.BaseConfigFile)
	}

	start := time.Now()
	r.diagnostics.Verbose("scanning yaml=%q controllers=%q namespace=%q", opts.YAMLDir, opts.ControllerDir, opts.Namespace)

	table := waypoint.Discover(opts)

	yamlCount, codeCount := 0, 0
	for _, route := range table.Routes {
		if route.FromCode() {
			codeCount++
		} else {
			yamlCount++
		}
	}
	r.summary = Summary{
		RunID:      table.RunID.String(),
		YAMLRoutes: yamlCount,
		CodeRoutes: codeCount,
		Duplicates: table.Duplicates(),
		Elapsed:    time.Since(start),
	}

	for _, name := range r.summary.Duplicates {
		r.diagnostics.Warn("route name %q is defined more than once", name)
	}
	if table.Len() == 0 {
		r.diagnostics.Warn("no routes discovered; check the directories and run with --verbose")
	}
	return table, nil
}

// ListRoutes discovers the table and renders it to w
func (r *Runner) ListRoutes(w io.Writer, format OutputFormat) error {
	table, err := r.Discover()
	if err != nil {
		return err
	}
	if err := Render(w, format, table.Routes); err != nil {
		return errors.WrapWithOperation("render", string(format)+" output", err)
	}

	keys := []string{"Run", "YAML routes", "Code routes", "Duplicate names", "Elapsed"}
	r.diagnostics.Summary("Discovery complete", keys, map[string]interface{}{
		"Run":             r.summary.RunID,
		"YAML routes":     r.summary.YAMLRoutes,
		"Code routes":     r.summary.CodeRoutes,
		"Duplicate names": len(r.summary.Duplicates),
		"Elapsed":         r.summary.Elapsed.Round(time.Microsecond),
	})
	return nil
}

// Lint checks the annotations of the controller directory and prints the
// findings to w. It returns a lint error when any finding is an error.
func (r *Runner) Lint(w io.Writer) error {
	opts, err := r.Options()
	if err != nil {
		return err
	}
	if opts.ControllerDir == "" {
		return errors.New(errors.ConfigurationErrorCode, "lint needs a controller directory").
			WithSuggestion("set --controller-dir or discovery.controller_dir")
	}

	loaderOpts := []loader.Option{
		loader.WithExtension(opts.Extension),
		loader.WithSeparator(opts.Separator),
		loader.WithReporter(r.diagnostics),
	}
	if opts.CamelCase {
		loaderOpts = append(loaderOpts, loader.WithTypeNamer(loader.CamelCaseTypeNamer))
	}

	r.diagnostics.Section("Linting " + opts.ControllerDir)
	findings, err := loader.NewDirectoryLoader(loaderOpts...).LintDirectory(opts.ControllerDir, opts.Namespace)
	if err != nil {
		return err
	}

	failures := errors.NewMultipleErrors()
	for _, f := range findings {
		attr := color.FgYellow
		if f.Severity == annotations.SeverityError {
			attr = color.FgRed
			failures.Add(f.Err())
		}
		fmt.Fprintln(w, r.diagnostics.Colorize(attr, f.String()))
	}

	if len(findings) == 0 {
		r.diagnostics.Success("no annotation problems found in %s", opts.ControllerDir)
	} else {
		r.diagnostics.Info("%d finding(s), %d error(s)", len(findings), failures.Count())
	}
	if err := failures.ErrorOrNil(); err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	return nil
}
