package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/waypoint/internal/cli"
	"github.com/toyz/waypoint/internal/config"
	"github.com/toyz/waypoint/internal/utils"
)

var version = "dev"

// globalFlags holds the persistent flags shared by every subcommand
type globalFlags struct {
	configPath    string
	verbose       bool
	quiet         bool
	output        string
	yamlDir       string
	controllerDir string
	namespace     string
	separator     string
	order         string
	camelCase     bool
	noColor       bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "waypoint",
		Short: "Discover the route table from YAML route files and @Route annotations",
		Long: `waypoint assembles an application's route table from two sources:

  - flat directories of *.yaml files, each holding a list of routes
  - controller sources whose exported methods carry @Route("<path>", name="<name>", auth=true|false)

Configuration is read from waypoint.toml when present; flags override it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the configuration file (default "+config.BaseConfigFile+")")
	pf.BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")
	pf.BoolVar(&flags.quiet, "quiet", false, "Only show errors")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: table, json, yaml, html")
	pf.StringVar(&flags.yamlDir, "yaml-dir", "", "Directory of *.yaml route files")
	pf.StringVar(&flags.controllerDir, "controller-dir", "", "Directory of controller sources")
	pf.StringVar(&flags.namespace, "namespace", "", "Namespace prefix of controller identifiers (defaults to the go.mod module path)")
	pf.StringVar(&flags.separator, "separator", "", `Identifier separator (default "\")`)
	pf.StringVar(&flags.order, "order", "", "Source order: yaml-first or code-first")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored diagnostics")
	pf.BoolVar(&flags.camelCase, "camel-case", false, "Map snake_case file names to CamelCase type names")

	rootCmd.AddCommand(newRoutesCmd(flags))
	rootCmd.AddCommand(newLintCmd(flags))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the waypoint version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "waypoint %s\n", version)
		},
	})
	return rootCmd
}

func newRoutesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "routes",
		Aliases: []string{"list"},
		Short:   "Discover and print the route table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, diagnostics, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			format, err := cli.ParseOutputFormat(cfg.Output.Format)
			if err != nil {
				return report(diagnostics, err)
			}
			return report(diagnostics, cli.NewRunner(cfg, diagnostics).ListRoutes(cmd.OutOrStdout(), format))
		},
	}
}

func newLintCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report @Route annotations that discovery would drop or misread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, diagnostics, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return report(diagnostics, cli.NewRunner(cfg, diagnostics).Lint(cmd.OutOrStdout()))
		},
	}
}

// setup loads the configuration, applies flag overrides and builds the diagnostics
func setup(cmd *cobra.Command, flags *globalFlags) (*config.Config, *utils.DiagnosticSystem, error) {
	level := utils.DiagnosticInfo
	switch {
	case flags.quiet:
		level = utils.DiagnosticError
	case flags.verbose:
		level = utils.DiagnosticDebug
	}
	diagnostics := utils.NewDiagnosticSystemWithWriter(level, cmd.ErrOrStderr())
	if flags.noColor {
		diagnostics.SetColors(false)
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, report(diagnostics, err)
	}
	applyFlags(cmd, flags, cfg)
	if err := cfg.Finalize(); err != nil {
		return nil, nil, report(diagnostics, err)
	}
	return cfg, diagnostics, nil
}

func applyFlags(cmd *cobra.Command, flags *globalFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	d := &cfg.Discovery
	if changed("yaml-dir") {
		d.YAMLDir = flags.yamlDir
	}
	if changed("controller-dir") {
		d.ControllerDir = flags.controllerDir
	}
	if changed("namespace") {
		d.Namespace = flags.namespace
	}
	if changed("separator") {
		d.Separator = flags.separator
	}
	if changed("order") {
		d.Order = flags.order
	}
	if changed("camel-case") {
		d.CamelCaseTypes = flags.camelCase
	}
	if changed("output") {
		cfg.Output.Format = flags.output
	}
}

func report(diagnostics *utils.DiagnosticSystem, err error) error {
	if err != nil {
		diagnostics.Error("%v", err)
		var hinted interface{ Suggestions() []string }
		if errors.As(err, &hinted) {
			diagnostics.Indent()
			for _, s := range hinted.Suggestions() {
				diagnostics.List("%s", s)
			}
			diagnostics.Unindent()
		}
	}
	return err
}
