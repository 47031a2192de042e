package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/handlers/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// projectDocument is the YAML rendering of a project. It reads back with the
// YAML path table loader.
type projectDocument struct {
	BaseURL           string          `yaml:"baseUrl"`
	Paths             alias.PathTable `yaml:"paths"`
	AllowJS           bool            `yaml:"allowJs,omitempty"`
	ResolveJSONModule bool            `yaml:"resolveJsonModule,omitempty"`
	ModuleSuffixes    []string        `yaml:"moduleSuffixes,omitempty"`
}

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(sess *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective alias configuration.",
		Long: `Prints the configuration file, base directory, module options and the path
table after following the "extends" chain. --format yaml emits a standalone
path table that can be passed back with --project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, sess, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or yaml.")

	return cmd
}

func runShowCmd(
	cmd *cobra.Command,
	_ []string,
	sess *session,
	format string,
) error {
	cfg := sess.services.Inspection.Project()
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case formatYAML:
		return writeProjectYAML(out, cfg)
	case formatText:
		writeProjectText(out, cfg)
		return nil
	default:
		return fmt.Errorf("unknown format '%s' (expected %s or %s)", format, formatText, formatYAML)
	}
}

func writeProjectYAML(out io.Writer, cfg project.Config) error {
	doc := projectDocument{
		BaseURL:           cfg.BaseDirectory,
		Paths:             cfg.Paths,
		ResolveJSONModule: cfg.ModuleOptions.ResolveJSONModule,
	}
	for _, ext := range cfg.ModuleOptions.Extensions {
		if ext == ".js" {
			doc.AllowJS = true
		}
	}
	if suffixes := cfg.ModuleOptions.ModuleSuffixes; len(suffixes) != 1 || suffixes[0] != "" {
		doc.ModuleSuffixes = suffixes
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("could not encode configuration: %w", err)
	}
	return encoder.Close()
}

func writeProjectText(out io.Writer, cfg project.Config) {
	fmt.Fprintln(out, ui.HeaderColor("Project:"))
	fmt.Fprintf(out, "  %s %s\n", ui.DetailColor("config:        "), cfg.ConfigPath)
	fmt.Fprintf(out, "  %s %s\n", ui.DetailColor("baseUrl:       "), cfg.BaseDirectory)
	fmt.Fprintf(out, "  %s %s\n", ui.DetailColor("extensions:    "), strings.Join(cfg.ModuleOptions.Extensions, " "))
	fmt.Fprintf(out, "  %s %q\n", ui.DetailColor("moduleSuffixes:"), cfg.ModuleOptions.ModuleSuffixes)
	fmt.Fprintf(out, "  %s %t\n", ui.DetailColor("json modules:  "), cfg.ModuleOptions.ResolveJSONModule)

	if len(cfg.Paths) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No paths are configured."))
		return
	}
	fmt.Fprintln(out, ui.HeaderColor("Paths:"))
	for _, entry := range cfg.Paths {
		targets := make([]string, len(entry.Targets))
		for i, target := range entry.Targets {
			targets[i] = ui.TargetColor(target)
		}
		fmt.Fprintf(out, "  %s => %s\n", ui.PatternColor(entry.Pattern), strings.Join(targets, ", "))
	}
}
