package cli

import (
	"fmt"
	"path/filepath"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// defaultImporter stands in for the importing file when --importer is not given.
const defaultImporter = "index.ts"

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(sess *session) *cobra.Command {
	var importer, baseDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "resolve <specifier>...",
		Short: "Resolve module specifiers through the configured path aliases.",
		Long: `Resolves each specifier as if it were imported from --importer and prints the
absolute path it maps to. Specifiers that no alias resolves fall back to the
bundler's default resolution and are reported as "no match".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args, sess, importer, baseDir, strict)
		},
	}

	cmd.Flags().StringVarP(&importer, "importer", "i", "", "File the specifiers are imported from (default: index.ts in the working directory).")
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "Override the base directory relative targets are resolved against.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a specifier does not resolve.")

	return cmd
}

func runResolveCmd(
	cmd *cobra.Command,
	specifiers []string,
	sess *session,
	importer string,
	baseDir string,
	strict bool,
) error {
	importer = absoluteFrom(sess.settings.WorkingDir, importer, defaultImporter)
	if baseDir != "" {
		baseDir = absoluteFrom(sess.settings.WorkingDir, baseDir, "")
	}

	requests := make([]resolution.Request, len(specifiers))
	for i, specifier := range specifiers {
		requests[i] = resolution.Request{
			Specifier:     specifier,
			ImporterPath:  importer,
			BaseDirectory: baseDir,
		}
	}

	results, err := sess.services.Resolution.ResolveAll(cmd.Context(), requests)
	if err != nil {
		return fmt.Errorf("could not resolve specifiers: %w", err)
	}

	out := cmd.OutOrStdout()
	unresolved := 0
	for i, result := range results {
		if !result.Matched {
			unresolved++
			fmt.Fprintf(out, "%s %s\n", ui.WarningColor(specifiers[i]), ui.DetailColor("(no match)"))
			continue
		}
		fmt.Fprintf(out, "%s -> %s %s\n",
			ui.InfoColor(specifiers[i]),
			ui.PathColor(result.Path),
			ui.DetailColor(fmt.Sprintf("[%s]", result.Alias)))
	}

	if strict && unresolved > 0 {
		return fmt.Errorf("%d of %d specifiers did not resolve", unresolved, len(specifiers))
	}
	return nil
}

// absoluteFrom makes path absolute against dir, using fallback when path is empty.
func absoluteFrom(dir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
