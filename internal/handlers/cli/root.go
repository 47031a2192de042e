package cli

import (
	"fmt"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/repositories/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Services are the core services the subcommands run against.
type Services struct {
	Inspection ports.MappingInspectionService
	Resolution ports.PathResolutionService
}

// SettingsLoader resolves the effective settings once flags are parsed.
type SettingsLoader func(flags *pflag.FlagSet) (settings.Settings, error)

// ServicesFactory builds the services for the given settings. Configuration
// errors surface here, before any subcommand runs.
type ServicesFactory func(s settings.Settings) (*Services, error)

// session carries what PersistentPreRunE prepared to the subcommands.
type session struct {
	settings settings.Settings
	services *Services
}

func NewRootCommand(version string, loadSettings SettingsLoader, newServices ServicesFactory) *cobra.Command {
	if loadSettings == nil {
		panic("loadSettings cannot be nil")
	}
	if newServices == nil {
		panic("newServices cannot be nil")
	}

	sess := &session{}
	rootCmd := &cobra.Command{
		Use:   "tspaths",
		Short: "tspaths resolves module specifiers through tsconfig path aliases.",
		Long: `tspaths reads compilerOptions.paths from a tsconfig.json (or a YAML path table)
and resolves aliased module specifiers the way a bundler plugin would.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}
			services, err := newServices(s)
			if err != nil {
				return err
			}
			if services == nil || services.Inspection == nil || services.Resolution == nil {
				return fmt.Errorf("services not initialized for command %s", cmd.Name())
			}
			sess.settings = s
			sess.services = services
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP(settings.KeyProject, "p", "", "Path to tsconfig.json or a YAML path table (default: nearest tsconfig.json).")
	rootCmd.PersistentFlags().String(settings.KeyLogLevel, "warn", "Diagnostics level: none, warn or debug.")
	rootCmd.PersistentFlags().Int(settings.KeyConcurrency, 0, "Maximum number of specifiers resolved in parallel (default: number of CPUs).")

	rootCmd.AddCommand(NewResolveCommand(sess))
	rootCmd.AddCommand(NewListCommand(sess))
	rootCmd.AddCommand(NewShowCommand(sess))

	return rootCmd
}
