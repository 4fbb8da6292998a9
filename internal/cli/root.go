// Package cli provides the command-line interface for Tonemint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tonemint/tonemint/internal/service"
	"github.com/tonemint/tonemint/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tonemint",
	Short: "A semantic theme token generator",
	Long: `Tonemint assigns colors to semantic UI roles and derives complete,
accessibility-compliant theme token sets from a small seed of brand colors.

Give it a primary color or a palette and it produces light, dark,
high-contrast, and colorblind-friendly variants, repairs colors that miss
their WCAG contrast targets, and reports on compliance and brand harmony.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Accept American spellings for flags named with British ones.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(extractCmd)
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// normalizeFlags maps American flag spellings onto the canonical names.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colors" {
		name = "colours"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds an hclog logger honouring the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonemint",
		Level:  level,
		Output: os.Stderr,
	})
}

// newService builds the shared theme service for a command invocation.
func newService(cmd *cobra.Command) *service.Service {
	return service.New(newLogger(cmd))
}
