package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/pkgcss"
	"github.com/yacobolo/pkgcss/internal/logging"
)

var errUsage = errors.New("usage")

const usageLine = "Usage: pkgcss [flags] SOURCE-DIR > libsbml-package-stylesheet.css"

// newRootCmd builds the command tree. Tests get a fresh tree per run so
// parsed flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgcss SOURCE-DIR",
		Short: "Generate the libSBML package stylesheet",
		Long: `Scan a libSBML package source directory for documented classes and
write a CSS stylesheet that badges links to each class with its package color.
The stylesheet is written to stdout.`,
		Example: "  pkgcss src/sbml/packages > libsbml-package-stylesheet.css",
		Args:    exactlyOneSourceDir,
		// Default behavior: run generate when no subcommand is given.
		// We must call prepare here because PreRunE of the generate
		// command is not triggered when the root command runs.
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(cmd); err != nil {
				return err
			}
			return runGenerate(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	addScanFlags(rootCmd.Flags())
	addGenerateFlags(rootCmd.Flags())

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// exactlyOneSourceDir enforces the single positional argument
func exactlyOneSourceDir(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: must be given one argument: the path to the package source dir (got %d)", errUsage, len(args))
	}
	return nil
}

// addScanFlags registers the flags that affect discovery
func addScanFlags(f *pflag.FlagSet) {
	f.String("marker", pkgcss.DefaultMarker, "Doc comment token that precedes a class name")
	f.String("header-suffix", pkgcss.DefaultHeaderSuffix, "Suffix of header files to scan")
	f.StringSlice("exclude", pkgcss.DefaultExcludeSuffixes(), "Header suffixes to skip")
	f.Bool("gitignore", false, "Skip files ignored by SOURCE-DIR/.gitignore")
	f.Bool("dedupe", false, "Drop repeated class names within a package")
}

// addGenerateFlags registers the flags that affect rendering
func addGenerateFlags(f *pflag.FlagSet) {
	f.String("link-prefix", pkgcss.DefaultLinkPrefix, "Path prefix of class documentation links")
	f.String("link-suffix", pkgcss.DefaultLinkSuffix, "Suffix of class documentation links")
	f.Bool("validate", true, "Parse the stylesheet before writing it")
	f.Bool("strict", false, "Exit 1 on any warning (CI mode)")
}

// prepare loads configuration and sets up logging on stderr
func prepare(cmd *cobra.Command) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	logging.SetupLogger(getIntWithDefault("verbose", 0), cmd.ErrOrStderr())
	return nil
}
