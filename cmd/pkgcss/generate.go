package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/pkgcss"
	"github.com/yacobolo/pkgcss/internal/logging"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate SOURCE-DIR",
		Aliases: []string{"gen"},
		Short:   "Generate the package stylesheet (default command)",
		Long: `Discover known packages under SOURCE-DIR, extract the classes declared in
their headers and write the stylesheet to stdout.`,
		Args: exactlyOneSourceDir,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepare(cmd)
		},
		RunE: runGenerate,
	}

	addScanFlags(cmd.Flags())
	addGenerateFlags(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	result, err := pkgcss.Generate(cmd.OutOrStdout(), config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger := logging.GetLogger("cli")
	logger.Info().
		Int("known", result.PackagesKnown).
		Int("found", result.PackagesFound).
		Int("emitted", result.PackagesEmitted).
		Int("warnings", len(result.Warnings)).
		Msg("Done")

	return nil
}
