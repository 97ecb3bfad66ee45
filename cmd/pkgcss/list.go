package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/pkgcss"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list SOURCE-DIR",
		Short: "Show the packages and classes that would be styled",
		Long: `Run discovery without rendering: print each known package found under
SOURCE-DIR with its color, header count and class names, followed by any
warnings.`,
		Args: exactlyOneSourceDir,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildConfig(args[0])
			if err != nil {
				return err
			}

			scan, err := pkgcss.Scan(config)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			format := pkgcss.DetermineOutputFormat(getStringWithDefault("list.format", string(pkgcss.OutputText)))
			return pkgcss.WriteOutput(cmd.OutOrStdout(), scan, format, getBoolWithDefault("color", false))
		},
	}

	addScanFlags(cmd.Flags())
	cmd.Flags().String("output-format", string(pkgcss.OutputText), "Output format: text|json")
	return cmd
}
