package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/pkgcss"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .pkgcss.yaml config file",
		Long: `Create a .pkgcss.yaml configuration file in the current directory with the
built-in defaults, including the package color table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(defaultConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
			}

			if err := os.WriteFile(defaultConfigPath, []byte(defaultConfigYAML()), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}

const defaultConfigHead = `# pkgcss configuration
# Docs: https://github.com/yacobolo/pkgcss

# Doc comment token that precedes a class name
marker: "@class"

# Header discovery
headers:
  suffix: .h
  exclude:
    - fwd.h
    - ExtensionTypes.h

# Class documentation links: <prefix><ClassName><suffix>
link:
  prefix: org/sbml/libsbml/
  suffix: .html

dedupe: false      # drop repeated class names within a package
gitignore: false   # skip files ignored by <source>/.gitignore
validate: true     # parse the stylesheet before writing it
strict: false      # exit 1 on any warning

# Package color table, in output order
colors:
`

// defaultConfigYAML renders the starter config with the built-in color table
func defaultConfigYAML() string {
	var sb strings.Builder
	sb.WriteString(defaultConfigHead)
	for _, spec := range pkgcss.DefaultColorSpecs() {
		fmt.Fprintf(&sb, "  - name: %s\n    rgb: [%d, %d, %d]\n", spec.Name, spec.RGB[0], spec.RGB[1], spec.RGB[2])
	}
	return sb.String()
}
