// Command promptset-gen generates a typed PromptFactory from a directory of
// prompt YAML files. Rerun it whenever the prompt files change.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/okirillov/promptset"
	"github.com/okirillov/promptset/factorygen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dir     string
		out     string
		pkgName string
	)
	cmd := &cobra.Command{
		Use:          "promptset-gen",
		Short:        "Generate a typed prompt factory from a prompt directory",
		Long:         "promptset-gen loads and validates a directory of prompt YAML files and writes a Go source file with one accessor method per prompt template and prompt list.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := promptset.New(dir)
			if err != nil {
				return err
			}
			if err := factorygen.WriteFile(c, pkgName, out); err != nil {
				return err
			}
			cmd.Printf("generated %s from %s\n", out, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "prompts", "directory containing prompt YAML files")
	cmd.Flags().StringVar(&out, "out", "prompts/factory.go", "output path for the generated source file")
	cmd.Flags().StringVar(&pkgName, "package", "prompts", "package name for the generated file")
	return cmd
}
