package main

import (
	"fmt"
	"os"

	"github.com/nilfoss/hbetl"
	"github.com/spf13/cobra"
)

var (
	validateDialect  dialectFlag
	validateManifest string
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Compile a template for side effects only, reporting errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Var(&validateDialect, "dialect", `dialect to compile against ("base" or "sendgrid")`)
	validateCmd.Flags().StringVar(&validateManifest, "manifest", "", "path to a YAML manifest of partials/helpers")
}

func runValidate(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	manifest, err := loadOptionalManifest(validateManifest)
	if err != nil {
		return err
	}

	reg, err := dialectRegistry(validateDialect, manifest)
	if err != nil {
		return err
	}

	if _, err := hbetl.CompileWith(string(src), reg); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return errValidationFailed
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
