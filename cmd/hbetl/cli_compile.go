package main

import (
	"os"

	"github.com/nilfoss/hbetl"
	"github.com/spf13/cobra"
)

var (
	compileDialect  dialectFlag
	compileManifest string
	compileOut      string
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Transpile a template file to ETL",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Var(&compileDialect, "dialect", `dialect to compile against ("base" or "sendgrid")`)
	compileCmd.Flags().StringVar(&compileManifest, "manifest", "", "path to a YAML manifest of partials/helpers")
	compileCmd.Flags().StringVar(&compileOut, "out", "", "write result to this file instead of stdout")
}

func runCompile(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	manifest, err := loadOptionalManifest(compileManifest)
	if err != nil {
		return err
	}

	reg, err := dialectRegistry(compileDialect, manifest)
	if err != nil {
		return err
	}

	out, err := hbetl.CompileWith(string(src), reg)
	if err != nil {
		return err
	}

	if compileOut == "" {
		_, err = cmd.OutOrStdout().Write([]byte(out))
		return err
	}
	return os.WriteFile(compileOut, []byte(out), 0o644)
}

func loadOptionalManifest(path string) (*hbetl.Manifest, error) {
	if path == "" {
		return nil, nil
	}
	m, err := hbetl.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
