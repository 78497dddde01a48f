package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/nilfoss/hbetl"
	"github.com/spf13/cobra"
)

var (
	watchDialect  dialectFlag
	watchManifest string
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Recompile every *.hbs file under dir on change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Var(&watchDialect, "dialect", `dialect to compile against ("base" or "sendgrid")`)
	watchCmd.Flags().StringVar(&watchManifest, "manifest", "", "path to a YAML manifest of partials/helpers")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s for *.hbs changes\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".hbs") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			recompileOne(cmd, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
}

func recompileOne(cmd *cobra.Command, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}

	manifest, err := loadOptionalManifest(watchManifest)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}

	reg, err := dialectRegistry(watchDialect, manifest)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}

	if _, err := hbetl.CompileWith(string(src), reg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
}
