package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/celexpr/celc/compiler"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file.cel>",
		Short: "recompile a CEL expression file on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
	addOptionsFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, path string) error {
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := loadOptions(cmd, configPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	recompile := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
		result, err := compiler.Compile(string(source), opts, metrics)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
			return
		}
		fmt.Println(result.Source)
	}

	recompile()
	glog.Infof("watching %s for changes", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				recompile()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			glog.Errorf("watch error: %v", err)
		}
	}
}
