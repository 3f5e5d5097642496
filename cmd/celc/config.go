// Package main is the celc command-line driver: compile, eval, and watch
// subcommands over the compiler package.
package main

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/celexpr/celc/compiler"
)

// loadOptions builds a compiler.Options from, in increasing priority: an
// optional YAML config file, then any flag the user explicitly set on cmd.
func loadOptions(cmd *cobra.Command, configPath string) (compiler.Options, error) {
	k := koanf.New(".")

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return compiler.Options{}, err
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return compiler.Options{}, err
		}
	}

	opts := compiler.Options{
		Container:     k.String("container"),
		DisableMacros: k.Bool("disableMacros"),
	}
	if exts := k.Strings("extensions"); len(exts) > 0 {
		opts.Extensions = exts
	}

	flags := cmd.Flags()
	if flags.Changed("container") {
		opts.Container, _ = flags.GetString("container")
	}
	if flags.Changed("disable-macros") {
		opts.DisableMacros, _ = flags.GetBool("disable-macros")
	}
	if flags.Changed("extensions") {
		raw, _ := flags.GetString("extensions")
		opts.Extensions = strings.Split(raw, ",")
	}

	return opts, nil
}

func addOptionsFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("container", "", "dotted namespace prefix for identifier resolution")
	cmd.Flags().Bool("disable-macros", false, "disable has/all/exists/map/filter/optMap macro expansion")
	cmd.Flags().String("extensions", "", "comma-separated extension namespaces (default: all)")
}
