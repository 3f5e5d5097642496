package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/celexpr/celc/compiler"
)

func newEvalCmd() *cobra.Command {
	var bindingsPath string
	cmd := &cobra.Command{
		Use:   "eval <file.cel>",
		Short: "compile and evaluate a CEL expression against a bindings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], bindingsPath)
		},
	}
	addOptionsFlags(cmd)
	cmd.Flags().StringVar(&bindingsPath, "bindings", "", "path to a YAML file of variable bindings")
	return cmd
}

func runEval(cmd *cobra.Command, path, bindingsPath string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := loadOptions(cmd, configPath)
	if err != nil {
		return err
	}

	bindings, err := loadBindings(bindingsPath)
	if err != nil {
		return err
	}

	result, err := compiler.Compile(string(source), opts, metrics)
	if err != nil {
		return err
	}
	value, err := result.Evaluate(bindings)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", value)
	return nil
}

func loadBindings(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}
	return k.Raw(), nil
}
