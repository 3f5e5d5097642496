package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celexpr/celc/compiler"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file.cel>",
		Short: "compile a CEL expression and print its diagnostic rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0])
		},
	}
	addOptionsFlags(cmd)
	return cmd
}

func runCompile(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := loadOptions(cmd, configPath)
	if err != nil {
		return err
	}

	result, err := compiler.Compile(string(source), opts, metrics)
	if err != nil {
		return err
	}
	fmt.Println(result.Source)
	return nil
}
