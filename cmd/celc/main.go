package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var metrics = newCLIMetrics()

func main() {
	// glog parses its flags from the flag package, not pflag; cobra's own
	// flags live on a separate FlagSet, so both coexist.
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "celc",
		Short: "celc compiles and evaluates CEL expressions",
	}
	root.AddCommand(newCompileCmd(), newEvalCmd(), newWatchCmd())
	return root
}
