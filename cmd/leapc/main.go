// Command leapc is the CLI front end over the core packages (spec.md §6:
// "CLI (external). Not specified."). It is the external collaborator that
// wires the loader, the recursion analyzer, and the formatter together,
// grounded on the teacher's migrate/main.go cobra command tree and
// kdlc/main.go's pflag usage.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/format"
	"github.com/rsk700/leap-lang/loader"
	"github.com/rsk700/leap-lang/stdtypes"
)

var (
	aliasFile string
	// quiet suppresses the "duplicate type name" warning check emits for
	// shadowed handles (spec.md §9's open-ended duplicate-name policy).
	quiet bool
)

func main() {
	root := &cobra.Command{
		Use:   "leapc",
		Short: "leapc formats and checks leap-lang schema files",
	}
	// PersistentFlags returns the *pflag.FlagSet cobra embeds in every
	// command, typed explicitly here the way kdlc/main.go reaches for
	// pflag directly rather than through cobra's shorthand.
	var flags *pflag.FlagSet = root.PersistentFlags()
	flags.StringVar(&aliasFile, "alias-file", "", "YAML file mapping identifier to alias")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress duplicate-type-name warnings")

	root.AddCommand(formatCmd())
	root.AddCommand(checkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format FILE...",
		Short: "print each file in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				contents, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				out, err := format.Format(string(contents))
				if err != nil {
					log.Printf("%s: %v", path, err)
					return err
				}
				fmt.Print(out)
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "build a spec from the given files plus the standard library and report recursive properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdlib, err := stdlibFragment()
			if err != nil {
				return err
			}

			drv := loader.Driver{}
			spec, shadowed, err := drv.LoadPaths(args, stdlib...)
			if err != nil {
				if pe, ok := err.(*loader.PathError); ok {
					fmt.Fprintln(os.Stderr, pe.Report())
					os.Exit(1)
				}
				return err
			}
			if !quiet {
				for _, h := range shadowed {
					log.Printf("warning: duplicate type name shadows handle %d", h)
				}
			}

			if aliasFile != "" {
				aliases, err := loadAliases(aliasFile)
				if err != nil {
					return err
				}
				spec = spec.WithAliases(aliases)
			}

			spec.MarkRecursiveProps()

			for _, h := range spec.IterHandles() {
				d := spec.Get(h)
				for _, p := range d.Props() {
					if p.IsRecursive {
						fmt.Printf("%s.%s is recursive\n", d.GetName().Get(), p.Name.Get())
					}
				}
			}
			return nil
		},
	}
}

func stdlibFragment() ([]ast.DeclaredType, error) {
	trees, err := parseAllFragment(stdtypes.Source)
	if err != nil {
		return nil, err
	}
	return trees, nil
}
