package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/algebra/adt"
	"github.com/npillmayer/algebra/adt/adtdbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

type options struct {
	namespace  string
	verbose    bool
	production bool
	tree       bool
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "adt",
		Short:         "Inspect algebraic data type declarations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				tracer().SetTraceLevel(tracing.LevelDebug)
				tracing.Select("algebra.adt").SetTraceLevel(tracing.LevelDebug)
			}
			if opts.production {
				adt.SetMode(adt.Production)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.namespace, "namespace", "n", "adt", "namespace of declared types")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace at debug level")
	cmd.PersistentFlags().BoolVar(&opts.production, "production", false, "run in production mode")
	cmd.AddCommand(describeCmd(opts), newCmd(opts))
	return cmd
}

func describeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <declaration>",
		Short: "Print the variants and fields of a declaration",
		Long: `Print the variants and fields of a declaration, together with its
structural signature.
Example:
$ adt describe "Shape = Circle radius | Rect width height | Empty"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := adt.Parse(opts.namespace, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, adtdbg.Declaration(typ))
			fmt.Fprintf(out, "signature: %s\n", typ.Signature())
			return nil
		},
	}
}

func newCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <declaration> <variant> [values...]",
		Short: "Construct an instance and print its representations",
		Long: `Construct an instance of a variant from positional field values and print
its textual and JSON representations. Values are parsed as JSON, falling back
to plain strings.
Example:
$ adt new "Either = Left value | Right value" Right 42`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := adt.Parse(opts.namespace, args[0])
			if err != nil {
				return err
			}
			values := make([]any, len(args)-2)
			for i, arg := range args[2:] {
				values[i] = parseValue(arg)
			}
			inst, err := typ.New(args[1], values...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, inst.String())
			data, err := json.Marshal(inst)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			if opts.tree {
				fmt.Fprint(out, adtdbg.Instance(inst))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.tree, "tree", "t", false, "print the instance as a tree")
	return cmd
}

func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		tracer().Debugf("argument %q is not JSON, taking it as a string", arg)
		return arg
	}
	return v
}
