// Command corerun parses, analyzes and executes Core programs.
//
//	corerun program.core            run with no data input
//	corerun program.core data.txt   run reading integers from data.txt
//	corerun -p program.core         pretty-print only, do not execute
//	corerun --ast program.core      dump the syntax tree, do not execute
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	core "github.com/corelang/go-core"
	"github.com/corelang/go-core/ast"
	"github.com/corelang/go-core/symbol"
)

var (
	prettyOnly bool
	dumpAST    bool
)

var rootCmd = &cobra.Command{
	Use:   "corerun program.core [data.txt]",
	Short: "Interpreter for the Core programming language",
	Long: `corerun runs a Core program. The program is parsed and its declarations
checked before the first statement executes. read statements consume one
decimal integer per line from the data file; write statements print one
value per line to standard output.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcName := args[0]
		src, err := os.Open(srcName)
		if err != nil {
			return err
		}
		defer src.Close()

		if prettyOnly || dumpAST {
			prog, err := core.ParseProgram(srcName, src)
			if err != nil {
				return err
			}
			if _, err := symbol.Analyze(srcName, prog); err != nil {
				return err
			}
			if dumpAST {
				return ast.Fprint(cmd.OutOrStdout(), prog, ast.NotNilFilter)
			}
			fmt.Fprint(cmd.OutOrStdout(), ast.PrettyPrint(prog))
			return nil
		}

		var dataName string
		var data *os.File
		if len(args) == 2 {
			dataName = args[1]
			data, err = os.Open(dataName)
			if err != nil {
				return err
			}
			defer data.Close()
		}
		if data != nil {
			return core.Interpret(srcName, src, dataName, data, cmd.OutOrStdout())
		}
		return core.Interpret(srcName, src, "<none>", nil, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&prettyOnly, "print", "p", false, "pretty-print the program instead of running it")
	rootCmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the syntax tree instead of running")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "corerun:", err)
		os.Exit(1)
	}
}
