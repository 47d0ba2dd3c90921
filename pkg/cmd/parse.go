// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/consensys/go-fern/pkg/fern/parser"
	"github.com/consensys/go-fern/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] source_file",
	Short: "parse a single expression (or binder).",
	Long: `Parse a given source file (or command-line expression) as a single expression,
	 reporting either the resulting tree or a syntax error with the offending text
	 highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		expression := GetString(cmd, "expression")
		//
		if len(args) == 0 && expression == "" {
			fmt.Println("expected exactly one source file (or --expression)")
			os.Exit(1)
		} else if len(args) > 1 {
			fmt.Println("expected exactly one source file")
			os.Exit(1)
		}
		// Determine source of text being parsed
		srcfile := readSourceFile(args, expression)
		//
		log.Debugf("parsing %d bytes from %s", len(srcfile.Contents()), srcfile.Filename())
		//
		var (
			node ast.Node
			err  *parser.Error
		)
		//
		if GetFlag(cmd, "binder") {
			node, _, err = parser.ParseBinder(srcfile)
		} else {
			node, _, err = parser.ParseValue(srcfile)
		}
		//
		if err != nil {
			log.Debugf("parsing failed (%s in %s)", err.Kind, err.Production)
			printSyntaxError(err.SyntaxError())
			os.Exit(2)
		}
		//
		fmt.Println(node.String())
	},
}

// Construct a source file either from a named file, or from an expression
// given directly on the command line.
func readSourceFile(args []string, expression string) *source.File {
	if len(args) == 0 {
		return source.NewSourceFile("expression", []byte(expression))
	}
	//
	bytes, err := os.ReadFile(args[0])
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return source.NewSourceFile(args[0], bytes)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("expression", "e", "", "parse given expression rather than a file")
	parseCmd.Flags().Bool("binder", false, "parse a binder rather than an expression")
}
