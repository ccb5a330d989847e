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

	"github.com/consensys/go-extvm/pkg/asm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [flags] program.fasm",
	Short: "Execute an assembly program, printing every intermediate state.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		program, err := asm.ParseFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stack, err := initialStack(GetStringArray(cmd, "push"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if err := program.Validate(stack.Depth()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Step through, dumping each state
		interpreter := asm.NewInterpreter(program, stack)
		//
		for !interpreter.HasTerminated() {
			fmt.Println(interpreter.String())
			interpreter.Step()
		}
		//
		fmt.Println("-------")
		printStack(interpreter.Stack())
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().StringArray("push", nil, "push a value onto the initial stack (repeatable)")
}
