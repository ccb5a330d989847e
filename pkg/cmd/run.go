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

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] program.fasm",
	Short: "Execute an assembly program and print the final stack.",
	Long: `Execute an assembly program against an operand stack initialised
from the --push flags, then print the final stack (top first).`,
	Args: cobra.ExactArgs(1),
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
		log.Debug(fmt.Sprintf("executing %s (%d instructions)", program.Name, len(program.Code)))
		//
		stack, err = asm.Execute(program, stack)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		printStack(stack)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArray("push", nil, "push a value onto the initial stack (repeatable)")
}
