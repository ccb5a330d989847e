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
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/consensys/go-extvm/pkg/asm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected flag, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Construct the initial operand stack from the --push flag, where values are
// pushed left to right (hence the last value given ends up on top).
func initialStack(values []string) (*asm.Stack, error) {
	stack := asm.NewStack()
	//
	for _, s := range values {
		var (
			elem  goldilocks.Element
			value big.Int
		)
		//
		if _, ok := value.SetString(s, 0); !ok {
			return nil, fmt.Errorf("malformed stack value %s", s)
		}
		//
		elem.SetBigInt(&value)
		stack.Push(elem)
	}
	//
	return stack, nil
}

// Print the final stack, top first, clamped to the terminal width when
// writing to one.
func printStack(stack *asm.Stack) {
	width := 80
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	//
	values := stack.Values()
	//
	for i := len(values) - 1; i >= 0; i-- {
		line := fmt.Sprintf("[%d] %s", len(values)-1-i, values[i].String())
		if len(line) > width {
			line = line[:width]
		}
		//
		fmt.Println(line)
	}
}
