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
package asm

import (
	"fmt"
	"strings"
)

// Program is a straight-line sequence of instructions executed against a
// single operand stack.  Programs have no branching, hence their stack effect
// is statically determined.
type Program struct {
	// Name of this program (e.g. derived from its source filename).
	Name string
	// Code is the instruction sequence, executed front to back.
	Code []Instruction
}

// Validate checks that this program is well-formed when started on a stack of
// the given depth.  Specifically, that no instruction can underflow the
// operand stack.  Since instructions are value-independent, a program which
// validates can never underflow at runtime.
func (p *Program) Validate(depth uint) error {
	height := int(depth)
	//
	for pc, insn := range p.Code {
		if height < int(insn.MinDepth()) {
			return fmt.Errorf("%s: pc %d (%s) requires %d operands, but stack holds %d",
				p.Name, pc, insn.String(), insn.MinDepth(), height)
		}
		//
		height += insn.Delta()
	}
	//
	return nil
}

// Delta returns the net stack effect of running this program to completion.
func (p *Program) Delta() int {
	var delta int
	//
	for _, insn := range p.Code {
		delta += insn.Delta()
	}
	//
	return delta
}

func (p *Program) String() string {
	var builder strings.Builder
	//
	for _, insn := range p.Code {
		builder.WriteString(insn.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
