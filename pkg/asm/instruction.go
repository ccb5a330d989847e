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

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Instruction provides an abstract notion of a "machine instruction" operating
// over the operand stack.  Instructions are value-independent: which values an
// instruction reads never affects which slots it touches, nor where control
// goes next.
type Instruction interface {
	// Execute this instruction at a given program counter position against a
	// given operand stack, returning the next program counter position.
	Execute(pc uint, stack *Stack) uint
	// MinDepth returns the number of operands which must be on the stack for
	// this instruction to execute without underflow.
	MinDepth() uint
	// Delta returns the net change in stack depth caused by this instruction.
	Delta() int
	// String returns this instruction in its assembly syntax.
	fmt.Stringer
}

// Push a given constant onto the stack.
type Push struct {
	// Constant value being pushed.
	Constant goldilocks.Element
}

// Execute this instruction, returning the next program counter position.
func (p *Push) Execute(pc uint, stack *Stack) uint {
	stack.Push(p.Constant)
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Push) MinDepth() uint { return 0 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Push) Delta() int { return 1 }

func (p *Push) String() string {
	return fmt.Sprintf("push %s", p.Constant.String())
}

// Dup duplicates the top of the stack.
type Dup struct{}

// Execute this instruction, returning the next program counter position.
func (p *Dup) Execute(pc uint, stack *Stack) uint {
	stack.Push(stack.Peek(0))
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Dup) MinDepth() uint { return 1 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Dup) Delta() int { return 1 }

func (p *Dup) String() string { return "dup" }

// Swap exchanges the top two values of the stack.
type Swap struct{}

// Execute this instruction, returning the next program counter position.
func (p *Swap) Execute(pc uint, stack *Stack) uint {
	a := stack.Pop()
	b := stack.Pop()
	stack.Push(a)
	stack.Push(b)
	//
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Swap) MinDepth() uint { return 2 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Swap) Delta() int { return 0 }

func (p *Swap) String() string { return "swap" }

// Drop discards the top of the stack.
type Drop struct{}

// Execute this instruction, returning the next program counter position.
func (p *Drop) Execute(pc uint, stack *Stack) uint {
	stack.Pop()
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Drop) MinDepth() uint { return 1 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Drop) Delta() int { return -1 }

func (p *Drop) String() string { return "drop" }
