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
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Base field instructions.  As with the extension subroutines, the value
// nearer the top of the stack is the left-hand operand.

// Add replaces the top two values a, b with a + b.
type Add struct{}

// Execute this instruction, returning the next program counter position.
func (p *Add) Execute(pc uint, stack *Stack) uint {
	var (
		c goldilocks.Element
		a = stack.Pop()
		b = stack.Pop()
	)
	//
	c.Add(&a, &b)
	stack.Push(c)
	//
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Add) MinDepth() uint { return 2 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Add) Delta() int { return -1 }

func (p *Add) String() string { return "add" }

// Sub replaces the top two values a, b with a − b.
type Sub struct{}

// Execute this instruction, returning the next program counter position.
func (p *Sub) Execute(pc uint, stack *Stack) uint {
	var (
		c goldilocks.Element
		a = stack.Pop()
		b = stack.Pop()
	)
	//
	c.Sub(&a, &b)
	stack.Push(c)
	//
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Sub) MinDepth() uint { return 2 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Sub) Delta() int { return -1 }

func (p *Sub) String() string { return "sub" }

// Mul replaces the top two values a, b with a·b.
type Mul struct{}

// Execute this instruction, returning the next program counter position.
func (p *Mul) Execute(pc uint, stack *Stack) uint {
	var (
		c goldilocks.Element
		a = stack.Pop()
		b = stack.Pop()
	)
	//
	c.Mul(&a, &b)
	stack.Push(c)
	//
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Mul) MinDepth() uint { return 2 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Mul) Delta() int { return -1 }

func (p *Mul) String() string { return "mul" }

// Neg replaces the top value a with −a.
type Neg struct{}

// Execute this instruction, returning the next program counter position.
func (p *Neg) Execute(pc uint, stack *Stack) uint {
	var (
		c goldilocks.Element
		a = stack.Pop()
	)
	//
	c.Neg(&a)
	stack.Push(c)
	//
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *Neg) MinDepth() uint { return 1 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *Neg) Delta() int { return 0 }

func (p *Neg) String() string { return "neg" }
