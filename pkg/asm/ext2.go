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
	"github.com/consensys/go-extvm/pkg/ext2"
)

// This file holds the extension field subroutines.  Each is a pure transform
// of a fixed stack prefix: it consumes exactly its operands, pushes exactly
// its results, and leaves the remainder of the stack untouched in both value
// and order.  Stack shapes below are written top first.

// Ext2Add transforms [a1, a0, b1, b0, ...] into [c1, c0, ...] where c = a + b.
func Ext2Add(stack *Stack) {
	var (
		c ext2.Element
		a = stack.PopExt()
		b = stack.PopExt()
	)
	//
	c.Add(&a, &b)
	stack.PushExt(c)
}

// Ext2Sub transforms [a1, a0, b1, b0, ...] into [c1, c0, ...] where c = a − b.
// The element nearer the top is the minuend.
func Ext2Sub(stack *Stack) {
	var (
		c ext2.Element
		a = stack.PopExt()
		b = stack.PopExt()
	)
	//
	c.Sub(&a, &b)
	stack.PushExt(c)
}

// Ext2Mul transforms [a1, a0, b1, b0, ...] into [c1, c0, ...] where c = a·b,
// computed with three base field multiplications (see [ext2.Element.Mul]).
// No intermediate value is ever visible on the stack.
func Ext2Mul(stack *Stack) {
	var (
		c ext2.Element
		a = stack.PopExt()
		b = stack.PopExt()
	)
	//
	c.Mul(&a, &b)
	stack.PushExt(c)
}

// Ext2Scale transforms [x, a1, a0, ...] into [c1, c0, ...] where x is a base
// field scalar and c = (x, 0)·a = (x·a0, x·a1).
func Ext2Scale(stack *Stack) {
	var (
		c ext2.Element
		x = stack.Pop()
		a = stack.PopExt()
	)
	//
	c.MulByBase(&a, &x)
	stack.PushExt(c)
}

// ExtAdd is the instruction form of [Ext2Add].
type ExtAdd struct{}

// Execute this instruction, returning the next program counter position.
func (p *ExtAdd) Execute(pc uint, stack *Stack) uint {
	Ext2Add(stack)
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *ExtAdd) MinDepth() uint { return 4 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *ExtAdd) Delta() int { return -2 }

func (p *ExtAdd) String() string { return "ext2add" }

// ExtSub is the instruction form of [Ext2Sub].
type ExtSub struct{}

// Execute this instruction, returning the next program counter position.
func (p *ExtSub) Execute(pc uint, stack *Stack) uint {
	Ext2Sub(stack)
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *ExtSub) MinDepth() uint { return 4 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *ExtSub) Delta() int { return -2 }

func (p *ExtSub) String() string { return "ext2sub" }

// ExtMul is the instruction form of [Ext2Mul].
type ExtMul struct{}

// Execute this instruction, returning the next program counter position.
func (p *ExtMul) Execute(pc uint, stack *Stack) uint {
	Ext2Mul(stack)
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *ExtMul) MinDepth() uint { return 4 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *ExtMul) Delta() int { return -2 }

func (p *ExtMul) String() string { return "ext2mul" }

// ExtScale is the instruction form of [Ext2Scale].
type ExtScale struct{}

// Execute this instruction, returning the next program counter position.
func (p *ExtScale) Execute(pc uint, stack *Stack) uint {
	Ext2Scale(stack)
	return pc + 1
}

// MinDepth returns the number of operands this instruction consumes.
func (p *ExtScale) MinDepth() uint { return 3 }

// Delta returns the net change in stack depth caused by this instruction.
func (p *ExtScale) Delta() int { return -1 }

func (p *ExtScale) String() string { return "ext2scale" }
