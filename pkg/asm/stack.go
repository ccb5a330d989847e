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
	"strings"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/consensys/go-extvm/pkg/ext2"
)

// Stack is the operand stack of a single execution context.  Values are base
// field elements; an extension element occupies two consecutive slots with its
// second component nearer the top.  A stack is owned by exactly one execution
// context and must not be shared across concurrent callers.
//
// Popping an empty stack is a precondition violation on the part of the
// caller, and panics.  Checked programs cannot underflow (see
// [Program.Validate]).
type Stack struct {
	// Values held, with the top of the stack at the end.
	items []goldilocks.Element
}

// NewStack constructs a stack holding the given values, where the last value
// given ends up on top.
func NewStack(values ...goldilocks.Element) *Stack {
	items := make([]goldilocks.Element, len(values))
	copy(items, values)
	//
	return &Stack{items}
}

// Depth returns the number of values currently on the stack.
func (p *Stack) Depth() uint {
	return uint(len(p.items))
}

// Push a base field value onto the stack.
func (p *Stack) Push(val goldilocks.Element) {
	p.items = append(p.items, val)
}

// Pop the top value off the stack.
func (p *Stack) Pop() goldilocks.Element {
	n := len(p.items) - 1
	//
	if n < 0 {
		panic("stack underflow")
	}
	//
	val := p.items[n]
	p.items = p.items[:n]
	//
	return val
}

// Peek returns the nth value from the top of the stack (0 being the top)
// without removing it.
func (p *Stack) Peek(n uint) goldilocks.Element {
	if n >= p.Depth() {
		panic("stack underflow")
	}
	//
	return p.items[uint(len(p.items))-1-n]
}

// PushExt pushes an extension element, second component on top.
func (p *Stack) PushExt(val ext2.Element) {
	p.Push(val.A0)
	p.Push(val.A1)
}

// PopExt pops an extension element, expecting its second component on top.
func (p *Stack) PopExt() ext2.Element {
	var val ext2.Element
	//
	val.A1 = p.Pop()
	val.A0 = p.Pop()
	//
	return val
}

// Values returns a copy of the stack contents, bottom first.
func (p *Stack) Values() []goldilocks.Element {
	values := make([]goldilocks.Element, len(p.items))
	copy(values, p.items)
	//
	return values
}

// Clone the stack, such that mutations of the clone do not affect the
// original.
func (p *Stack) Clone() *Stack {
	return NewStack(p.items...)
}

func (p *Stack) String() string {
	var builder strings.Builder
	// Print top first
	for i := len(p.items) - 1; i >= 0; i-- {
		if builder.Len() != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(p.items[i].String())
	}
	//
	return builder.String()
}
