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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each instruction's declared stack effect must match what executing it
// actually does.
func Test_Insn_Delta(t *testing.T) {
	instructions := []Instruction{
		&Push{elemOf(1)}, &Dup{}, &Swap{}, &Drop{},
		&Add{}, &Sub{}, &Mul{}, &Neg{},
		&ExtAdd{}, &ExtSub{}, &ExtMul{}, &ExtScale{},
	}
	//
	for _, insn := range instructions {
		stack := stackOf(1, 2, 3, 4, 5, 6)
		before := stack.Depth()
		pc := insn.Execute(0, stack)
		//
		assert.Equal(t, uint(1), pc, insn.String())
		assert.Equal(t, int(before)+insn.Delta(), int(stack.Depth()), insn.String())
	}
}

func Test_Insn_Stack(t *testing.T) {
	// swap
	stack := stackOf(1, 2)
	(&Swap{}).Execute(0, stack)
	assertStack(t, stack, 2, 1)
	// dup
	stack = stackOf(7)
	(&Dup{}).Execute(0, stack)
	assertStack(t, stack, 7, 7)
	// drop
	stack = stackOf(7, 8)
	(&Drop{}).Execute(0, stack)
	assertStack(t, stack, 7)
	// add
	stack = stackOf(3, 4)
	(&Add{}).Execute(0, stack)
	assertStack(t, stack, 7)
	// sub (top is the minuend)
	stack = stackOf(3, 4)
	(&Sub{}).Execute(0, stack)
	assertStack(t, stack, 1)
	// mul
	stack = stackOf(3, 4)
	(&Mul{}).Execute(0, stack)
	assertStack(t, stack, 12)
	// neg then add cancels
	stack = stackOf(5, 5)
	(&Neg{}).Execute(0, stack)
	(&Add{}).Execute(0, stack)
	assertStack(t, stack, 0)
}

func Test_Program_Validate(t *testing.T) {
	program := &Program{"test", []Instruction{&ExtMul{}}}
	// Four operands required
	assert.NoError(t, program.Validate(4))
	assert.NoError(t, program.Validate(10))
	assert.Error(t, program.Validate(3))
	assert.Error(t, program.Validate(0))
	// Depth tracked through pushes
	program = &Program{"test", []Instruction{&Push{}, &Push{}, &Push{}, &Push{}, &ExtMul{}, &ExtScale{}}}
	assert.NoError(t, program.Validate(1))
	assert.Error(t, program.Validate(0))
	//
	assert.Equal(t, 1, program.Delta())
}

func Test_Program_Execute(t *testing.T) {
	// Underflowing program is rejected up front, not mid-flight.
	program := &Program{"test", []Instruction{&Drop{}, &ExtAdd{}}}
	//
	_, err := Execute(program, stackOf(1, 2, 3))
	require.Error(t, err)
	//
	stack, err := Execute(program, stackOf(9, 7, 2, 3, 5, 0))
	require.NoError(t, err)
	assertStack(t, stack, 9, 10, 7)
}

func Test_Interpreter_Stepping(t *testing.T) {
	program := &Program{"test", []Instruction{&Push{elemOf(4)}, &ExtScale{}}}
	interpreter := NewInterpreter(program, stackOf(3, 5))
	//
	require.False(t, interpreter.HasTerminated())
	assert.Equal(t, uint(0), interpreter.PC())
	//
	interpreter.Step()
	assert.Equal(t, uint(1), interpreter.PC())
	//
	steps := interpreter.Execute(100)
	assert.Equal(t, uint(1), steps)
	require.True(t, interpreter.HasTerminated())
	//
	assertStack(t, interpreter.Stack(), 12, 20)
}
