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

	log "github.com/sirupsen/logrus"
)

// Interpreter encapsulates all state needed for executing a given program
// against a private operand stack.
type Interpreter struct {
	// Program being interpreted.
	program *Program
	// Program counter.
	pc uint
	// Operand stack owned by this execution context.
	stack *Stack
}

// NewInterpreter initialises an interpreter for executing a given program
// against a stack holding the given initial values.
func NewInterpreter(program *Program, stack *Stack) *Interpreter {
	return &Interpreter{program, 0, stack}
}

// PC returns the current program counter position.
func (p *Interpreter) PC() uint {
	return p.pc
}

// Stack returns the interpreter's (raw) operand stack.  This is raw, hence
// changes to it impact the interpreter's subsequent execution.
func (p *Interpreter) Stack() *Stack {
	return p.stack
}

// HasTerminated checks whether or not the program has run to completion.
func (p *Interpreter) HasTerminated() bool {
	return p.pc >= uint(len(p.program.Code))
}

// Step executes the instruction at the current program counter position.
func (p *Interpreter) Step() {
	insn := p.program.Code[p.pc]
	//
	log.Debug(p.String())
	//
	p.pc = insn.Execute(p.pc, p.stack)
}

// Execute at most n steps of the program, returning the number of steps
// actually executed.  This differs from n only if the program terminates
// first.
func (p *Interpreter) Execute(nsteps uint) uint {
	var step uint
	//
	for !p.HasTerminated() && step < nsteps {
		p.Step()
		step++
	}
	//
	return step
}

func (p *Interpreter) String() string {
	return fmt.Sprintf("(pc=%02x) %s | %s", p.pc, p.program.Code[p.pc].String(), p.stack.String())
}

// Execute a program to completion against a stack holding the given initial
// values, returning the final stack.  The program is validated first, hence
// execution cannot underflow.
func Execute(program *Program, stack *Stack) (*Stack, error) {
	if err := program.Validate(stack.Depth()); err != nil {
		return nil, err
	}
	// Straight-line code, so one step per instruction.
	interpreter := NewInterpreter(program, stack)
	interpreter.Execute(uint(len(program.Code)))
	//
	return interpreter.Stack(), nil
}
