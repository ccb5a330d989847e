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
	"math/big"
	"os"
	"path"
	"strings"
)

// SyntaxError reports a malformed line in an assembly source file.
type SyntaxError struct {
	// Filename of the enclosing source file.
	Filename string
	// Line number within the source file (counting from 1).
	Line int
	// Message describing the problem.
	Message string
}

func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", p.Filename, p.Line, p.Message)
}

// Parse a given source file representing an assembly language program into an
// instruction sequence which can then be executed.  The format is line
// oriented: one instruction per line, with ";;" introducing a comment.
func Parse(filename string, text []byte) (*Program, []SyntaxError) {
	var (
		errors  []SyntaxError
		program = &Program{Name: baseName(filename)}
	)
	//
	for i, line := range strings.Split(string(text), "\n") {
		// Strip comments and surrounding whitespace
		if index := strings.Index(line, ";;"); index >= 0 {
			line = line[:index]
		}
		//
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		//
		insn, err := parseInstruction(line)
		if err != nil {
			errors = append(errors, SyntaxError{filename, i + 1, err.Error()})
			continue
		}
		//
		program.Code = append(program.Code, insn)
	}
	//
	return program, errors
}

// ParseFile reads and parses an assembly source file.
func ParseFile(filename string) (*Program, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	program, errs := Parse(filename, bytes)
	if len(errs) > 0 {
		return nil, &errs[0]
	}
	//
	return program, nil
}

func parseInstruction(line string) (Instruction, error) {
	var (
		fields   = strings.Fields(line)
		mnemonic = fields[0]
		operands = fields[1:]
	)
	// All instructions bar push are nullary.
	if mnemonic != "push" && len(operands) != 0 {
		return nil, fmt.Errorf("unexpected operand for %s", mnemonic)
	}
	//
	switch mnemonic {
	case "push":
		return parsePush(operands)
	case "dup":
		return &Dup{}, nil
	case "swap":
		return &Swap{}, nil
	case "drop":
		return &Drop{}, nil
	case "add":
		return &Add{}, nil
	case "sub":
		return &Sub{}, nil
	case "mul":
		return &Mul{}, nil
	case "neg":
		return &Neg{}, nil
	case "ext2add":
		return &ExtAdd{}, nil
	case "ext2sub":
		return &ExtSub{}, nil
	case "ext2mul":
		return &ExtMul{}, nil
	case "ext2scale":
		return &ExtScale{}, nil
	default:
		return nil, fmt.Errorf("unknown instruction %s", mnemonic)
	}
}

func parsePush(operands []string) (Instruction, error) {
	var (
		insn  Push
		value big.Int
	)
	//
	if len(operands) != 1 {
		return nil, fmt.Errorf("push expects exactly one operand")
	}
	// Base 0 accepts decimal, hex (0x) and negative literals; the value is
	// reduced into the field.
	if _, ok := value.SetString(operands[0], 0); !ok {
		return nil, fmt.Errorf("malformed constant %s", operands[0])
	}
	//
	insn.Constant.SetBigInt(&value)
	//
	return &insn, nil
}

func baseName(filename string) string {
	name := path.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
