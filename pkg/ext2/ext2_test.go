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
package ext2

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// Worked example over the Goldilocks field: a = 3 + 5z, b = 7 + 2z.
func Test_Ext2_KnownVectors(t *testing.T) {
	var (
		c goldilocks.Element
		r Element
		a = NewElement(3, 5)
		b = NewElement(7, 2)
	)
	// a + b = 10 + 7z
	assert.True(t, r.Add(&a, &b).Equal(&Element{uint64Elem(10), uint64Elem(7)}))
	// a − b = −4 + 3z
	c.SetUint64(4)
	c.Neg(&c)
	assert.True(t, r.Sub(&a, &b).Equal(&Element{c, uint64Elem(3)}))
	// a·b = (3·7 − 2·5·2) + (3·2 + 5·7)z = 1 + 41z
	assert.True(t, r.Mul(&a, &b).Equal(&Element{uint64Elem(1), uint64Elem(41)}))
	// 4·a = 12 + 20z
	c.SetUint64(4)
	assert.True(t, r.MulByBase(&a, &c).Equal(&Element{uint64Elem(12), uint64Elem(20)}))
}

func Test_Ext2_Mul_Properties(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("a*b == b*a", prop.ForAll(
		func(a, b Element) bool {
			var l, r Element
			l.Mul(&a, &b)
			r.Mul(&b, &a)
			//
			return l.Equal(&r)
		},
		genElement(), genElement(),
	))

	properties.Property("a*(b+c) == a*b + a*c", prop.ForAll(
		func(a, b, c Element) bool {
			var l, r, t1, t2 Element
			l.Add(&b, &c)
			l.Mul(&a, &l)
			t1.Mul(&a, &b)
			t2.Mul(&a, &c)
			r.Add(&t1, &t2)
			//
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("(a*b)*c == a*(b*c)", prop.ForAll(
		func(a, b, c Element) bool {
			var l, r Element
			l.Mul(&a, &b)
			l.Mul(&l, &c)
			r.Mul(&b, &c)
			r.Mul(&a, &r)
			//
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a*a == a^2", prop.ForAll(
		func(a Element) bool {
			var l, r Element
			l.Mul(&a, &a)
			r.Square(&a)
			//
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.Property("a*1 == a", prop.ForAll(
		func(a Element) bool {
			var one, r Element
			one.SetOne()
			r.Mul(&a, &one)
			//
			return r.Equal(&a)
		},
		genElement(),
	))

	properties.Property("a != 0 ==> a*a⁻¹ == 1", prop.ForAll(
		func(a Element) bool {
			var one, inv, r Element
			//
			if a.IsZero() {
				return true
			}
			//
			one.SetOne()
			inv.Inverse(&a)
			r.Mul(&a, &inv)
			//
			return r.Equal(&one)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func Test_Ext2_AddSub_Properties(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("a+b == b+a", prop.ForAll(
		func(a, b Element) bool {
			var l, r Element
			l.Add(&a, &b)
			r.Add(&b, &a)
			//
			return l.Equal(&r)
		},
		genElement(), genElement(),
	))

	properties.Property("(a+b)-b == a", prop.ForAll(
		func(a, b Element) bool {
			var r Element
			r.Add(&a, &b)
			r.Sub(&r, &b)
			//
			return r.Equal(&a)
		},
		genElement(), genElement(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Element) bool {
			var neg, r Element
			neg.Neg(&a)
			r.Add(&a, &neg)
			//
			return r.IsZero()
		},
		genElement(),
	))

	properties.Property("a+a == 2a", prop.ForAll(
		func(a Element) bool {
			var l, r Element
			l.Add(&a, &a)
			r.Double(&a)
			//
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func Test_Ext2_Embedding_Properties(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	// Defining property of MulByBase: scaling agrees with the full product
	// against the embedded scalar (c, 0).
	properties.Property("c*a == (c,0)*a", prop.ForAll(
		func(c uint64, a Element) bool {
			var (
				scalar   goldilocks.Element
				embedded Element
				l, r     Element
			)
			//
			scalar.SetUint64(c)
			embedded.SetBase(&scalar)
			l.MulByBase(&a, &scalar)
			r.Mul(&embedded, &a)
			//
			return l.Equal(&r)
		},
		gen.UInt64(), genElement(),
	))

	// The adjoined root squares to the non-residue: z·z = −2.
	properties.Property("(a*z)*z == -2a", prop.ForAll(
		func(a Element) bool {
			var l, r Element
			l.MulByNonResidue(&a)
			l.MulByNonResidue(&l)
			r.Double(&a)
			r.Neg(&r)
			//
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.Property("a*conj(a) == (norm(a), 0)", prop.ForAll(
		func(a Element) bool {
			var conj, l, r Element
			conj.Conjugate(&a)
			l.Mul(&a, &conj)
			r.A0 = a.Norm(&a)
			//
			return l.Equal(&r)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// ===================================================================
// Test Helpers
// ===================================================================

func testParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	//
	return parameters
}

// Generate an arbitrary extension element from two unsigned integers, which
// the base field reduces modulo p.
func genElement() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64()).Map(
		func(vs []interface{}) Element {
			return NewElement(vs[0].(uint64), vs[1].(uint64))
		})
}

func uint64Elem(v uint64) goldilocks.Element {
	var e goldilocks.Element
	e.SetUint64(v)
	//
	return e
}
