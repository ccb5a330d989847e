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

// Package ext2 implements arithmetic over the quadratic extension of the
// Goldilocks field F_p[z] / (z² − β), where p = 2⁶⁴ − 2³² + 1 and β = −2 is a
// quadratic non-residue.  An element a0 + a1·z is represented by the pair
// (A0, A1).  All operations are pure: they read exactly their operands and
// write exactly their receiver.
package ext2

import (
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Element of the quadratic extension, representing A0 + A1·z with z² = −2.
type Element struct {
	A0, A1 goldilocks.Element
}

// NewElement constructs the extension element a0 + a1·z from base field
// values given as unsigned integers.
func NewElement(a0, a1 uint64) Element {
	var e Element
	e.A0.SetUint64(a0)
	e.A1.SetUint64(a1)
	//
	return e
}

// SetZero sets z to the additive identity.
func (z *Element) SetZero() *Element {
	z.A0.SetZero()
	z.A1.SetZero()
	//
	return z
}

// SetOne sets z to the multiplicative identity.
func (z *Element) SetOne() *Element {
	z.A0.SetOne()
	z.A1.SetZero()
	//
	return z
}

// Set z to x.
func (z *Element) Set(x *Element) *Element {
	z.A0.Set(&x.A0)
	z.A1.Set(&x.A1)
	//
	return z
}

// SetBase embeds a base field scalar as the extension element (x, 0).
func (z *Element) SetBase(x *goldilocks.Element) *Element {
	z.A0.Set(x)
	z.A1.SetZero()
	//
	return z
}

// SetRandom samples both components uniformly from the base field.
func (z *Element) SetRandom() (*Element, error) {
	if _, err := z.A0.SetRandom(); err != nil {
		return nil, err
	}
	//
	if _, err := z.A1.SetRandom(); err != nil {
		return nil, err
	}
	//
	return z, nil
}

// Add sets z = x + y (component-wise).
func (z *Element) Add(x, y *Element) *Element {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	//
	return z
}

// Sub sets z = x − y (component-wise).  Operand order matters.
func (z *Element) Sub(x, y *Element) *Element {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	//
	return z
}

// Double sets z = 2x.
func (z *Element) Double(x *Element) *Element {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	//
	return z
}

// Neg sets z = −x.
func (z *Element) Neg(x *Element) *Element {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	//
	return z
}

// Mul sets z = x·y using three base field multiplications rather than the
// naive four:
//
//	t0 = x0·y0
//	t1 = x1·y1
//	t2 = (x0+x1)·(y0+y1)
//	z0 = t0 + β·t1 = t0 − 2·t1
//	z1 = t2 − t0 − t1
func (z *Element) Mul(x, y *Element) *Element {
	var t0, t1, t2, l, r goldilocks.Element
	//
	t0.Mul(&x.A0, &y.A0)
	t1.Mul(&x.A1, &y.A1)
	l.Add(&x.A0, &x.A1)
	r.Add(&y.A0, &y.A1)
	t2.Mul(&l, &r)
	// z0 = t0 − 2·t1
	l.Double(&t1)
	z.A0.Sub(&t0, &l)
	// z1 = t2 − t0 − t1
	z.A1.Sub(&t2, &t0).Sub(&z.A1, &t1)
	//
	return z
}

// Square sets z = x², specialising the three-multiplication product to two
// multiplications (algo 22, https://eprint.iacr.org/2010/354.pdf with β = −2).
func (z *Element) Square(x *Element) *Element {
	var s, d, p goldilocks.Element
	// s = x0 + x1, d = x0 + β·x1 = x0 − 2·x1
	s.Add(&x.A0, &x.A1)
	d.Double(&x.A1)
	d.Sub(&x.A0, &d)
	// p = x0·x1
	p.Mul(&x.A0, &x.A1)
	// z0 = s·d − (β+1)·p = s·d + p
	z.A0.Mul(&s, &d).Add(&z.A0, &p)
	// z1 = 2·p
	z.A1.Double(&p)
	//
	return z
}

// MulByBase sets z = c·x, scaling both components by the base field scalar c.
// This agrees with the full product (c, 0)·x since the cross term vanishes.
func (z *Element) MulByBase(x *Element, c *goldilocks.Element) *Element {
	z.A0.Mul(&x.A0, c)
	z.A1.Mul(&x.A1, c)
	//
	return z
}

// MulByNonResidue sets z = z·x, multiplying by the adjoined root z itself:
// (a0 + a1·z)·z = β·a1 + a0·z.
func (z *Element) MulByNonResidue(x *Element) *Element {
	var t goldilocks.Element
	//
	t.Set(&x.A0)
	z.A0.Double(&x.A1).Neg(&z.A0)
	z.A1.Set(&t)
	//
	return z
}

// Conjugate sets z = x0 − x1·z.
func (z *Element) Conjugate(x *Element) *Element {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	//
	return z
}

// Norm returns x·conj(x) = x0² − β·x1² = x0² + 2·x1², which lies in the base
// field.
func (z *Element) Norm(x *Element) goldilocks.Element {
	var n, t goldilocks.Element
	//
	n.Square(&x.A0)
	t.Square(&x.A1)
	t.Double(&t)
	n.Add(&n, &t)
	//
	return n
}

// Inverse sets z = 1/x, or zero if x is zero.  Computed as conj(x)/norm(x).
func (z *Element) Inverse(x *Element) *Element {
	n := z.Norm(x)
	n.Inverse(&n)
	//
	z.A0.Mul(&x.A0, &n)
	z.A1.Mul(&x.A1, &n).Neg(&z.A1)
	//
	return z
}

// Equal reports whether z and x represent the same extension element.
func (z *Element) Equal(x *Element) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// IsZero reports whether z is the additive identity.
func (z *Element) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

func (z *Element) String() string {
	return fmt.Sprintf("%s+%s*z", z.A0.String(), z.A1.String())
}
