// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Capability contracts shared by every container family.
//
// Go has no higher-kinded types, so each contract is F-bounded: F is the
// concrete container type itself (Maybe, Either, Validation, Trampoline).
// Payloads are [Erased]; generic combinators are written once against
// these interfaces and work for every family.

// Functor maps a function over the success payload.
// Absent and failure variants are returned unchanged.
type Functor[F any] interface {
	Map(f func(Erased) Erased) F
}

// Applicative adds sequential application. The receiver holds a function
// payload which is applied to the payload of the argument.
type Applicative[F any] interface {
	Functor[F]
	Ap(other F) F
}

// Monad adds sequencing where the next container depends on the payload.
type Monad[F any] interface {
	Applicative[F]
	Bind(f func(Erased) F) F
}

// Eq is structural equality between values of the same family.
type Eq[F any] interface {
	Equals(other F) bool
}

// Seql sequences a and b, keeping the payload of a.
// Failures of both sides propagate with the family's Ap policy.
func Seql[F Applicative[F]](a, b F) F {
	return LiftA2(Constant, a, b)
}

// Seqr sequences a and b, keeping the payload of b.
func Seqr[F Applicative[F]](a, b F) F {
	return LiftA2(Constant(Identity), a, b)
}
