// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "fmt"

// Maybe is an optional value: Just(v) or Nothing.
//
// The zero value is Nothing. Nothing carries no state, so every Nothing is
// equal to every other and sharing it needs no synchronization.
type Maybe struct {
	value Erased
	just  bool
}

var nothing Maybe

// Just wraps v as a present value. Just(nil) is a present nil.
func Just(v Erased) Maybe {
	return Maybe{value: v, just: true}
}

// Nothing returns the absent value.
func Nothing() Maybe {
	return nothing
}

// MaybeOf is the unit of the Maybe family, equivalent to [Just].
func MaybeOf(v Erased) Maybe {
	return Just(v)
}

// MaybeFromNullable returns Nothing for nil, including typed nil pointers,
// maps, slices, funcs, channels and interfaces, and Just(v) otherwise.
func MaybeFromNullable(v Erased) Maybe {
	if isNil(v) {
		return nothing
	}
	return Just(v)
}

// IsJust reports whether m holds a value.
func (m Maybe) IsJust() bool {
	return m.just
}

// IsNothing reports whether m is absent.
func (m Maybe) IsNothing() bool {
	return !m.just
}

// Get returns the payload and whether it is present.
func (m Maybe) Get() (Erased, bool) {
	return m.value, m.just
}

// GetOrDefault returns the payload, or def when m is Nothing.
func (m Maybe) GetOrDefault(def Erased) Erased {
	if m.just {
		return m.value
	}
	return def
}

// OrElse returns m when present, otherwise alt.
func (m Maybe) OrElse(alt Maybe) Maybe {
	if m.just {
		return m
	}
	return alt
}

// Map applies f to the payload of Just. Nothing maps to Nothing.
func (m Maybe) Map(f func(Erased) Erased) Maybe {
	if !m.just {
		return nothing
	}
	return Just(f(m.value))
}

// Ap applies the function held by m to other. Nothing ignores other.
func (m Maybe) Ap(other Maybe) Maybe {
	if !m.just {
		return nothing
	}
	return other.Map(Unary(m.value))
}

// Bind returns f(v) for Just(v) and Nothing otherwise.
func (m Maybe) Bind(f func(Erased) Maybe) Maybe {
	if !m.just {
		return nothing
	}
	return f(m.value)
}

// Seql sequences m and other, keeping the payload of m.
func (m Maybe) Seql(other Maybe) Maybe {
	return Seql(m, other)
}

// Seqr sequences m and other, keeping the payload of other.
func (m Maybe) Seqr(other Maybe) Maybe {
	return Seqr(m, other)
}

// Equals reports structural equality.
func (m Maybe) Equals(other Maybe) bool {
	if m.just != other.just {
		return false
	}
	return !m.just || equal(m.value, other.value)
}

// ToEither converts Just(v) to Right(v) and Nothing to Left(left).
func (m Maybe) ToEither(left Erased) Either {
	if m.just {
		return Right(m.value)
	}
	return Left(left)
}

func (m Maybe) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// MatchMaybe pattern matches on m, calling onNothing or onJust.
func MatchMaybe[T any](m Maybe, onNothing func() T, onJust func(Erased) T) T {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}
