// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "fmt"

// Either represents a value that is either Left (failure) or Right (success).
// Unlike Nothing, a Left carries an informative payload.
//
// The zero value is Left(nil).
type Either struct {
	value   Erased
	isRight bool
}

// Left creates a failure holding e.
func Left(e Erased) Either {
	return Either{value: e}
}

// Right creates a success holding a.
func Right(a Erased) Either {
	return Either{value: a, isRight: true}
}

// EitherOf is the unit of the Either family, equivalent to [Right].
func EitherOf(a Erased) Either {
	return Right(a)
}

// EitherFromNullable returns Left(v) when v is nil (including typed nils)
// and Right(v) otherwise.
func EitherFromNullable(v Erased) Either {
	if isNil(v) {
		return Left(v)
	}
	return Right(v)
}

// IsRight reports whether e is Right.
func (e Either) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether e is Left.
func (e Either) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right payload and true, or nil and false.
func (e Either) GetRight() (Erased, bool) {
	if e.isRight {
		return e.value, true
	}
	return nil, false
}

// GetLeft returns the Left payload and true, or nil and false.
func (e Either) GetLeft() (Erased, bool) {
	if !e.isRight {
		return e.value, true
	}
	return nil, false
}

// GetOrElse returns the Right payload, or f applied to the Left payload.
func (e Either) GetOrElse(f func(Erased) Erased) Erased {
	if e.isRight {
		return e.value
	}
	return f(e.value)
}

// Map applies f to a Right payload. Left is returned unchanged.
func (e Either) Map(f func(Erased) Erased) Either {
	if !e.isRight {
		return e
	}
	return Right(f(e.value))
}

// MapLeft applies f to a Left payload. Right is returned unchanged.
func (e Either) MapLeft(f func(Erased) Erased) Either {
	if e.isRight {
		return e
	}
	return Left(f(e.value))
}

// Ap applies the function held by a Right to other.
// A Left receiver is returned as is; Left payloads are never merged.
func (e Either) Ap(other Either) Either {
	if !e.isRight {
		return e
	}
	return other.Map(Unary(e.value))
}

// Bind returns f(v) for Right(v). Left is returned unchanged.
func (e Either) Bind(f func(Erased) Either) Either {
	if !e.isRight {
		return e
	}
	return f(e.value)
}

// Seql sequences e and other, keeping the payload of e.
func (e Either) Seql(other Either) Either {
	return Seql(e, other)
}

// Seqr sequences e and other, keeping the payload of other.
func (e Either) Seqr(other Either) Either {
	return Seqr(e, other)
}

// Equals reports structural equality.
func (e Either) Equals(other Either) bool {
	return e.isRight == other.isRight && equal(e.value, other.value)
}

// ToMaybe converts Right(v) to Just(v) and Left to Nothing.
func (e Either) ToMaybe() Maybe {
	if e.isRight {
		return Just(e.value)
	}
	return nothing
}

// ToValidation converts Right(v) to Success(v) and Left(x) to Failure(x).
func (e Either) ToValidation() Validation {
	if e.isRight {
		return Success(e.value)
	}
	return Failure(e.value)
}

func (e Either) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.value)
	}
	return fmt.Sprintf("Left(%v)", e.value)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[T any](e Either, onLeft func(Erased) T, onRight func(Erased) T) T {
	if e.isRight {
		return onRight(e.value)
	}
	return onLeft(e.value)
}
