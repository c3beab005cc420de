// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import (
	"fmt"
	"slices"
)

// Validation is Success(v) or Failure(errs...).
//
// Ap accumulates: applying a Failure to a Failure concatenates both error
// lists, receiver first. Chains of [Validation.Ap] and [Validation.Seql]
// therefore report every failing check, not only the first one.
// Bind, and everything built on it such as [Sequence], stops at the first
// Failure.
//
// The zero value is Failure with no errors.
type Validation struct {
	value   Erased
	errs    []Erased
	success bool
}

// Success creates a successful validation holding v.
func Success(v Erased) Validation {
	return Validation{value: v, success: true}
}

// Failure creates a failed validation holding errs in order.
// The list is copied.
func Failure(errs ...Erased) Validation {
	return Validation{errs: append(make([]Erased, 0, len(errs)), errs...)}
}

// ValidationOf is the unit of the Validation family, equivalent to [Success].
func ValidationOf(v Erased) Validation {
	return Success(v)
}

// ValidationFromNullable returns Failure(v) when v is nil (including typed
// nils), so the error list holds the nil itself, and Success(v) otherwise.
func ValidationFromNullable(v Erased) Validation {
	if isNil(v) {
		return Failure(v)
	}
	return Success(v)
}

// IsSuccess reports whether v is a Success.
func (v Validation) IsSuccess() bool {
	return v.success
}

// IsFailure reports whether v is a Failure.
func (v Validation) IsFailure() bool {
	return !v.success
}

// Get returns the Success payload and true, or nil and false.
func (v Validation) Get() (Erased, bool) {
	if v.success {
		return v.value, true
	}
	return nil, false
}

// Errors returns a copy of the error list. It is nil for a Success.
func (v Validation) Errors() []Erased {
	if v.success {
		return nil
	}
	return slices.Clone(v.errs)
}

// GetOrElse returns the Success payload, or f applied to the error list.
func (v Validation) GetOrElse(f func([]Erased) Erased) Erased {
	if v.success {
		return v.value
	}
	return f(v.Errors())
}

// Map applies f to a Success payload. Failure is returned unchanged.
func (v Validation) Map(f func(Erased) Erased) Validation {
	if !v.success {
		return v
	}
	return Success(f(v.value))
}

// MapErrors applies f to every error of a Failure.
func (v Validation) MapErrors(f func(Erased) Erased) Validation {
	if v.success {
		return v
	}
	errs := make([]Erased, len(v.errs))
	for i, e := range v.errs {
		errs[i] = f(e)
	}
	return Validation{errs: errs}
}

// Ap applies the function held by a Success to other.
//
//	Failure(a).Ap(Failure(b)) == Failure(a ++ b)
//	Failure(a).Ap(Success(x)) == Failure(a)
//	Success(f).Ap(o)          == o.Map(f)
func (v Validation) Ap(other Validation) Validation {
	if v.success {
		return other.Map(Unary(v.value))
	}
	if other.success {
		return v
	}
	errs := make([]Erased, 0, len(v.errs)+len(other.errs))
	errs = append(errs, v.errs...)
	errs = append(errs, other.errs...)
	return Validation{errs: errs}
}

// Bind returns f(x) for Success(x). Failure is returned unchanged; errors
// from f are never reached and so never accumulated.
func (v Validation) Bind(f func(Erased) Validation) Validation {
	if !v.success {
		return v
	}
	return f(v.value)
}

// Seql sequences v and other, keeping the payload of v and accumulating
// the errors of both.
func (v Validation) Seql(other Validation) Validation {
	return Seql(v, other)
}

// Seqr sequences v and other, keeping the payload of other and
// accumulating the errors of both.
func (v Validation) Seqr(other Validation) Validation {
	return Seqr(v, other)
}

// Equals reports structural equality. A Failure with a nil error list
// equals one with an empty list.
func (v Validation) Equals(other Validation) bool {
	if v.success != other.success {
		return false
	}
	if v.success {
		return equal(v.value, other.value)
	}
	return equalSlices(v.errs, other.errs)
}

// ToEither converts Success(x) to Right(x) and Failure(errs) to Left(errs).
func (v Validation) ToEither() Either {
	if v.success {
		return Right(v.value)
	}
	return Left(v.Errors())
}

func (v Validation) String() string {
	if v.success {
		return fmt.Sprintf("Success(%v)", v.value)
	}
	return fmt.Sprintf("Failure(%v)", v.errs)
}

// MatchValidation pattern matches on v, calling onFailure with a copy of
// the error list or onSuccess with the payload.
func MatchValidation[T any](v Validation, onFailure func([]Erased) T, onSuccess func(Erased) T) T {
	if v.success {
		return onSuccess(v.value)
	}
	return onFailure(v.Errors())
}
