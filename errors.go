// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import (
	"errors"
	"fmt"
	"reflect"
)

// Programmer errors. Domain failures are values ([Nothing], [Left],
// [Failure]); these are reserved for misuse of the API.
var (
	// ErrTooManyArguments is wrapped by every [ArityError].
	ErrTooManyArguments = errors.New("pfun: too many arguments")

	// ErrNotCallable is wrapped by every [NotCallableError].
	ErrNotCallable = errors.New("pfun: value is not callable")

	// ErrArgumentType is wrapped by every [ArgumentTypeError].
	ErrArgumentType = errors.New("pfun: argument type mismatch")

	// ErrNoCondition is the panic value of a [Conditions] function
	// when no predicate matches.
	ErrNoCondition = errors.New("pfun: no condition was true")
)

// ArityError reports a curried call that received more bound arguments
// than the resolved arity.
type ArityError struct {
	Arity int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("pfun: too many arguments: arity %d, got %d", e.Arity, e.Got)
}

// Unwrap returns [ErrTooManyArguments].
func (e *ArityError) Unwrap() error { return ErrTooManyArguments }

// NotCallableError reports an attempt to invoke a value that is not a function.
type NotCallableError struct {
	Value Erased
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("pfun: value of type %T is not callable", e.Value)
}

// Unwrap returns [ErrNotCallable].
func (e *NotCallableError) Unwrap() error { return ErrNotCallable }

// ArgumentTypeError reports an argument that cannot be passed to a
// reflection-wrapped function parameter.
type ArgumentTypeError struct {
	Index int
	Want  reflect.Type
	Got   reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("pfun: argument %d: cannot use %v as %v", e.Index, e.Got, e.Want)
}

// Unwrap returns [ErrArgumentType].
func (e *ArgumentTypeError) Unwrap() error { return ErrArgumentType }
