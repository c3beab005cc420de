// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"code.hybscloud.com/pfun"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns the curried a + b.
func Add[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a + b })
}

// Subtract returns the curried a - b.
func Subtract[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a - b })
}

// Multiply returns the curried a * b.
func Multiply[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a * b })
}

// Divide returns the curried a / b. Integer division by zero panics as it
// does natively.
func Divide[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a / b })
}

// Exp returns the curried a raised to the power b, computed in float64.
func Exp[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T {
		return T(math.Pow(float64(a), float64(b)))
	})
}

// Negate returns the curried -a.
func Negate[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a T) T { return -a })
}

// Succ returns the curried a + 1.
func Succ[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a T) T { return a + 1 })
}

// Pred returns the curried a - 1.
func Pred[T Number]() pfun.Curried {
	return pfun.CurryFunc(func(a T) T { return a - 1 })
}

// Modulo returns the curried a % b.
func Modulo[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a % b })
}

// Even returns the curried a%2 == 0.
func Even[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a T) bool { return a%2 == 0 })
}

// Odd returns the curried a%2 != 0.
func Odd[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a T) bool { return a%2 != 0 })
}
