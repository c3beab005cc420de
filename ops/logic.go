// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops

import (
	"code.hybscloud.com/pfun"
	"golang.org/x/exp/constraints"
)

// Not returns the curried !a.
func Not() pfun.Curried {
	return pfun.CurryFunc(func(a bool) bool { return !a })
}

// And returns the curried a && b. Both operands are evaluated.
func And() pfun.Curried {
	return pfun.CurryFunc(func(a, b bool) bool { return a && b })
}

// Or returns the curried a || b.
func Or() pfun.Curried {
	return pfun.CurryFunc(func(a, b bool) bool { return a || b })
}

// BitNot returns the curried ^a.
func BitNot[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a T) T { return ^a })
}

// BitAnd returns the curried a & b.
func BitAnd[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a & b })
}

// BitOr returns the curried a | b.
func BitOr[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a | b })
}

// BitXor returns the curried a ^ b.
func BitXor[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a ^ b })
}

// LeftShift returns the curried a << b. A negative b panics.
func LeftShift[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a << b })
}

// RightShift returns the curried a >> b. A negative b panics.
func RightShift[T constraints.Integer]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) T { return a >> b })
}
