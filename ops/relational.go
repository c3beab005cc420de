// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops

import (
	"code.hybscloud.com/pfun"
	"golang.org/x/exp/constraints"
)

// Equal returns the curried a == b.
func Equal[T comparable]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a == b })
}

// NotEqual returns the curried a != b.
func NotEqual[T comparable]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a != b })
}

// GreaterThan returns the curried a > b.
func GreaterThan[T constraints.Ordered]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a > b })
}

// GreaterOrEqualTo returns the curried a >= b.
func GreaterOrEqualTo[T constraints.Ordered]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a >= b })
}

// LessThan returns the curried a < b.
func LessThan[T constraints.Ordered]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a < b })
}

// LessOrEqualTo returns the curried a <= b.
func LessOrEqualTo[T constraints.Ordered]() pfun.Curried {
	return pfun.CurryFunc(func(a, b T) bool { return a <= b })
}
