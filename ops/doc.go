// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ops provides curried operator functions and a typed registry.
//
// Each constructor returns a [pfun.Curried] instantiated for one operand
// type, so operators support partial application and placeholders:
//
//	gt2 := ops.GreaterThan[int]().Call(pfun.Placeholder, 2).(pfun.Curried)
//	gt2.Call(5) // true: 5 > 2
//
// Arguments of another numeric type are converted to the operand type.
// Operators are looked up by [Name] rather than by string, and a missing
// entry is a [pfun.Maybe], not an error:
//
//	ops.Relational[int]().Lookup(ops.OpLessThan)
package ops
