// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package collection provides generic, non-mutating slice operations.
//
// Operations that may have no result ([Head], [Last], [Find],
// [FindIndex]) return a [pfun.Maybe]. Every function is a plain generic
// function; instantiate it and pass it to [pfun.CurryFunc] for partial
// application:
//
//	take2 := pfun.CurryFunc(collection.Take[int], 2)
//	take2.Call([]int{1, 2, 3}) // []int{1, 2}
package collection
