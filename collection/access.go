// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collection

import (
	"slices"

	"code.hybscloud.com/pfun"
)

// Head returns the first element, or Nothing for an empty slice.
func Head[A any](xs []A) pfun.Maybe {
	if len(xs) == 0 {
		return pfun.Nothing()
	}
	return pfun.Just(xs[0])
}

// Tail returns every element but the first. It is empty for an empty slice.
func Tail[A any](xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return slices.Clone(xs[1:])
}

// Last returns the last element, or Nothing for an empty slice.
func Last[A any](xs []A) pfun.Maybe {
	if len(xs) == 0 {
		return pfun.Nothing()
	}
	return pfun.Just(xs[len(xs)-1])
}

// Init returns every element but the last. It is empty for an empty slice.
func Init[A any](xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return slices.Clone(xs[:len(xs)-1])
}

// All reports whether f holds for every element. It is true for an empty
// slice.
func All[A any](f func(A) bool, xs []A) bool {
	for _, x := range xs {
		if !f(x) {
			return false
		}
	}
	return true
}

// Any reports whether f holds for at least one element.
func Any[A any](f func(A) bool, xs []A) bool {
	return slices.ContainsFunc(xs, f)
}

// Find returns the first element for which f holds.
func Find[A any](f func(A) bool, xs []A) pfun.Maybe {
	for _, x := range xs {
		if f(x) {
			return pfun.Just(x)
		}
	}
	return pfun.Nothing()
}

// FindIndex returns the index of the first element for which f holds.
func FindIndex[A any](f func(A) bool, xs []A) pfun.Maybe {
	if i := slices.IndexFunc(xs, f); i >= 0 {
		return pfun.Just(i)
	}
	return pfun.Nothing()
}

// Take returns the first n elements, or all of them when n exceeds the
// length. A negative n gives an empty slice.
func Take[A any](n int, xs []A) []A {
	n = clamp(n, len(xs))
	return slices.Clone(xs[:n:n])
}

// TakeWhile returns the longest prefix whose elements satisfy f.
func TakeWhile[A any](f func(A) bool, xs []A) []A {
	i := 0
	for i < len(xs) && f(xs[i]) {
		i++
	}
	return slices.Clone(xs[:i:i])
}

// Drop returns xs without its first n elements.
func Drop[A any](n int, xs []A) []A {
	n = clamp(n, len(xs))
	return slices.Clone(xs[n:])
}

// DropWhile returns xs without its longest prefix satisfying f.
func DropWhile[A any](f func(A) bool, xs []A) []A {
	i := 0
	for i < len(xs) && f(xs[i]) {
		i++
	}
	return slices.Clone(xs[i:])
}

func clamp(n, length int) int {
	return min(max(n, 0), length)
}
