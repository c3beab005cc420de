// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "reflect"

// equal is the payload equality used by every Equals method.
// Containers compare structurally through their own Equals; everything
// else is compared with deep equality.
func equal(a, b Erased) bool {
	switch x := a.(type) {
	case Maybe:
		y, ok := b.(Maybe)
		return ok && x.Equals(y)
	case Either:
		y, ok := b.(Either)
		return ok && x.Equals(y)
	case Validation:
		y, ok := b.(Validation)
		return ok && x.Equals(y)
	case Trampoline:
		y, ok := b.(Trampoline)
		return ok && x.Equals(y)
	}
	return reflect.DeepEqual(a, b)
}

// equalSlices compares two payload lists element-wise; nil and empty are equal.
func equalSlices(a, b []Erased) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v Erased) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
