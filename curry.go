// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "reflect"

// Func is an uncurried function of any arity.
// It is the representation the curry engine wraps.
type Func func(args ...Erased) Erased

// Arg is one argument slot of a curried call: either a bound value or
// the [Placeholder].
//
// Plain values passed to [Curried.Call] are bound implicitly. Passing an
// Arg is honoured as-is, so whether a slot is filled is a property of the
// slot, never a comparison against a magic value.
type Arg struct {
	value Erased
	bound bool
}

// Placeholder marks a slot to be filled by a later call.
// It is never counted as a real argument.
var Placeholder = Arg{}

// Bound wraps v as a filled slot. It is only needed to pass an [Arg]
// itself as an ordinary argument value.
func Bound(v Erased) Arg {
	return Arg{value: v, bound: true}
}

// IsPlaceholder reports whether the slot is still open.
func (a Arg) IsPlaceholder() bool {
	return !a.bound
}

// Curried is a partially applicable, placeholder-aware function.
//
// A Curried value never invokes the underlying function until the number
// of bound slots equals its arity exactly. Curried values are immutable:
// every call copies the slots, so a partial application can be reused.
type Curried struct {
	fn    Func
	slots []Arg
	arity int
}

// Curry converts f into a curried function of the given arity, with
// optional initial arguments (which may include [Placeholder]).
//
// The arity is explicit because Func is variadic; use [CurryFunc] to infer
// it from an ordinary Go function. When arity is 0, the result invokes f
// with no arguments on every call.
func Curry(f Func, arity int, initial ...Erased) Curried {
	if arity < 0 {
		panic("pfun: negative arity")
	}
	return Curried{fn: f, slots: toSlots(nil, initial), arity: arity}
}

// Arity returns the resolved arity.
func (c Curried) Arity() int {
	return c.arity
}

// Pending returns the number of bound arguments still missing.
func (c Curried) Pending() int {
	return c.arity - countBound(c.slots)
}

// Call applies args.
//
// The result is a new Curried when fewer than Arity bound arguments have
// been supplied in total, otherwise the result of the underlying function.
// When the saturated slots contain placeholders, the trailing bound values
// (one per placeholder) fill the placeholder slots in left-to-right order
// while also keeping their own slots, and the function is invoked with the
// first Arity values of the filled sequence.
//
// Call panics with an [*ArityError] when more than Arity bound arguments
// are supplied. Use [Curried.TryCall] to receive the error instead.
func (c Curried) Call(args ...Erased) Erased {
	r, err := c.TryCall(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// TryCall is like [Curried.Call] but returns an [*ArityError] instead of
// panicking.
func (c Curried) TryCall(args ...Erased) (Erased, error) {
	if c.arity == 0 {
		return c.fn(), nil
	}
	all := toSlots(c.slots, args)
	actual := countBound(all)
	switch {
	case actual > c.arity:
		return nil, &ArityError{Arity: c.arity, Got: actual}
	case actual < c.arity:
		return Curried{fn: c.fn, slots: all, arity: c.arity}, nil
	}
	return c.fn(fill(all, actual)...), nil
}

// Unary returns c as a single-argument function suitable for Map.
func (c Curried) Unary() func(Erased) Erased {
	return func(x Erased) Erased {
		return c.Call(x)
	}
}

// toSlots returns a fresh slot slice holding prefix followed by args.
func toSlots(prefix []Arg, args []Erased) []Arg {
	out := make([]Arg, len(prefix), len(prefix)+len(args))
	copy(out, prefix)
	for _, a := range args {
		if arg, ok := a.(Arg); ok {
			out = append(out, arg)
			continue
		}
		out = append(out, Arg{value: a, bound: true})
	}
	return out
}

func countBound(slots []Arg) int {
	n := 0
	for _, s := range slots {
		if s.bound {
			n++
		}
	}
	return n
}

// fill resolves saturated slots into exactly actual values.
//
// The trailing bound values, one per placeholder, are copied into the
// placeholder slots left to right; every bound value also stays in its own
// slot. The first actual entries of that sequence are passed on.
// Placeholders left over when there are more placeholders than bound values
// always lie past that prefix.
func fill(slots []Arg, actual int) []Erased {
	holes := len(slots) - actual
	out := make([]Erased, 0, len(slots))
	if holes == 0 {
		for _, s := range slots {
			out = append(out, s.value)
		}
		return out
	}

	n := min(holes, actual)
	fills := make([]Erased, n)
	for i := len(slots) - 1; i >= 0 && n > 0; i-- {
		if slots[i].bound {
			n--
			fills[n] = slots[i].value
		}
	}

	next := 0
	for _, s := range slots {
		switch {
		case s.bound:
			out = append(out, s.value)
		case next < len(fills):
			out = append(out, fills[next])
			next++
		}
	}
	return out[:actual:actual]
}

// CurryFunc curries any Go function value. The arity is the declared
// parameter count; a variadic parameter is not counted (force it with
// [CurryFuncN]).
//
// Arguments are converted to the parameter types: nil becomes the zero
// value, numeric kinds convert, callables ([Curried], [Func], other funcs)
// adapt to function-typed parameters, and anything else panics with an
// [*ArgumentTypeError]. A single result is returned as is, several results
// as []Erased, no result as nil.
func CurryFunc(f any, initial ...Erased) Curried {
	fn, arity := reflectFunc(f)
	return Curry(fn, arity, initial...)
}

// CurryFuncN is like [CurryFunc] with a forced arity. Fixed parameters
// beyond the forced arity receive zero values.
func CurryFuncN(f any, arity int, initial ...Erased) Curried {
	fn, _ := reflectFunc(f)
	return Curry(fn, arity, initial...)
}

// Invoke calls fn with args. fn may be a [Curried], a [Func], a
// func(Erased) Erased (arguments are applied one at a time), or any other
// Go function (called through [CurryFunc]). Any other value panics with a
// [*NotCallableError].
func Invoke(fn Erased, args ...Erased) Erased {
	switch f := fn.(type) {
	case Curried:
		return f.Call(args...)
	case Func:
		return f(args...)
	case func(Erased) Erased:
		if len(args) == 0 {
			return f
		}
		r := f(args[0])
		if len(args) > 1 {
			return Invoke(r, args[1:]...)
		}
		return r
	}
	if !isFunc(fn) {
		panic(&NotCallableError{Value: fn})
	}
	return CurryFunc(fn).Call(args...)
}

// Unary adapts any callable accepted by [Invoke] to a single-argument
// function.
func Unary(fn Erased) func(Erased) Erased {
	switch f := fn.(type) {
	case func(Erased) Erased:
		return f
	case Curried:
		return f.Unary()
	}
	return func(x Erased) Erased {
		return Invoke(fn, x)
	}
}

func isFunc(v Erased) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isCallable(v Erased) bool {
	if _, ok := v.(Curried); ok {
		return true
	}
	return isFunc(v)
}

func reflectFunc(f any) (Func, int) {
	if fn, ok := f.(Func); ok {
		return fn, 0
	}
	if !isFunc(f) {
		panic(&NotCallableError{Value: f})
	}
	rv := reflect.ValueOf(f)
	rt := rv.Type()
	fixed := rt.NumIn()
	if rt.IsVariadic() {
		fixed--
	}
	fn := func(args ...Erased) Erased {
		in := make([]reflect.Value, 0, max(len(args), fixed))
		for i, a := range args {
			pt, ok := paramType(rt, i)
			if !ok {
				break
			}
			in = append(in, argValue(i, a, pt))
		}
		for i := len(in); i < fixed; i++ {
			in = append(in, reflect.Zero(rt.In(i)))
		}
		return results(rv.Call(in))
	}
	return fn, fixed
}

func paramType(rt reflect.Type, i int) (reflect.Type, bool) {
	n := rt.NumIn()
	if rt.IsVariadic() && i >= n-1 {
		return rt.In(n - 1).Elem(), true
	}
	if i < n {
		return rt.In(i), true
	}
	return nil, false
}

func argValue(i int, a Erased, want reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(want)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(want) {
		return v
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) {
		return v.Convert(want)
	}
	if want.Kind() == reflect.Func && isCallable(a) {
		return adaptFunc(a, want)
	}
	panic(&ArgumentTypeError{Index: i, Want: want, Got: v.Type()})
}

// adaptFunc builds a function of type want that forwards to fn via Invoke.
func adaptFunc(fn Erased, want reflect.Type) reflect.Value {
	return reflect.MakeFunc(want, func(in []reflect.Value) []reflect.Value {
		args := make([]Erased, len(in))
		for i, v := range in {
			args[i] = v.Interface()
		}
		r := Invoke(fn, args...)
		switch want.NumOut() {
		case 0:
			return nil
		case 1:
			return []reflect.Value{argValue(0, r, want.Out(0))}
		}
		rs, ok := r.([]Erased)
		if !ok || len(rs) != want.NumOut() {
			panic(&ArgumentTypeError{Index: 0, Want: want.Out(0), Got: reflect.TypeOf(r)})
		}
		out := make([]reflect.Value, len(rs))
		for i, x := range rs {
			out[i] = argValue(i, x, want.Out(i))
		}
		return out
	})
}

func results(out []reflect.Value) Erased {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	rs := make([]Erased, len(out))
	for i, v := range out {
		rs[i] = v.Interface()
	}
	return rs
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Curry2 converts a typed binary function into curried form.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 converts a typed ternary function into curried form.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of [Curry2].
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}
