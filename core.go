// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "reflect"

// Identity returns its argument.
func Identity(a Erased) Erased {
	return a
}

// Constant returns a function that ignores its argument and returns a.
func Constant(a Erased) Erased {
	return func(Erased) Erased {
		return a
	}
}

// Compose returns f after g.
func Compose(f, g func(Erased) Erased) func(Erased) Erased {
	return func(a Erased) Erased {
		return f(g(a))
	}
}

// Flip returns a curried function of arity 2 calling f with its two
// arguments swapped. f may be any callable accepted by [Invoke].
func Flip(f Erased) Curried {
	return Curry(func(args ...Erased) Erased {
		return Invoke(f, args[1], args[0])
	}, 2)
}

// Apply calls f with x.
func Apply(f, x Erased) Erased {
	return Invoke(f, x)
}

// Case is one branch of [Conditions].
type Case struct {
	When func(Erased) bool
	Then func(Erased) Erased
}

// Conditions returns a function that applies the Then of the first Case
// whose When holds. It panics with [ErrNoCondition] when none does.
func Conditions(cases ...Case) func(Erased) Erased {
	return func(a Erased) Erased {
		for _, c := range cases {
			if c.When(a) {
				return c.Then(a)
			}
		}
		panic(ErrNoCondition)
	}
}

// Property returns a function that looks up name in a map with string
// keys or in a struct (or pointer to struct) field. A missing key, a
// missing field or a nil map value gives Nothing.
func Property(name string) func(Erased) Maybe {
	return func(a Erased) Maybe {
		rv := reflect.ValueOf(a)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nothing
			}
			rv = rv.Elem()
		}
		switch rv.Kind() {
		case reflect.Map:
			kt := rv.Type().Key()
			if kt.Kind() != reflect.String {
				return nothing
			}
			v := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
			if !v.IsValid() {
				return nothing
			}
			return MaybeFromNullable(v.Interface())
		case reflect.Struct:
			sf, ok := rv.Type().FieldByName(name)
			if !ok || !sf.IsExported() {
				return nothing
			}
			return Just(rv.FieldByIndex(sf.Index).Interface())
		}
		return nothing
	}
}

// Construct returns a curried constructor for the struct type T. Its arity
// is the number of exported fields, which it fills in declaration order.
// Arguments are converted as by [CurryFunc].
func Construct[T any]() Curried {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		panic("pfun: Construct requires a struct type, got " + rt.String())
	}
	var fields []int
	for i := range rt.NumField() {
		if rt.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	return Curry(func(args ...Erased) Erased {
		v := reflect.New(rt).Elem()
		for i, fi := range fields {
			v.Field(fi).Set(argValue(i, args[i], rt.Field(fi).Type))
		}
		return v.Interface()
	}, len(fields))
}

// selfApply is the type of a function applied to itself.
type selfApply func(selfApply) func(Erased) Erased

// Fix returns the fixed point of f (the Y combinator). The function f
// receives "itself" and returns the recursive function:
//
//	fact := Fix(func(self func(Erased) Erased) func(Erased) Erased {
//		return func(n Erased) Erased {
//			if n.(int) == 0 {
//				return 1
//			}
//			return n.(int) * self(n.(int)-1).(int)
//		}
//	})
//
// Recursion through Fix uses Go stack proportional to its depth;
// see [FixT] for a stack-safe variant.
func Fix(f func(self func(Erased) Erased) func(Erased) Erased) func(Erased) Erased {
	w := selfApply(func(x selfApply) func(Erased) Erased {
		return f(func(n Erased) Erased {
			return x(x)(n)
		})
	})
	return w(w)
}

// FixOf is the typed fixed point of f.
func FixOf[A, B any](f func(self func(A) B) func(A) B) func(A) B {
	var g func(A) B
	g = f(func(a A) B {
		return g(a)
	})
	return g
}

// FixT is the trampolined fixed point of f. Every call to self is
// suspended, so recursion of any depth runs in constant Go stack when the
// returned function evaluates it with [Trampoline.Run].
func FixT(f func(self func(Erased) Trampoline) func(Erased) Trampoline) func(Erased) Erased {
	var step func(Erased) Trampoline
	step = f(func(a Erased) Trampoline {
		return Suspend(func() Trampoline {
			return step(a)
		})
	})
	return func(a Erased) Erased {
		return step(a).Run()
	}
}
