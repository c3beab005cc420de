// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Trampoline is a suspended computation evaluated by an iterative loop.
//
// Deeply nested Bind chains and self-recursive functions built with [FixT]
// run in constant Go stack: pending continuations live on a heap-allocated
// stack owned by [Trampoline.Run]. Trampoline implements [Monad], so every
// lifting combinator works with it.
//
// The zero value is a completed computation holding nil.
type Trampoline struct {
	value Erased
	frame frame
}

// Done creates a completed computation with the given value.
func Done(v Erased) Trampoline {
	return Trampoline{value: v}
}

// TrampolineOf lifts a value into a completed computation.
// It is the unit of the Trampoline family, equivalent to [Done].
func TrampolineOf(v Erased) Trampoline {
	return Done(v)
}

// Suspend defers thunk until the computation is run.
func Suspend(thunk func() Trampoline) Trampoline {
	return Trampoline{frame: &suspendFrame{thunk: thunk}}
}

// IsDone reports whether t is already complete without further evaluation.
func (t Trampoline) IsDone() bool {
	return t.frame == nil
}

// Map applies f to the result of t.
func (t Trampoline) Map(f func(Erased) Erased) Trampoline {
	return Trampoline{frame: &mapFrame{first: t, f: f}}
}

// Bind sequences t with the computation produced by f.
func (t Trampoline) Bind(f func(Erased) Trampoline) Trampoline {
	return Trampoline{frame: &bindFrame{first: t, f: f}}
}

// Ap applies the function produced by t to the result of other.
func (t Trampoline) Ap(other Trampoline) Trampoline {
	return t.Bind(func(fn Erased) Trampoline {
		return other.Map(Unary(fn))
	})
}

// Seql sequences t and other, keeping the result of t.
func (t Trampoline) Seql(other Trampoline) Trampoline {
	return Seql(t, other)
}

// Seqr sequences t and other, keeping the result of other.
func (t Trampoline) Seqr(other Trampoline) Trampoline {
	return Seqr(t, other)
}

// Equals runs both computations and compares their results.
func (t Trampoline) Equals(other Trampoline) bool {
	return equal(t.Run(), other.Run())
}

// Run evaluates the computation and returns its result.
//
// Run processes frames iteratively: suspended thunks are forced in a loop,
// and continuations of bind/map frames are pushed onto an explicit stack.
// Run may be called more than once; each call re-evaluates from the start.
func (t Trampoline) Run() Erased {
	var stack []continuation
	cur := t
	for {
		switch f := cur.frame.(type) {
		case nil:
			if len(stack) == 0 {
				return cur.value
			}
			k := stack[len(stack)-1]
			stack[len(stack)-1] = continuation{}
			stack = stack[:len(stack)-1]
			if k.mapf != nil {
				cur = Trampoline{value: k.mapf(cur.value)}
				continue
			}
			cur = k.bind(cur.value)
		case *suspendFrame:
			cur = f.thunk()
		case *bindFrame:
			stack = append(stack, continuation{bind: f.f})
			cur = f.first
		case *mapFrame:
			stack = append(stack, continuation{mapf: f.f})
			cur = f.first
		default:
			panic("pfun: unknown trampoline frame")
		}
	}
}
