// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Erased represents a type-erased value. Container payloads, curried
// arguments and trampoline intermediates are all Erased; concrete types are
// recovered via type assertions at the edges ([MatchMaybe], [Curry2],
// the generic collection functions).
type Erased = any

// frame is the interface for defunctionalized trampoline steps.
// Dispatch uses type switches, not tags; frame is a pure marker interface.
// A nil frame means the computation is complete.
type frame interface {
	frame() // unexported marker method
}

// suspendFrame defers the rest of the computation behind a thunk.
// Evaluating the thunk yields the next step without growing the Go stack.
type suspendFrame struct {
	thunk func() Trampoline
}

func (*suspendFrame) frame() {}

// bindFrame represents monadic bind: Bind(first, f).
type bindFrame struct {
	// first is evaluated before f.
	first Trampoline
	// f receives the value of first and returns the next step.
	f func(Erased) Trampoline
}

func (*bindFrame) frame() {}

// mapFrame represents functor mapping: Map(first, f).
// Kept separate from bindFrame to avoid wrapping every pure result in Done.
type mapFrame struct {
	first Trampoline
	f     func(Erased) Erased
}

func (*mapFrame) frame() {}

// continuation is one pending entry of the evaluation stack.
// Exactly one of bind and mapf is set.
type continuation struct {
	bind func(Erased) Trampoline
	mapf func(Erased) Erased
}
