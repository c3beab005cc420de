// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"code.hybscloud.com/pfun"
	"code.hybscloud.com/pfun/collection"
	"code.hybscloud.com/pfun/internal/config"
	"code.hybscloud.com/pfun/ops"
	"github.com/rs/zerolog"
)

// sumOf and productOf are folds partially applied to a curried operator
// and a unit.
var (
	sumOf     = pfun.CurryFunc(collection.FoldL[int, int], ops.Add[int](), 0)
	productOf = pfun.CurryFunc(collection.FoldL[int, int], ops.Multiply[int](), 1)
)

// fibonacci is the naive recursion written with Fix and Conditions.
var fibonacci = pfun.Fix(func(self func(pfun.Erased) pfun.Erased) func(pfun.Erased) pfun.Erased {
	atMostOne := pfun.Unary(ops.LessOrEqualTo[int]().Call(pfun.Placeholder, 1))
	return pfun.Conditions(
		pfun.Case{
			When: func(n pfun.Erased) bool { return atMostOne(n).(bool) },
			Then: pfun.Identity,
		},
		pfun.Case{
			When: func(pfun.Erased) bool { return true },
			Then: func(n pfun.Erased) pfun.Erased {
				k := n.(int)
				return self(k-1).(int) + self(k-2).(int)
			},
		},
	)
})

// fibonacciT is the same recursion run on a trampoline.
var fibonacciT = pfun.FixT(func(self func(pfun.Erased) pfun.Trampoline) func(pfun.Erased) pfun.Trampoline {
	return func(n pfun.Erased) pfun.Trampoline {
		k := n.(int)
		if k <= 1 {
			return pfun.Done(k)
		}
		return self(k - 1).Bind(func(a pfun.Erased) pfun.Trampoline {
			return self(k - 2).Map(func(b pfun.Erased) pfun.Erased {
				return a.(int) + b.(int)
			})
		})
	}
})

func runFun(w io.Writer, log zerolog.Logger, cfg *config.Config) error {
	sum := sumOf.Call(cfg.Numbers)
	product := productOf.Call(cfg.Numbers)
	fib := fibonacci(cfg.Fibonacci)
	fibT := fibonacciT(cfg.Fibonacci)
	log.Info().
		Ints("numbers", cfg.Numbers).
		Int("fibonacci", cfg.Fibonacci).
		Msg("fun")

	fmt.Fprintf(w, "sum %v = %v\n", cfg.Numbers, sum)
	fmt.Fprintf(w, "product %v = %v\n", cfg.Numbers, product)
	fmt.Fprintf(w, "fibonacci(%d) = %v\n", cfg.Fibonacci, fib)
	fmt.Fprintf(w, "fibonacci(%d) on a trampoline = %v\n", cfg.Fibonacci, fibT)
	return nil
}
