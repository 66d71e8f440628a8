package pure

import (
	"github.com/on-the-ground/memo_ive_go/memo"
)

type args2[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

type args3[I1, I2, I3 comparable] struct {
	i1 I1
	i2 I2
	i3 I3
}

type result[O1, O2 any] struct {
	o1 O1
	o2 O2
}

func TableizeI1O1[I1 comparable, O1 any](pureFn func(I1) O1) func(I1) O1 {
	return memo.New(memo.Computation[I1, O1](pureFn)).GetOrCompute
}

func TableizeI2O1[I1, I2 comparable, O1 any](pureFn func(I1, I2) O1) func(I1, I2) O1 {
	table := memo.New(func(a args2[I1, I2]) O1 {
		return pureFn(a.i1, a.i2)
	})
	return func(i1 I1, i2 I2) O1 {
		return table.GetOrCompute(args2[I1, I2]{i1, i2})
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](pureFn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	table := memo.New(func(a args3[I1, I2, I3]) O1 {
		return pureFn(a.i1, a.i2, a.i3)
	})
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return table.GetOrCompute(args3[I1, I2, I3]{i1, i2, i3})
	}
}

func TableizeI1O2[I1 comparable, O1, O2 any](pureFn func(I1) (O1, O2)) func(I1) (O1, O2) {
	table := memo.New(func(i1 I1) result[O1, O2] {
		o1, o2 := pureFn(i1)
		return result[O1, O2]{o1, o2}
	})
	return func(i1 I1) (O1, O2) {
		res := table.GetOrCompute(i1)
		return res.o1, res.o2
	}
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](pureFn func(I1, I2) (O1, O2)) func(I1, I2) (O1, O2) {
	table := memo.New(func(a args2[I1, I2]) result[O1, O2] {
		o1, o2 := pureFn(a.i1, a.i2)
		return result[O1, O2]{o1, o2}
	})
	return func(i1 I1, i2 I2) (O1, O2) {
		res := table.GetOrCompute(args2[I1, I2]{i1, i2})
		return res.o1, res.o2
	}
}

// TableizeFallibleI1 memoizes a function that may fail. Failed calls are not
// tabled and run again on the next call with the same argument.
func TableizeFallibleI1[I1 comparable, O1 any](fn func(I1) (O1, error)) func(I1) (O1, error) {
	return memo.NewFallible(memo.FallibleComputation[I1, O1](fn)).GetOrCompute
}
