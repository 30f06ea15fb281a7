// Package fn provides small generic combinators for composing pure,
// single-argument transformation steps.
package fn

// Step is a fallible transformation of a single value.
type Step[T any] func(T) (T, error)

// Pipe composes steps left to right. The composed step stops at the
// first error and returns it.
func Pipe[T any](steps ...Step[T]) Step[T] {
	return func(v T) (T, error) {
		var err error
		for _, step := range steps {
			v, err = step(v)
			if err != nil {
				return v, err
			}
		}
		return v, nil
	}
}

// Pipe2 composes two steps with different intermediate types.
func Pipe2[A, B, C any](first func(A) (B, error), second func(B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := first(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(b)
	}
}

// Lift adapts an infallible function into a fallible step.
func Lift[A, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (B, error) {
		return f(a), nil
	}
}

// Map applies f to every element of in and returns a new slice.
// The input slice is never modified.
func Map[A, B any](in []A, f func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// Zip pairs elements of a and b positionally using f. The result has
// the length of the shorter input.
func Zip[A, B, C any](a []A, b []B, f func(A, B) C) []C {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = f(a[i], b[i])
	}
	return out
}

// Reduce folds in into a single value, starting from init.
func Reduce[A, B any](in []A, init B, f func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}
