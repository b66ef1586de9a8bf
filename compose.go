package stratum

// Compose combines unary functions from right to left: Compose(f, g, h)
// returns a function equivalent to f(g(h(x))).
//
// Composing nothing yields the identity function, and a single function is
// returned as-is. Both middleware wrappers (T = Dispatch) and enhancers
// (T = Constructor) compose this way.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(v T) T { return v }
	case 1:
		return fns[0]
	}

	composed := fns[len(fns)-1]
	for i := len(fns) - 2; i >= 0; i-- {
		outer, inner := fns[i], composed
		composed = func(v T) T { return outer(inner(v)) }
	}
	return composed
}
