// Package directory implements the record queries of the directory example
// as explicit filter and map steps over an ordered slice.
package directory

// Filter returns the elements of in for which keep returns true, in their
// original order. The input is never modified; the result is never nil.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element of in, preserving order.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
