// Package arrays holds the pointer-swap and dynamic-array exercises.
package arrays

// Swap exchanges the values behind a and b.
func Swap(a, b *int) {
	*a, *b = *b, *a
}

// Sequence returns a slice of n elements where each element equals its
// own index. Non-positive n yields nil.
func Sequence(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Table returns a rows-by-cols matrix with cell [i][j] = i*j.
// Non-positive dimensions yield nil.
func Table(rows, cols int) [][]int {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := range out[i] {
			out[i][j] = i * j
		}
	}
	return out
}
