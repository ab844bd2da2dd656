package markdown

// Partition splits items into exactly n contiguous slices. Every slice but the
// last holds len(items)/n elements and the last one takes the remainder, so
// with fewer items than slices the leading slices are empty.
func Partition[T any](items []T, n int) [][]T {
	if n <= 0 {
		return nil
	}

	size := len(items) / n
	out := make([][]T, n)
	for i := 0; i < n-1; i++ {
		out[i] = items[i*size : (i+1)*size : (i+1)*size]
	}
	out[n-1] = items[(n-1)*size : len(items) : len(items)]
	return out
}

// PageCount returns how many pages of perPage entries are needed to hold total entries.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
