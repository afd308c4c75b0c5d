// Package pagination slices ordered result sets into fixed-size pages
// selected by a 1-based page number.
package pagination

// Paginate returns the page-th window of size items from the sequence,
// preserving order. Pages are 1-based: page 1 covers items[0:size].
// A window that falls outside the sequence yields an empty page, never an
// error; page numbers below 1 are not corrected and also yield an empty page.
// The input is never mutated.
func Paginate[T any](page int, items []T, size int) []T {
	start := (page - 1) * size
	end := start + size

	if start < 0 || start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
