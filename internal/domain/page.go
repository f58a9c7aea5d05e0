package domain

// Page is a zero-based page index and page size used by store queries.
type Page struct {
	Index int
	Size  int
}

// PageFromOffset converts a caller-visible from/size pair into a page.
// The page index is floor(from / size), so a from that is not a multiple of size
// starts at the beginning of the page containing it.
func PageFromOffset(from, size int) Page {
	return Page{Index: from / size, Size: size}
}

// Offset returns the row offset of the first element of the page.
func (p Page) Offset() int {
	return p.Index * p.Size
}

// ValidateOffset checks a from/size pair before it is converted into a page.
func ValidateOffset(from, size int) error {
	if from < 0 {
		return NewValidationError("from must not be negative")
	}
	if size <= 0 {
		return NewValidationError("size must be positive")
	}
	return nil
}
