package paginate

import "strconv"

// Sizes configures page sizing. The first page and subsequent pages may
// hold a different number of items.
type Sizes struct {
	First int
	Rest  int
}

// Uniform returns Sizes with the same capacity on every page
func Uniform(size int) Sizes {
	return Sizes{First: size, Rest: size}
}

// Page is a bounded slice of an ordered sequence plus paging metadata.
// Pages are 1-indexed.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ParsePage parses a raw page-number parameter. Anything that is not a
// positive integer comes back as 0 and is clamped by Paginate.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// Paginate slices items into the requested page. Out-of-range or invalid
// page numbers clamp to page 1 rather than failing, matching user-facing
// pagination widgets. Paginating the same input twice yields identical
// slices.
func Paginate[T any](items []T, pageNumber int, sizes Sizes) Page[T] {
	if sizes.First < 1 {
		sizes.First = 1
	}
	if sizes.Rest < 1 {
		sizes.Rest = 1
	}

	total := totalPages(len(items), sizes)
	if pageNumber < 1 || pageNumber > total {
		pageNumber = 1
	}

	var start, end int
	if pageNumber == 1 {
		start = 0
		end = sizes.First
	} else {
		start = sizes.First + (pageNumber-2)*sizes.Rest
		end = start + sizes.Rest
	}
	if end > len(items) {
		end = len(items)
	}
	if start > len(items) {
		start = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      pageNumber,
		TotalPages:  total,
		HasNext:     pageNumber < total,
		HasPrevious: pageNumber > 1,
	}
}

func totalPages(n int, sizes Sizes) int {
	if n <= sizes.First {
		return 1
	}
	rest := n - sizes.First
	return 1 + (rest+sizes.Rest-1)/sizes.Rest
}
