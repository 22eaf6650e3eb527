package domain

import "strconv"

// DefaultPageSize is the number of items per page.
const DefaultPageSize = 20

// MaxPage returns max(1, ceil(total/size)).
func MaxPage(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage keeps page within [1, MaxPage(total, size)].
func ClampPage(page, total, size int) int {
	maxPage := MaxPage(total, size)
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// Paginate returns the slice [(page-1)*size, page*size) of items after
// clamping page, together with the clamped page.
func Paginate(items []Item, page, size int) ([]Item, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = ClampPage(page, len(items), size)
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]Item, 0, end-start)
	for _, item := range items[start:end] {
		out = append(out, item.Clone())
	}
	return out, page
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
