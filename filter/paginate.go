package filter

// Pagination describes one page of a result set.
type Pagination struct {
	Page       int
	TotalPages int
	Total      int
	Start      int // inclusive index into the result set
	End        int // exclusive
	HasPrev    bool
	HasNext    bool
}

// Paginate computes the page window for total items. The page count is
// ceil(total/size) with a floor of 1 and page is clamped into range.
func Paginate(total, page, size int) Pagination {
	if size < 1 {
		size = 1
	}
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Pagination{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		Start:      start,
		End:        end,
		HasPrev:    page > 1,
		HasNext:    page < totalPages && total > 0,
	}
}

// PageOf returns the slice of items for the requested page.
func PageOf[T any](items []T, page, size int) ([]T, Pagination) {
	pg := Paginate(len(items), page, size)
	return items[pg.Start:pg.End], pg
}
