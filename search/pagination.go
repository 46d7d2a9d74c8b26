package search

import "letgonow/entity"

// PageSize is the fixed number of offers per result page.
const PageSize = 5

// PageItem is one pagination control: either a page button or an ellipsis
// placeholder.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func paginate(flights []entity.Flight, page int) Results {
	total := len(flights)
	totalPages := (total + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Results{
		Flights:    flights[start:end],
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
		Window:     PageWindow(page, totalPages),
	}
}

// PageWindow computes the windowed pagination controls: always the first and
// last page plus the current page and its neighbors, with a single ellipsis
// on each collapsed side. The number of items is bounded regardless of the
// page count.
func PageWindow(current, totalPages int) []PageItem {
	if totalPages <= 0 {
		return nil
	}
	if totalPages <= 7 {
		items := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			items = append(items, PageItem{Page: p})
		}
		return items
	}

	shown := func(p int) bool {
		return p == 1 || p == totalPages || (p >= current-1 && p <= current+1)
	}

	var items []PageItem
	ellipsisPending := false
	for p := 1; p <= totalPages; p++ {
		if shown(p) {
			if ellipsisPending {
				items = append(items, PageItem{Ellipsis: true})
				ellipsisPending = false
			}
			items = append(items, PageItem{Page: p})
			continue
		}
		ellipsisPending = true
	}

	return items
}
