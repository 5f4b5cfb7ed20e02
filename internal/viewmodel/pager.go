package viewmodel

import (
	"strconv"
	"strings"
)

// PagerWindow is how many pages either side of the current one the wide
// pager shows.
const PagerWindow = 2

// PageItem is one slot of a summarized pager: a page number or a gap.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// SummarizePages lists the first and last page plus the current page and
// PagerWindow pages either side, in ascending order. Each run of skipped
// pages becomes a single ellipsis.
func SummarizePages(current, total int) []PageItem {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)

	out := make([]PageItem, 0, 2*PagerWindow+5)
	for p := 1; p <= total; p++ {
		if p == 1 || p == total || (p >= current-PagerWindow && p <= current+PagerWindow) {
			out = append(out, PageItem{Page: p})
			continue
		}
		if n := len(out); n > 0 && !out[n-1].Ellipsis {
			out = append(out, PageItem{Ellipsis: true})
		}
	}
	return out
}

// SummarizePagesNarrow shows at most the previous, current and next page.
func SummarizePagesNarrow(current, total int) []PageItem {
	if total <= 1 {
		return []PageItem{{Page: 1}}
	}
	current = clamp(current, 1, total)

	out := make([]PageItem, 0, 3)
	if current-1 >= 1 {
		out = append(out, PageItem{Page: current - 1})
	}
	out = append(out, PageItem{Page: current})
	if current+1 <= total {
		out = append(out, PageItem{Page: current + 1})
	}
	return out
}

// RenderPager draws items as a single line, e.g. "‹ 1 … 4 5 [6] 7 8 … 20 ›".
// The arrows are dropped at the first and last page.
func RenderPager(items []PageItem, current, total int) string {
	parts := make([]string, 0, len(items)+2)
	if current > 1 {
		parts = append(parts, "‹")
	}
	for _, it := range items {
		switch {
		case it.Ellipsis:
			parts = append(parts, "…")
		case it.Page == current:
			parts = append(parts, "["+strconv.Itoa(it.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	if current < total {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
