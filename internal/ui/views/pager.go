package views

import (
	"fmt"
	"strings"
)

// Pager line defaults: two pages pinned at each end, five around the current one
const (
	MarginPages = 2
	RangePages  = 5
)

// PageBreak marks an elided run of pages in a sequence
const PageBreak = 0

// PageSequence returns the one-based page numbers to show for a pager whose
// current page is the zero-based selected index. Runs of hidden pages are
// collapsed into a single PageBreak; a break that would hide a single page
// shows that page instead.
func PageSequence(selected, pageCount, margin, rng int) []int {
	if pageCount <= 0 {
		return nil
	}

	if pageCount <= rng {
		seq := make([]int, 0, pageCount)
		for i := 0; i < pageCount; i++ {
			seq = append(seq, i+1)
		}
		return seq
	}

	half := float64(rng) / 2
	leftSide, rightSide := half, float64(rng)-half
	sel := float64(selected)

	if sel > float64(pageCount)-half {
		rightSide = float64(pageCount - selected)
		leftSide = float64(rng) - rightSide
	} else if sel < half {
		leftSide = sel
		rightSide = float64(rng) - leftSide
	}

	adjustedRight := rightSide
	if selected == 0 && rng > 1 {
		adjustedRight = rightSide - 1
	}

	type item struct {
		index   int
		isBreak bool
	}
	items := make([]item, 0, 2*margin+rng+2)

	for index := 0; index < pageCount; index++ {
		page := index + 1
		idx := float64(index)
		switch {
		case page <= margin,
			page > pageCount-margin,
			idx >= sel-leftSide && idx <= sel+adjustedRight:
			items = append(items, item{index: index})
		case len(items) > 0 && !items[len(items)-1].isBreak && (rng > 0 || margin > 0):
			items = append(items, item{index: index, isBreak: true})
		}
	}

	seq := make([]int, 0, len(items))
	for i, it := range items {
		if it.isBreak && i > 0 && i+1 < len(items) &&
			!items[i-1].isBreak && !items[i+1].isBreak &&
			items[i+1].index-items[i-1].index <= 2 {
			it.isBreak = false
		}
		if it.isBreak {
			seq = append(seq, PageBreak)
		} else {
			seq = append(seq, it.index+1)
		}
	}
	return seq
}

// renderPager renders the page links line, e.g. "<< 1 2 … 5 6 [7] 8 9 … 19 20 >>"
func (r *Renderer) renderPager(selected, totalPages int) string {
	if totalPages <= 0 {
		return r.styles.Dim.Render("<< >>  no pages")
	}

	parts := make([]string, 0, RangePages+2*MarginPages+4)

	prev := r.styles.PageLink.Render("<<")
	if selected <= 0 {
		prev = r.styles.Dim.Render("<<")
	}
	parts = append(parts, prev)

	for _, page := range PageSequence(selected, totalPages, MarginPages, RangePages) {
		switch {
		case page == PageBreak:
			parts = append(parts, r.styles.Dim.Render("…"))
		case page == selected+1:
			parts = append(parts, r.styles.CurrentPage.Render(fmt.Sprintf("[%d]", page)))
		default:
			parts = append(parts, r.styles.PageLink.Render(fmt.Sprintf("%d", page)))
		}
	}

	next := r.styles.PageLink.Render(">>")
	if selected+1 >= totalPages {
		next = r.styles.Dim.Render(">>")
	}
	parts = append(parts, next)

	line := strings.Join(parts, " ")
	if selected >= totalPages {
		// The index outlived a shrinking result set
		line += "  " + r.styles.StatusWarning.Render(fmt.Sprintf("page %d of %d", selected+1, totalPages))
	}
	return line
}
