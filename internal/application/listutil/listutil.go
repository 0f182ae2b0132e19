// Package listutil parses list-view parameters for the admin tabs. The tabs
// page through in-memory slices fetched from the backend, so pagination here
// is slice arithmetic rather than query building.
package listutil

import (
	"net/url"
	"strconv"
	"strings"
)

// Params carries the page and search parameters of one tab view.
type Params struct {
	Page    int    // 1-indexed page number
	PerPage int    // rows per page
	Search  string // free-text filter, already trimmed
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed)
	PerPage    int // rows per page
	Total      int // total matching rows
	TotalPages int // ceil(Total / PerPage)
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 20

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 20, 50, 100}

// Parse extracts page, per_page, and q from URL query values.
// POST: Page >= 1; PerPage is one of PerPageOptions
func Parse(q url.Values) Params {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return Params{
		Page:    page,
		PerPage: perPage,
		Search:  strings.TrimSpace(q.Get("q")),
	}
}

// NewPageInfo computes pagination metadata, clamping the page into range.
// PRE: total >= 0
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Bounds returns the half-open slice range [start, end) for the current page
// of a list with PageInfo.Total items.
func (p PageInfo) Bounds() (start, end int) {
	start = (p.Page - 1) * p.PerPage
	end = start + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	if start > end {
		start = end
	}
	return start, end
}

// ShowPagination reports whether pagination controls should render.
func (p PageInfo) ShowPagination() bool {
	return p.Total > p.PerPage
}

// HasPrev reports whether an earlier page exists.
func (p PageInfo) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a later page exists.
func (p PageInfo) HasNext() bool { return p.Page < p.TotalPages }

// Matches reports whether any of the candidate fields contains the search
// string, case-insensitively. An empty search matches everything.
func Matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}
