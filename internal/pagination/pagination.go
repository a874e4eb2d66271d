package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (Page-1)*MaxLimit well inside int.
	MaxPage = math.MaxInt32
)

// Params is a requested page. Limit 0 means "no limit".
type Params struct {
	Page  int
	Limit int
}

// Parse reads page/limit query values, falling back to defaults for missing or
// invalid input and capping the limit.
func Parse(page, limit string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p
}

// All requests every record.
func All() Params {
	return Params{Page: 1}
}

func (p Params) Skip() int {
	if p.Limit <= 0 || p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination envelope returned next to list results.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewMeta(p Params, total int64) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.Limit)))
	} else if total > 0 {
		pages = 1
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}
