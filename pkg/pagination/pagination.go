package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

// Parse reads page and limit query values. Missing, malformed or non-positive
// values fall back to the defaults; limit is capped at MaxLimit and page so
// that the offset stays within an int32.
func Parse(page, limit string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if last := maxPage(p.Limit); p.Page > last {
		p.Page = last
	}
	return p
}

func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	page := p.Page
	if last := maxPage(p.Limit); page > last {
		page = last
	}
	return (page - 1) * p.Limit
}

func maxPage(limit int) int {
	if limit <= 0 {
		return math.MaxInt32
	}
	return math.MaxInt32 / limit
}

// TotalPages never reports fewer than one page, so an empty result still has page 1.
func TotalPages(count int64, limit int) int {
	if limit <= 0 || count <= 0 {
		return 1
	}
	return int(math.Ceil(float64(count) / float64(limit)))
}
