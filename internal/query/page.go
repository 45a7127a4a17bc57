package query

import (
	"errors"
	"net/url"

	"github.com/Skotchmaster/demo_api/internal/util"
)

var ErrInvalidPage = errors.New("invalid pagination parameters")

type Page struct {
	Offset int
	// Limit is nil when the caller asked for everything after Offset.
	Limit *int
}

type Pagination struct {
	Total  int  `json:"total"`
	Count  int  `json:"count"`
	Offset int  `json:"offset"`
	Limit  *int `json:"limit"`
}

func ParsePage(q url.Values) (Page, error) {
	offset, err := util.ParseOptionalInt(q.Get("offset"))
	if err != nil || (offset != nil && *offset < 0) {
		return Page{}, ErrInvalidPage
	}
	limit, err := util.ParseOptionalInt(q.Get("limit"))
	if err != nil || (limit != nil && *limit < 0) {
		return Page{}, ErrInvalidPage
	}

	p := Page{Limit: limit}
	if offset != nil {
		p.Offset = *offset
	}
	return p, nil
}

// Paginate cuts [offset, offset+limit) out of items, clipped to its bounds.
func Paginate[T any](items []T, p Page) ([]T, Pagination) {
	total := len(items)
	start := min(p.Offset, total)
	end := total
	// Compare against the remaining length so a huge limit cannot overflow.
	if p.Limit != nil && *p.Limit < total-start {
		end = start + *p.Limit
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return out, Pagination{
		Total:  total,
		Count:  len(out),
		Offset: p.Offset,
		Limit:  p.Limit,
	}
}
