package domain

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a validated pagination window.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the SQL offset for this window.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageStrict implements the strict pagination policy: both parameters
// must be present and parse to positive integers, otherwise ok is false and
// the caller is expected to return the entire unpaginated collection.
func ParsePageStrict(rawPage, rawLimit string) (Page, bool) {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page <= 0 {
		return Page{}, false
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit <= 0 {
		return Page{}, false
	}
	return Page{Page: page, Limit: limit}, true
}

// ParsePageDefaulted implements the defaulted pagination policy: a missing or
// invalid parameter silently falls back to its default, each one independently.
func ParsePageDefaulted(rawPage, rawLimit string) Page {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}
	if page, err := strconv.Atoi(rawPage); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(rawLimit); err == nil && limit > 0 {
		p.Limit = limit
	}
	return p
}
