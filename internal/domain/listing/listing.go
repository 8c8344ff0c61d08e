// Package listing holds the shared paging/sorting contract used by every
// entity list.
package listing

import "fleet-admin-backend/internal/domain/fleeterr"

const (
	DefaultPageSize = 10
	// FeedBatchSize is the fixed batch fetched by the incremental vehicle
	// grid; a short batch signals exhaustion.
	FeedBatchSize = 9
)

// PageRequest describes one page of an ordered listing. At most one sort
// column is active; an empty SortColumn falls back to created_at descending.
type PageRequest struct {
	Page       int
	PageSize   int
	SortColumn string
	SortDesc   bool
}

func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fleeterr.Validationf("page must be >= 0")
	}
	if p.PageSize <= 0 {
		return fleeterr.Validationf("page size must be > 0")
	}
	return nil
}

// Offset returns the zero-based row offset of the page.
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}
