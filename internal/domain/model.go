package domain

import (
	"time"

	"github.com/simp-lee/pagination"
)

// Referential is the common base struct for all reference-data records.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt: lifecycle state is an explicit column instead, so "deleted"
// rows stay visible to lookups and foreign-key holders.
type Referential struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Lifecycle Lifecycle `gorm:"size:16;not null;default:active;index" json:"lifecycle"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the record's primary key.
func (r *Referential) GetID() uint { return r.ID }

// Activate transitions the record to the Active state. New records start
// Active; a Disabled record may be re-activated through update or patch.
func (r *Referential) Activate() { r.Lifecycle = LifecycleActive }

// Disable transitions the record to the Disabled state (soft delete).
func (r *Referential) Disable() { r.Lifecycle = LifecycleDisabled }

// IsActive reports whether the record is in the Active state.
func (r *Referential) IsActive() bool { return r.Lifecycle == LifecycleActive }

// PageRequest holds pagination and sorting parameters.
// PageNumber and PageSize are both 1-based and at least 1.
type PageRequest struct {
	PageNumber int
	PageSize   int
	Sort       string
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Page is the response envelope for one page of a filtered collection.
// TotalCount is the count of ALL records satisfying the same predicate
// that produced Items, not just the returned page.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination builds the library's result struct from a page of items
// and the precomputed total, echoing the requested page and size. The
// library's own Paginate constructor clamps out-of-range pages and
// re-slices via callbacks, which the executors have already done, so the
// result is assembled as a literal instead. TotalPages is zero when total
// is zero, matching the empty-page envelope.
func NewPagination[T any](items []T, total int64, pageNumber, pageSize int) *pagination.Pagination[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return &pagination.Pagination[T]{
		Items:        items,
		CurrentPage:  pageNumber,
		ItemsPerPage: pageSize,
		TotalItems:   total,
		TotalPages:   totalPages,
	}
}

// NewPage maps a paginated result onto the wire envelope, echoing the
// requested page and size even when the result is empty.
func NewPage[T any](p *pagination.Pagination[T]) *Page[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:      items,
		PageNumber: p.CurrentPage,
		PageSize:   p.ItemsPerPage,
		TotalCount: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
