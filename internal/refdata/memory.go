package refdata

import (
	"github.com/simp-lee/pagination"

	"github.com/karimbh/refdata/internal/domain"
)

// ExecutePage applies pred to items and returns one page plus the total
// count over the identical predicate. Items are evaluated in their given
// order (the caller's creation sequence), which serves as the deterministic
// total order before skip/take. Zero matches yields an empty items slice
// with the requested page and size echoed back. Out-of-range page values
// are clamped to 1 rather than rejected, matching the wire-level parser.
//
// This executor backs engine tests and proves the composer is
// storage-agnostic; production traffic goes through Repository.List.
func ExecutePage[T any](items []T, pred Predicate[T], req domain.PageRequest) *pagination.Pagination[T] {
	req = clampPageRequest(req)

	matched := make([]T, 0, len(items))
	for i := range items {
		if pred(&items[i]) {
			matched = append(matched, items[i])
		}
	}

	total := int64(len(matched))

	start := req.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + req.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return domain.NewPagination(matched[start:end], total, req.PageNumber, req.PageSize)
}

// clampPageRequest floors page number and size at 1 so a zero-value
// request cannot produce a negative offset.
func clampPageRequest(req domain.PageRequest) domain.PageRequest {
	if req.PageNumber < 1 {
		req.PageNumber = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 1
	}
	return req
}
