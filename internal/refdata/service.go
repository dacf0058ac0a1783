package refdata

import (
	"context"

	"github.com/simp-lee/pagination"

	"github.com/karimbh/refdata/internal/domain"
)

// Entity constrains the pointer type of a reference record to the lifecycle
// surface the engine manages.
type Entity[T any] interface {
	*T
	GetID() uint
	Activate()
	Disable()
	IsActive() bool
}

// Mutator applies request changes to a loaded record. It reports whether
// anything actually changed, so an empty patch skips the write entirely
// while still succeeding.
type Mutator[T any] func(*T) (changed bool, err error)

// Service is the generic business layer for one reference resource. All
// correctness for concurrent mutation comes from the storage layer; the
// service holds no mutable state between requests.
type Service[T any, P Entity[T]] struct {
	repo *Repository[T]
	desc *Descriptor[T]
}

// NewService creates a Service for the resource described by desc.
func NewService[T any, P Entity[T]](repo *Repository[T], desc *Descriptor[T]) *Service[T, P] {
	return &Service[T, P]{repo: repo, desc: desc}
}

// Create validates every natural key and persists the record, which always
// starts Active. Pre-checks and the insert share one transaction; if a
// concurrent create slips past the pre-check, the unique index rejects it
// and the violation surfaces as the same Conflict error.
func (s *Service[T, P]) Create(ctx context.Context, entity *T) error {
	P(entity).Activate()

	return s.repo.Transaction(ctx, func(tx *Repository[T]) error {
		for _, key := range s.desc.NaturalKeys {
			if err := tx.CheckUnique(ctx, key.Field, key.Value(entity), 0); err != nil {
				return err
			}
		}
		return tx.Create(ctx, entity)
	})
}

// Get retrieves a record by id, whatever its lifecycle state.
func (s *Service[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of records matching spec.
func (s *Service[T, P]) List(ctx context.Context, spec FilterSpec, req domain.PageRequest) (*pagination.Pagination[T], error) {
	return s.repo.List(ctx, spec, req)
}

// Update loads the record, applies the mutator, re-validates every natural
// key with the record's own id excluded, and saves. A mutator reporting no
// change short-circuits to a successful no-op. A missing id short-circuits
// to not-found before anything is validated or written.
func (s *Service[T, P]) Update(ctx context.Context, id uint, apply Mutator[T]) (*T, error) {
	var out *T

	err := s.repo.Transaction(ctx, func(tx *Repository[T]) error {
		entity, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changed, err := apply(entity)
		if err != nil {
			return err
		}
		if !changed {
			out = entity
			return nil
		}

		for _, key := range s.desc.NaturalKeys {
			if err := tx.CheckUnique(ctx, key.Field, key.Value(entity), id); err != nil {
				return err
			}
		}

		if err := tx.Save(ctx, entity); err != nil {
			return err
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes a record: it transitions to Disabled and stays in
// storage under its id. Deleting an already-Disabled record succeeds and
// leaves it Disabled. Nothing cascades to records referencing it.
func (s *Service[T, P]) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx *Repository[T]) error {
		entity, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		P(entity).Disable()
		return tx.Save(ctx, entity)
	})
}
