package refdata

import (
	"context"
	"errors"
	"strings"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
)

// Repository is the generic GORM-backed storage adapter for one reference
// resource. It evaluates composed criteria against the resource's
// collection, returning a count and an ordered page, and enforces
// natural-key uniqueness through both the advisory pre-check and the
// table's unique indexes.
type Repository[T any] struct {
	db   *gorm.DB
	desc *Descriptor[T]
}

// NewRepository creates a Repository for the resource described by desc.
func NewRepository[T any](db *gorm.DB, desc *Descriptor[T]) *Repository[T] {
	return &Repository[T]{db: db, desc: desc}
}

// Transaction runs fn against a repository bound to one database
// transaction, committing on success and rolling back on error or panic.
// Mutations run their uniqueness pre-checks and writes inside the same
// transaction this way.
func (r *Repository[T]) Transaction(ctx context.Context, fn func(tx *Repository[T]) error) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		return fn(&Repository[T]{db: tx, desc: r.desc})
	})
}

// Create inserts a new record.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// GetByID retrieves a record by its primary key. Disabled records are
// returned like any other; lifecycle state never hides a row from lookups.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	entity := new(T)
	if err := r.db.WithContext(ctx).First(entity, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return entity, nil
}

// Save persists all fields of an existing record.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// List returns one page of records matching spec, plus the total count
// over the identical criteria. Count and page run inside one transaction;
// on sqlite that is a genuine snapshot, on postgres READ COMMITTED, so a
// concurrent commit between the two statements can still be observed —
// that residual window is the documented limitation, not a silent one.
// Results are always totally ordered: the caller's allowlisted sort field
// first, then id ascending as the stable tiebreaker.
func (r *Repository[T]) List(ctx context.Context, spec FilterSpec, req domain.PageRequest) (*pagination.Pagination[T], error) {
	var (
		items []T
		total int64
	)

	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		base := tx.Model(new(T)).Scopes(r.criteriaScope(spec))

		if err := base.Count(&total).Error; err != nil {
			return err
		}

		return base.
			Scopes(r.orderScope(req)).
			Offset(req.Offset()).
			Limit(req.PageSize).
			Find(&items).Error
	})
	if err != nil {
		return nil, r.mapError(err)
	}

	if items == nil {
		items = []T{}
	}
	return domain.NewPagination(items, total, req.PageNumber, req.PageSize), nil
}

// CheckUnique looks up any record whose natural-key field equals value
// case-insensitively, regardless of lifecycle state. A match with id equal
// to excludeID is not a conflict (update semantics); excludeID zero means
// create semantics. This is an advisory pre-check for a friendly Conflict
// response: the table's unique index remains the correctness backstop
// under concurrency. The index compares byte-wise, so a concurrent pair
// differing only in case can slip past it; see the repository design notes.
func (r *Repository[T]) CheckUnique(ctx context.Context, field, value string, excludeID uint) error {
	if !validColumnName.MatchString(field) {
		return domain.NewAppError(domain.CodeInternal, "invalid natural key column", nil)
	}

	q := r.db.WithContext(ctx).Model(new(T)).
		Where("UPPER("+field+") = UPPER(?)", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return r.mapError(err)
	}
	if n > 0 {
		return domain.Conflict(r.desc.Resource+" with this "+field+" already exists", nil)
	}
	return nil
}

// criteriaScope translates the spec's criteria into WHERE conditions.
// Column names come from the descriptor, never from the request.
func (r *Repository[T]) criteriaScope(spec FilterSpec) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range spec.Criteria() {
			switch c.Kind {
			case MatchExact:
				db = db.Where("UPPER("+c.Column+") = UPPER(?)", c.Text)
			case MatchContains:
				db = db.Where("UPPER("+c.Column+") LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToUpper(c.Text))+"%")
			case MatchMin:
				db = db.Where(c.Column+" >= ?", c.Number)
			case MatchMax:
				db = db.Where(c.Column+" <= ?", c.Number)
			case MatchBool:
				db = db.Where(c.Column+" = ?", c.Flag)
			case MatchEnum:
				if c.Invalid {
					// Fail closed: an unparsable enum value matches nothing.
					db = db.Where("1 = 0")
				} else {
					db = db.Where("UPPER("+c.Column+") = UPPER(?)", c.Text)
				}
			case MatchReference:
				db = db.Where(c.Column+" = ?", c.RefID)
			}
		}
		return db
	}
}

// orderScope applies the caller's sort and the id tiebreaker. Without a
// total order, paging through a filtered set while the data changes can
// duplicate or skip rows across pages.
func (r *Repository[T]) orderScope(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field, direction, ok := parseSort(req.Sort)
		if ok && r.desc.SortAllowed(field) {
			if field == "id" {
				return db.Order("id " + direction)
			}
			db = db.Order(field + " " + direction)
		}
		return db.Order("id asc")
	}
}

// escapeLike neutralizes LIKE metacharacters in a contains value so the
// filter matches them literally, the same way the in-memory predicate does.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// parseSort splits a "field:direction" sort value.
func parseSort(sort string) (field, direction string, ok bool) {
	parts := strings.SplitN(sort, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	field = strings.TrimSpace(parts[0])
	direction = strings.TrimSpace(strings.ToLower(parts[1]))

	if field == "" || (direction != "asc" && direction != "desc") {
		return "", "", false
	}
	return field, direction, true
}

// mapError converts GORM errors to domain errors.
func (r *Repository[T]) mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.Conflict(r.desc.Resource+" already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite
// driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
