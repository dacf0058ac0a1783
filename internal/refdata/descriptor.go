package refdata

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/karimbh/refdata/internal/domain"
)

// validColumnName matches only alphanumeric characters and underscores,
// so descriptor column names can be interpolated into SQL safely.
var validColumnName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// FilterField declares one filterable field of a resource: the query
// parameter it is bound to, the storage column it constrains, the criterion
// kind, and the extractor used when evaluating the composed predicate
// against an in-memory collection. Exactly one extractor is set, matching
// the kind: Text for exact/contains/enum fields, Number for range bounds,
// Flag for booleans, Ref for foreign keys.
type FilterField[T any] struct {
	Param  string
	Column string
	Kind   CriterionKind

	// Parse maps a raw request value to the canonical enum member.
	// Only consulted for MatchEnum fields.
	Parse func(raw string) (string, bool)

	Text   func(*T) string
	Number func(*T) float64
	Flag   func(*T) bool
	Ref    func(*T) uint
}

// NaturalKey declares one business-meaningful field required to be unique
// among records of the resource, independent of lifecycle state.
type NaturalKey[T any] struct {
	Field string // storage column, also used in conflict messages
	Value func(*T) string
}

// Descriptor is the declarative definition of one reference-data resource.
type Descriptor[T any] struct {
	// Resource is the singular resource name used in messages, e.g. "bank".
	Resource string

	FilterFields []FilterField[T]
	NaturalKeys  []NaturalKey[T]

	// SortFields is the allowlist of sortable columns. The id column is
	// always permitted and is always appended as the final tiebreaker.
	SortFields []string
}

// ParseFilterSpec builds a FilterSpec from request query values, walking the
// descriptor's field table in order. Absent or empty parameters contribute
// no criterion. Malformed numeric, boolean, and reference values are
// rejected as validation errors before any query runs; an enum value that
// does not parse is NOT an error — it becomes an Invalid criterion that
// matches nothing.
func (d *Descriptor[T]) ParseFilterSpec(values url.Values) (FilterSpec, error) {
	var spec FilterSpec

	for _, f := range d.FilterFields {
		raw := values.Get(f.Param)
		if raw == "" {
			continue
		}

		c := Criterion{Column: f.Column, Kind: f.Kind}

		switch f.Kind {
		case MatchExact, MatchContains:
			c.Text = raw
		case MatchMin, MatchMax:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return FilterSpec{}, domain.Validation(fmt.Sprintf("%s must be a number", f.Param))
			}
			c.Number = n
		case MatchBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return FilterSpec{}, domain.Validation(fmt.Sprintf("%s must be a boolean", f.Param))
			}
			c.Flag = b
		case MatchEnum:
			member, ok := f.Parse(raw)
			if ok {
				c.Text = member
			} else {
				c.Invalid = true
			}
		case MatchReference:
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				return FilterSpec{}, domain.Validation(fmt.Sprintf("%s must be a positive id", f.Param))
			}
			c.RefID = uint(id)
		default:
			return FilterSpec{}, domain.Validation(fmt.Sprintf("unsupported filter kind for %s", f.Param))
		}

		spec.Add(c)
	}

	return spec, nil
}

// SortAllowed reports whether column may be used as the caller's sort field.
func (d *Descriptor[T]) SortAllowed(column string) bool {
	if column == "id" {
		return true
	}
	if !validColumnName.MatchString(column) {
		return false
	}
	for _, f := range d.SortFields {
		if f == column {
			return true
		}
	}
	return false
}

// field returns the filter field declared for the given column.
func (d *Descriptor[T]) field(column string) (FilterField[T], bool) {
	for _, f := range d.FilterFields {
		if f.Column == column {
			return f, true
		}
	}
	return FilterField[T]{}, false
}

// LifecycleField returns the standard lifecycle filter declaration shared by
// every resource: an enum criterion over the lifecycle column, fail-closed
// on unparsable values.
func LifecycleField[T any](get func(*T) domain.Lifecycle) FilterField[T] {
	return FilterField[T]{
		Param:  "lifecycle",
		Column: "lifecycle",
		Kind:   MatchEnum,
		Parse: func(raw string) (string, bool) {
			l, ok := domain.ParseLifecycle(raw)
			return string(l), ok
		},
		Text: func(e *T) string { return string(get(e)) },
	}
}
