package refdata

import "strings"

// Predicate reports whether an entity satisfies a composed filter.
type Predicate[T any] func(*T) bool

// Compose turns a FilterSpec into a single predicate that is the logical
// AND of all present criteria. An empty spec yields a predicate matching
// every entity. An Invalid enum criterion evaluates false for every entity.
// Composing is pure: it has no side effects and the returned predicate may
// be invoked any number of times.
//
// Criteria whose column is not declared in the descriptor's field table
// also evaluate false: an unresolvable constraint must not widen the result.
func (d *Descriptor[T]) Compose(spec FilterSpec) Predicate[T] {
	criteria := spec.Criteria()

	return func(e *T) bool {
		for _, c := range criteria {
			if !d.matches(c, e) {
				return false
			}
		}
		return true
	}
}

func (d *Descriptor[T]) matches(c Criterion, e *T) bool {
	f, ok := d.field(c.Column)
	if !ok {
		return false
	}

	switch c.Kind {
	case MatchExact:
		return norm(f.Text(e)) == norm(c.Text)
	case MatchContains:
		return strings.Contains(norm(f.Text(e)), norm(c.Text))
	case MatchMin:
		return f.Number(e) >= c.Number
	case MatchMax:
		return f.Number(e) <= c.Number
	case MatchBool:
		return f.Flag(e) == c.Flag
	case MatchEnum:
		if c.Invalid {
			return false
		}
		return norm(f.Text(e)) == norm(c.Text)
	case MatchReference:
		return f.Ref(e) == c.RefID
	default:
		return false
	}
}

// norm normalizes a string for case-insensitive comparison. Both sides of
// every comparison go through the same normalization, so equality is
// locale-invariant and unsurprising.
func norm(s string) string {
	return strings.ToUpper(s)
}
