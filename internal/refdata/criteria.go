// Package refdata is the generic filtered-pagination-and-uniqueness engine
// behind every reference-data resource. A resource instantiates the engine
// with a Descriptor: a declarative table of filterable fields (with their
// criterion kinds and extractors), natural keys, and sortable columns.
// Adding a filterable field or a whole resource is a data change, not new
// branching code.
package refdata

// CriterionKind identifies how a single filter value is matched.
type CriterionKind int

const (
	// MatchExact is case-insensitive string equality.
	MatchExact CriterionKind = iota + 1
	// MatchContains is case-insensitive substring containment.
	MatchContains
	// MatchMin is an inclusive numeric lower bound.
	MatchMin
	// MatchMax is an inclusive numeric upper bound.
	MatchMax
	// MatchBool is boolean equality.
	MatchBool
	// MatchEnum is exact-match against an enum member. A raw value that does
	// not parse into the target enum yields a criterion that matches nothing
	// (fail-closed), never one that is silently dropped.
	MatchEnum
	// MatchReference is foreign-key id equality.
	MatchReference
)

// Criterion is one storage-agnostic filter constraint: a column, a match
// kind, and the parsed value for that kind. It is the unit both executors
// (in-memory and storage) evaluate, so business logic never embeds
// storage-specific expression trees.
type Criterion struct {
	Column string
	Kind   CriterionKind

	Text    string  // MatchExact, MatchContains, MatchEnum (canonical member)
	Number  float64 // MatchMin, MatchMax
	Flag    bool    // MatchBool
	RefID   uint    // MatchReference
	Invalid bool    // MatchEnum whose raw value failed to parse
}

// FilterSpec is an ordered list of criteria combined with AND.
// A zero-value spec constrains nothing and matches every record; a field
// absent from the request contributes no criterion at all.
type FilterSpec struct {
	criteria []Criterion
}

// Add appends a criterion to the spec, preserving order.
func (s *FilterSpec) Add(c Criterion) {
	s.criteria = append(s.criteria, c)
}

// Criteria returns the criteria in the order they were added.
func (s FilterSpec) Criteria() []Criterion {
	return s.criteria
}

// Empty reports whether the spec carries no criteria.
func (s FilterSpec) Empty() bool {
	return len(s.criteria) == 0
}
