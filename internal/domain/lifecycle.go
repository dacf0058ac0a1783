package domain

import "strings"

// Lifecycle is the two-state lifecycle of a referential record.
// A "delete" flips the state to Disabled; the row itself is never removed,
// so references from other records stay resolvable. An update or patch may
// flip a Disabled record back to Active.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "active"
	LifecycleDisabled Lifecycle = "disabled"
)

// ParseLifecycle parses a raw string into a Lifecycle member, case-insensitively.
// The second return value reports whether the input named a valid member.
func ParseLifecycle(raw string) (Lifecycle, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LifecycleActive):
		return LifecycleActive, true
	case string(LifecycleDisabled):
		return LifecycleDisabled, true
	default:
		return "", false
	}
}

// Valid reports whether l is a defined lifecycle member.
func (l Lifecycle) Valid() bool {
	return l == LifecycleActive || l == LifecycleDisabled
}
