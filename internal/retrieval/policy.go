// Package retrieval holds the randomized selection rules used by the
// "remember" and "pick" queries.
package retrieval

import (
	"math/rand"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// Policy picks one element uniformly at random from a candidate set.
// The random generator returns an int in [0, n).
type Policy struct {
	intn func(n int) int
}

// NewPolicy returns a Policy backed by math/rand.
func NewPolicy() *Policy {
	return &Policy{intn: rand.Intn}
}

// NewPolicyWithGenerator returns a Policy using a caller-supplied generator.
// Tests use it to make the choice deterministic.
func NewPolicyWithGenerator(intn func(n int) int) *Policy {
	return &Policy{intn: intn}
}

// Pick returns one candidate chosen uniformly at random.
// An empty candidate set yields domain.ErrNotFound.
func Pick[T any](p *Policy, candidates []T) (T, error) {
	if len(candidates) == 0 {
		var zero T
		return zero, domain.ErrNotFound
	}
	return lo.SampleBy(candidates, p.intn), nil
}

// CategoryFilter is an optional SQL LIKE pattern matched against the stored
// category. The pattern is case-sensitive and used verbatim: "Food" matches
// only the category "Food", "%Foo%" matches any category containing "Foo".
type CategoryFilter struct {
	pattern string
	set     bool
}

// NoCategory matches every category.
var NoCategory = CategoryFilter{}

// NewCategoryFilter builds a filter from optional user input.
// nil or blank input means no filter.
func NewCategoryFilter(raw *string) CategoryFilter {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return NoCategory
	}
	return CategoryFilter{pattern: *raw, set: true}
}

// Pattern returns the LIKE pattern and whether the filter is active.
func (f CategoryFilter) Pattern() (string, bool) {
	return f.pattern, f.set
}
