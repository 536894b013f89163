// Package fuzzy suggests the contract variable a misspelt environment name
// was probably meant to be.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds close candidates by edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   3, // short names match everything
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Prefix   int // length of the common prefix, ties prefer longer
}

// FindBest returns the closest candidate, or "" when none is close enough.
// Exact matches are not suggestions and are skipped.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first. Comparison
// ignores case.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	in := strings.ToUpper(input)

	var matches []Match
	for _, c := range candidates {
		cu := strings.ToUpper(c)
		if cu == in {
			continue
		}
		d := m.distance(in, cu)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Prefix: commonPrefix(in, cu)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Prefix > matches[j].Prefix
	})
	return matches
}

// distance is the Levenshtein distance between a and b, cut short once it
// is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestName finds the best matching variable name
func FindBestName(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
