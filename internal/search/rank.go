// Package search ranks catalog formulas against a free-text query.
//
// Each formula earns independent weighted signals for case-insensitive
// substring matches:
//
//	name contains query                               +10
//	description, a concept or an example explanation  +5
//	any tag contains query                            +3
//
// Formulas scoring zero are dropped; the rest are ordered by score
// descending, then name, then id, and truncated to Limit.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// Limit caps the number of hits Rank returns.
const Limit = 10

// Signal weights.
const (
	WeightName        = 10
	WeightDescription = 5
	WeightTag         = 3
)

// MatchType names the strongest signal that matched a formula.
type MatchType string

// Match types, strongest first.
const (
	MatchName        MatchType = "name"
	MatchDescription MatchType = "description"
	MatchTags        MatchType = "tags"
)

// Hit is a ranked search result.
type Hit struct {
	Formula types.Formula `json:"formula"`
	Score   int           `json:"score"`
	Match   MatchType     `json:"match"`
}

// Blank reports whether query has no searchable content.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Rank scores every formula against query and returns at most Limit hits.
// A blank query returns nil.
func Rank(formulas []types.Formula, query string) []Hit {
	if Blank(query) {
		return nil
	}
	m := newMatcher(query)

	var hits []Hit
	for _, f := range formulas {
		if h, ok := m.score(f); ok {
			hits = append(hits, h)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Formula.Name != b.Formula.Name {
			return a.Formula.Name < b.Formula.Name
		}
		return a.Formula.ID < b.Formula.ID
	})

	if len(hits) > Limit {
		hits = hits[:Limit]
	}
	return hits
}

// matcher holds a case-folded query. A cases.Caser is stateful, so each
// matcher owns its own.
type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.query = m.fold.String(query)
	return m
}

func (m *matcher) contains(s string) bool {
	return s != "" && strings.Contains(m.fold.String(s), m.query)
}

func (m *matcher) anyContains(ss []string) bool {
	for _, s := range ss {
		if m.contains(s) {
			return true
		}
	}
	return false
}

func (m *matcher) score(f types.Formula) (Hit, bool) {
	h := Hit{Formula: f}

	if m.anyContains(f.Tags) {
		h.Score += WeightTag
		h.Match = MatchTags
	}
	if m.contains(f.Description) || m.anyContains(f.Concepts) || m.explanationContains(f.Examples) {
		h.Score += WeightDescription
		h.Match = MatchDescription
	}
	if m.contains(f.Name) {
		h.Score += WeightName
		h.Match = MatchName
	}

	return h, h.Score > 0
}

func (m *matcher) explanationContains(examples []types.Example) bool {
	for _, ex := range examples {
		if m.contains(ex.Explanation) {
			return true
		}
	}
	return false
}
