package types

import "time"

// Formula is a single catalog entry. Everything except IsFavorite and
// LastViewed is fixed when the store is seeded.
type Formula struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Expression  string     `json:"formula"`
	LaTeX       string     `json:"latex,omitempty"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Tips        []string   `json:"tips"`
	Examples    []Example  `json:"examples"`
	Concepts    []string   `json:"concepts"`
	Tags        []string   `json:"tags"`

	// Denormalized user state carried alongside the catalog row.
	IsFavorite bool       `json:"is_favorite"`
	LastViewed *time.Time `json:"last_viewed,omitempty"`
}

// Example is a worked problem attached to a formula.
type Example struct {
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Explanation string `json:"explanation"`
}

// Clone returns a deep copy so callers never share slices with the store or
// the seed catalog.
func (f Formula) Clone() Formula {
	c := f
	c.Tips = cloneStrings(f.Tips)
	c.Concepts = cloneStrings(f.Concepts)
	c.Tags = cloneStrings(f.Tags)
	if f.Examples != nil {
		c.Examples = make([]Example, len(f.Examples))
		copy(c.Examples, f.Examples)
	}
	if f.LastViewed != nil {
		t := *f.LastViewed
		c.LastViewed = &t
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// FormulaFilter narrows ListFormulas. Zero values match everything.
type FormulaFilter struct {
	Category    string
	Subcategory string
	// MaxDifficulty keeps formulas at or below the given level.
	MaxDifficulty Difficulty
}
