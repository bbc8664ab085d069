// Package seed holds the compiled-in formula catalog used to populate an empty
// store. The data is immutable; accessors hand out copies.
package seed

import "github.com/mesh-intelligence/formulary/pkg/types"

// Version identifies the revision of the compiled-in catalog.
const Version = "2026.1"

// Categories returns a copy of the category metadata in display order.
func Categories() []types.Category {
	out := make([]types.Category, len(categories))
	for i, c := range categories {
		c.Subcategories = append([]string(nil), c.Subcategories...)
		out[i] = c
	}
	return out
}

// Formulas returns a copy of every catalog formula in definition order.
func Formulas() []types.Formula {
	out := make([]types.Formula, len(formulas))
	for i, f := range formulas {
		out[i] = f.Clone()
	}
	return out
}

var categories = []types.Category{
	{
		ID:            "algebra",
		Name:          "Algebra",
		Icon:          "calculator",
		Description:   "Basic algebraic operations and equations",
		Color:         "#FF6B6B",
		Subcategories: []string{"Linear Equations", "Quadratic Equations", "Polynomials", "Inequalities"},
	},
	{
		ID:            "geometry",
		Name:          "Geometry",
		Icon:          "square",
		Description:   "Shapes, areas, volumes, and geometric properties",
		Color:         "#4ECDC4",
		Subcategories: []string{"2D Shapes", "3D Shapes", "Circles", "Triangles", "Coordinate Geometry"},
	},
	{
		ID:            "trigonometry",
		Name:          "Trigonometry",
		Icon:          "triangle",
		Description:   "Trigonometric functions and identities",
		Color:         "#45B7D1",
		Subcategories: []string{"Basic Functions", "Identities", "Inverse Functions", "Applications"},
	},
	{
		ID:            "calculus",
		Name:          "Calculus",
		Icon:          "function",
		Description:   "Derivatives, integrals, and limits",
		Color:         "#96CEB4",
		Subcategories: []string{"Derivatives", "Integrals", "Limits", "Series", "Applications"},
	},
	{
		ID:            "statistics",
		Name:          "Statistics",
		Icon:          "bar-chart",
		Description:   "Data analysis and probability",
		Color:         "#FFEAA7",
		Subcategories: []string{"Descriptive Statistics", "Probability", "Inferential Statistics", "Regression"},
	},
	{
		ID:            "physics",
		Name:          "Physics",
		Icon:          "atom",
		Description:   "Physical formulas and equations",
		Color:         "#DDA0DD",
		Subcategories: []string{"Mechanics", "Thermodynamics", "Electromagnetism", "Optics"},
	},
	{
		ID:            "linear-algebra",
		Name:          "Linear Algebra",
		Icon:          "grid",
		Description:   "Matrices, determinants, and eigenvalues",
		Color:         "#A29BFE",
		Subcategories: []string{"Matrices", "Eigenvalues", "Vector Spaces"},
	},
	{
		ID:            "number-theory",
		Name:          "Number Theory",
		Icon:          "hash",
		Description:   "Divisibility, primes, and modular arithmetic",
		Color:         "#FD79A8",
		Subcategories: []string{"Divisibility", "Modular Arithmetic", "Primes"},
	},
}
