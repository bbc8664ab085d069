package seed

import "github.com/mesh-intelligence/formulary/pkg/types"

var formulas = []types.Formula{
	// Algebra
	{
		ID:          "quadratic-formula",
		Name:        "Quadratic Formula",
		Expression:  "x = (-b ± √(b² - 4ac)) / 2a",
		LaTeX:       `x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}`,
		Description: "Solution to quadratic equations in the form ax² + bx + c = 0",
		Category:    "algebra",
		Subcategory: "Quadratic Equations",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Always check if the equation can be factored first",
			"The discriminant (b² - 4ac) tells you about the nature of roots",
			"If discriminant > 0: two real roots",
			"If discriminant = 0: one real root",
			"If discriminant < 0: two complex roots",
		},
		Examples: []types.Example{
			{
				Problem:     "Solve x² - 5x + 6 = 0",
				Solution:    "x = (5 ± √(25 - 24)) / 2 = (5 ± 1) / 2\nx = 3 or x = 2",
				Explanation: "Here a=1, b=-5, c=6. Plugging into the formula gives us the solutions.",
			},
		},
		Concepts: []string{
			"Quadratic equations have degree 2",
			"The ± symbol means there are usually two solutions",
			"The formula works for any quadratic equation in standard form",
		},
		Tags: []string{"quadratic", "equation", "roots", "solving"},
	},
	{
		ID:          "slope-formula",
		Name:        "Slope Formula",
		Expression:  "m = (y₂ - y₁) / (x₂ - x₁)",
		LaTeX:       `m = \frac{y_2 - y_1}{x_2 - x_1}`,
		Description: "Slope of a line passing through two points",
		Category:    "algebra",
		Subcategory: "Linear Equations",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"Rise over run",
			"Positive slope: line goes up",
			"Negative slope: line goes down",
			"Zero slope: horizontal line",
			"Undefined slope: vertical line",
		},
		Examples: []types.Example{
			{
				Problem:     "Find slope through (2,3) and (4,7)",
				Solution:    "m = (7-3)/(4-2) = 4/2 = 2",
				Explanation: "Subtract y-coordinates, divide by difference in x-coordinates.",
			},
		},
		Concepts: []string{
			"Rate of change",
			"Steepness of line",
			"Used in linear equations",
		},
		Tags: []string{"slope", "line", "linear", "rate of change"},
	},
	{
		ID:          "completing-square",
		Name:        "Completing the Square",
		Expression:  "x² + bx + c = (x + b/2)² - (b/2)² + c",
		LaTeX:       `x^2 + bx + c = \left(x + \frac{b}{2}\right)^2 - \left(\frac{b}{2}\right)^2 + c`,
		Description: "Technique to rewrite quadratic expressions in vertex form",
		Category:    "algebra",
		Subcategory: "Quadratic Equations",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Always factor out the coefficient of x² first",
			"Take half of the coefficient of x, square it, and add/subtract",
			"This method is essential for deriving the quadratic formula",
			"Useful for finding maximum/minimum values",
		},
		Examples: []types.Example{
			{
				Problem:     "Rewrite x² + 6x + 5 in vertex form",
				Solution:    "x² + 6x + 5 = (x + 3)² - 9 + 5 = (x + 3)² - 4",
				Explanation: "Half of 6 is 3; add and subtract 3² = 9.",
			},
			{
				Problem:     "Rewrite 2x² + 8x + 3 in vertex form",
				Solution:    "2x² + 8x + 3 = 2(x² + 4x) + 3 = 2(x + 2)² - 8 + 3",
				Explanation: "Factor out the leading coefficient 2 before completing the square.",
			},
		},
		Concepts: []string{
			"Transforms a quadratic into a perfect square trinomial plus a constant",
			"Reveals the vertex of a parabola",
		},
		Tags: []string{"quadratic", "vertex form", "parabola", "algebra"},
	},
	{
		ID:          "factoring-difference-squares",
		Name:        "Difference of Squares",
		Expression:  "a² - b² = (a + b)(a - b)",
		LaTeX:       `a^2 - b^2 = (a + b)(a - b)`,
		Description: "Special factoring pattern for expressions that are perfect squares minus perfect squares",
		Category:    "algebra",
		Subcategory: "Polynomials",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"Both terms must be perfect squares",
			"The operation between them must be subtraction",
			"Useful for simplifying complex expressions",
			"Common in trigonometric identities",
		},
		Examples: []types.Example{
			{
				Problem:     "Factor x² - 9",
				Solution:    "x² - 9 = (x + 3)(x - 3)",
				Explanation: "9 is 3², so a = x and b = 3.",
			},
			{
				Problem:     "Factor x⁴ - 1",
				Solution:    "x⁴ - 1 = (x² + 1)(x² - 1) = (x² + 1)(x + 1)(x - 1)",
				Explanation: "Apply the pattern twice: x² - 1 is itself a difference of squares.",
			},
		},
		Concepts: []string{
			"Fundamental factoring pattern",
			"Any a² - b² factors as (a + b)(a - b)",
		},
		Tags: []string{"factoring", "polynomial", "squares", "algebra"},
	},

	// Geometry
	{
		ID:          "distance-formula",
		Name:        "Distance Formula",
		Expression:  "d = √((x₂ - x₁)² + (y₂ - y₁)²)",
		LaTeX:       `d = \sqrt{(x_2 - x_1)^2 + (y_2 - y_1)^2}`,
		Description: "Distance between two points in a coordinate plane",
		Category:    "geometry",
		Subcategory: "Coordinate Geometry",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"Remember the order: (x₂ - x₁) and (y₂ - y₁)",
			"This is based on the Pythagorean theorem",
			"Works in 2D and 3D (add z-coordinates for 3D)",
			"Always take the positive square root",
		},
		Examples: []types.Example{
			{
				Problem:     "Find distance between (3, 4) and (7, 1)",
				Solution:    "d = √((7-3)² + (1-4)²) = √(16 + 9) = √25 = 5",
				Explanation: "Subtract coordinates, square the differences, add them, then take square root.",
			},
		},
		Concepts: []string{
			"Based on Pythagorean theorem",
			"Measures shortest distance between points",
			"Essential for coordinate geometry",
		},
		Tags: []string{"distance", "coordinates", "pythagorean", "geometry"},
	},
	{
		ID:          "pythagorean-theorem",
		Name:        "Pythagorean Theorem",
		Expression:  "a² + b² = c²",
		LaTeX:       `a^2 + b^2 = c^2`,
		Description: "In a right triangle, the square of the hypotenuse equals the sum of squares of other sides",
		Category:    "geometry",
		Subcategory: "Triangles",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"Only works for right triangles",
			"c is always the hypotenuse (longest side)",
			"a and b are the legs (shorter sides)",
			"The hypotenuse is opposite the right angle",
		},
		Examples: []types.Example{
			{
				Problem:     "Find hypotenuse if legs are 3 and 4",
				Solution:    "c² = 3² + 4² = 9 + 16 = 25\nc = √25 = 5",
				Explanation: "Square the legs, add them, then take square root to find hypotenuse.",
			},
		},
		Concepts: []string{
			"Fundamental theorem of right triangles",
			"Basis for distance formula",
			"Used in many geometric calculations",
		},
		Tags: []string{"triangle", "right angle", "hypotenuse", "legs"},
	},
	{
		ID:          "area-circle",
		Name:        "Area of Circle",
		Expression:  "A = πr²",
		LaTeX:       `A = \pi r^2`,
		Description: "Area of a circle with radius r",
		Category:    "geometry",
		Subcategory: "Circles",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"π ≈ 3.14159 (use 3.14 for approximations)",
			"r is the radius (half the diameter)",
			"The formula gives exact area",
			"Units are squared (e.g., cm², m²)",
		},
		Examples: []types.Example{
			{
				Problem:     "Find area of circle with radius 5 cm",
				Solution:    "A = π(5)² = 25π ≈ 78.54 cm²",
				Explanation: "Square the radius, multiply by π to get the area.",
			},
		},
		Concepts: []string{
			"π is the ratio of circumference to diameter",
			"Area increases with square of radius",
			"Fundamental shape in geometry",
		},
		Tags: []string{"circle", "area", "radius", "pi"},
	},
	{
		ID:          "volume-sphere",
		Name:        "Volume of Sphere",
		Expression:  "V = (4/3)πr³",
		LaTeX:       `V = \frac{4}{3}\pi r^3`,
		Description: "Volume of a sphere with radius r",
		Category:    "geometry",
		Subcategory: "3D Shapes",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Volume increases with cube of radius",
			"4/3 is approximately 1.33",
			"Units are cubed (e.g., cm³, m³)",
			"Largest volume for given surface area",
		},
		Examples: []types.Example{
			{
				Problem:     "Find volume of sphere with radius 3 cm",
				Solution:    "V = (4/3)π(3)³ = (4/3)π(27) = 36π ≈ 113.1 cm³",
				Explanation: "Cube the radius, multiply by π and 4/3.",
			},
		},
		Concepts: []string{
			"Perfect symmetry in all directions",
			"Optimal shape for volume",
			"Used in many natural phenomena",
		},
		Tags: []string{"sphere", "volume", "3D", "geometry"},
	},

	// Trigonometry
	{
		ID:          "sine-law",
		Name:        "Law of Sines",
		Expression:  "a/sin(A) = b/sin(B) = c/sin(C) = 2R",
		LaTeX:       `\frac{a}{\sin A} = \frac{b}{\sin B} = \frac{c}{\sin C} = 2R`,
		Description: "Relates sides and angles of any triangle",
		Category:    "trigonometry",
		Subcategory: "Basic Functions",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Works for any triangle (not just right triangles)",
			"R is the circumradius (radius of circumscribed circle)",
			"Use when you know two angles and one side",
			"Or when you know two sides and one angle",
		},
		Examples: []types.Example{
			{
				Problem:     "In triangle ABC, A=30°, B=45°, a=10. Find b.",
				Solution:    "b/sin(45°) = 10/sin(30°)\nb = 10 × sin(45°)/sin(30°) ≈ 14.14",
				Explanation: "Use the proportion to find the unknown side.",
			},
		},
		Concepts: []string{
			"Generalizes sine function to any triangle",
			"Related to circumscribed circle",
			"Complementary to Law of Cosines",
		},
		Tags: []string{"sine", "triangle", "trigonometry", "angles"},
	},
	{
		ID:          "cosine-law",
		Name:        "Law of Cosines",
		Expression:  "c² = a² + b² - 2ab cos(C)",
		LaTeX:       `c^2 = a^2 + b^2 - 2ab\cos C`,
		Description: "Generalization of Pythagorean theorem for any triangle",
		Category:    "trigonometry",
		Subcategory: "Applications",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Useful when you know three sides (SSS)",
			"Useful when you know two sides and included angle (SAS)",
			"Reduces to a² + b² = c² when C = 90°",
			"Can be rearranged to find angles: cos(C) = (a² + b² - c²)/(2ab)",
		},
		Examples: []types.Example{
			{
				Problem:     "Triangle with a=5, b=7, C=60°. Find c.",
				Solution:    "c² = 25 + 49 - 70(0.5) = 39\nc = √39",
				Explanation: "Substitute both sides and the included angle.",
			},
			{
				Problem:     "Find angle C in a triangle with sides 3, 4, 5",
				Solution:    "cos(C) = (9 + 16 - 25)/24 = 0\nC = 90°",
				Explanation: "Rearranging for cos(C) recovers the right angle of the 3-4-5 triangle.",
			},
		},
		Concepts: []string{
			"Relates all three sides to the cosine of one angle",
			"Reduces to the Pythagorean theorem at 90°",
		},
		Tags: []string{"cosine", "triangle", "trigonometry", "sides"},
	},
	{
		ID:          "double-angle-sine",
		Name:        "Double Angle Formula - Sine",
		Expression:  "sin(2θ) = 2sin(θ)cos(θ)",
		LaTeX:       `\sin 2\theta = 2\sin\theta\cos\theta`,
		Description: "Expresses sin(2θ) in terms of sin(θ) and cos(θ)",
		Category:    "trigonometry",
		Subcategory: "Identities",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"Derived from sin(A + B) = sin(A)cos(B) + cos(A)sin(B)",
			"Useful for integration and solving trigonometric equations",
			"Can be used to find exact values of sin(2θ)",
			"Related to power-reduction formulas",
		},
		Examples: []types.Example{
			{
				Problem:     "Compute sin(60°) from 30° values",
				Solution:    "sin(60°) = 2sin(30°)cos(30°) = 2(1/2)(√3/2) = √3/2",
				Explanation: "Double the 30° angle using known exact values.",
			},
			{
				Problem:     "If sin(θ) = 3/5 with θ acute, find sin(2θ)",
				Solution:    "sin(2θ) = 2(3/5)(4/5) = 24/25",
				Explanation: "cos(θ) = 4/5 follows from the 3-4-5 right triangle.",
			},
		},
		Concepts: []string{
			"Expresses functions of twice an angle in terms of the original angle",
			"Derived from the angle addition formulas",
		},
		Tags: []string{"sine", "identity", "double angle", "trigonometry"},
	},

	// Calculus
	{
		ID:          "derivative-power",
		Name:        "Power Rule for Derivatives",
		Expression:  "d/dx(xⁿ) = nxⁿ⁻¹",
		LaTeX:       `\frac{d}{dx}x^n = nx^{n-1}`,
		Description: "Derivative of a power function",
		Category:    "calculus",
		Subcategory: "Derivatives",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Bring down the exponent as coefficient",
			"Subtract 1 from the exponent",
			"Works for any real number n",
			"Constant has derivative 0",
		},
		Examples: []types.Example{
			{
				Problem:     "Find d/dx(x³)",
				Solution:    "d/dx(x³) = 3x²",
				Explanation: "Bring down 3, subtract 1 from exponent: 3-1=2.",
			},
		},
		Concepts: []string{
			"Fundamental rule of differentiation",
			"Basis for more complex derivatives",
			"Rate of change of power functions",
		},
		Tags: []string{"derivative", "power", "calculus", "differentiation"},
	},
	{
		ID:          "chain-rule",
		Name:        "Chain Rule",
		Expression:  "d/dx(f(g(x))) = f'(g(x)) × g'(x)",
		LaTeX:       `\frac{d}{dx}f(g(x)) = f'(g(x))\,g'(x)`,
		Description: "Derivative of a composite function",
		Category:    "calculus",
		Subcategory: "Derivatives",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"Identify the outer and inner functions",
			"Take derivative of outer function, keeping inner function unchanged",
			"Multiply by derivative of inner function",
			"Practice with simple examples first",
		},
		Examples: []types.Example{
			{
				Problem:     "Find d/dx(sin(x²))",
				Solution:    "d/dx(sin(x²)) = cos(x²) × 2x = 2x cos(x²)",
				Explanation: "The outer function is sin, the inner function is x².",
			},
			{
				Problem:     "Find d/dx((x² + 1)³)",
				Solution:    "3(x² + 1)² × 2x = 6x(x² + 1)²",
				Explanation: "Apply the power rule to the outer cube, then multiply by 2x.",
			},
		},
		Concepts: []string{
			"Differentiates composite functions",
			"Outer derivative evaluated at the inner function times the inner derivative",
		},
		Tags: []string{"derivative", "composite", "calculus", "differentiation"},
	},
	{
		ID:          "integration-by-parts",
		Name:        "Integration by Parts",
		Expression:  "∫u dv = uv - ∫v du",
		LaTeX:       `\int u\,dv = uv - \int v\,du`,
		Description: "Technique for integrating products of functions",
		Category:    "calculus",
		Subcategory: "Integrals",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"Choose u to be the function that becomes simpler when differentiated",
			"Choose dv to be the function that is easy to integrate",
			"Use LIATE rule: Logarithmic, Inverse trig, Algebraic, Trigonometric, Exponential",
			"May need to apply multiple times",
		},
		Examples: []types.Example{
			{
				Problem:     "Evaluate ∫x eˣ dx",
				Solution:    "u = x, dv = eˣ dx\n∫x eˣ dx = xeˣ - ∫eˣ dx = xeˣ - eˣ + C",
				Explanation: "x simplifies when differentiated and eˣ is easy to integrate.",
			},
		},
		Concepts: []string{
			"Derived from the product rule for differentiation",
			"Trades one integral for a simpler one",
		},
		Tags: []string{"integral", "integration", "calculus", "product"},
	},

	// Statistics
	{
		ID:          "mean-formula",
		Name:        "Arithmetic Mean",
		Expression:  "μ = (Σxᵢ) / n",
		LaTeX:       `\mu = \frac{1}{n}\sum_{i=1}^{n} x_i`,
		Description: "Average of a set of numbers",
		Category:    "statistics",
		Subcategory: "Descriptive Statistics",
		Difficulty:  types.DifficultyBeginner,
		Tips: []string{
			"Add all values, divide by count",
			"Sensitive to outliers",
			"Use for normally distributed data",
			"Symbol μ (mu) for population mean",
		},
		Examples: []types.Example{
			{
				Problem:     "Find mean of 2, 4, 6, 8, 10",
				Solution:    "μ = (2+4+6+8+10)/5 = 30/5 = 6",
				Explanation: "Sum all values (30) and divide by count (5).",
			},
		},
		Concepts: []string{
			"Measure of central tendency",
			"Balance point of data",
			"Most common average used",
		},
		Tags: []string{"mean", "average", "statistics", "central tendency"},
	},
	{
		ID:          "standard-deviation",
		Name:        "Standard Deviation",
		Expression:  "σ = √(Σ(xᵢ - μ)² / n)",
		LaTeX:       `\sigma = \sqrt{\frac{1}{n}\sum_{i=1}^{n}(x_i - \mu)^2}`,
		Description: "Measure of variability or spread in a dataset",
		Category:    "statistics",
		Subcategory: "Descriptive Statistics",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Always positive or zero",
			"Same units as the original data",
			"About 68% of data falls within ±1σ of mean",
			"About 95% of data falls within ±2σ of mean",
			"About 99.7% of data falls within ±3σ of mean",
		},
		Examples: []types.Example{
			{
				Problem:     "Find σ for 2, 4, 4, 4, 5, 5, 7, 9",
				Solution:    "Mean = 5\nσ = √(32/8) = √4 = 2",
				Explanation: "Square each deviation from the mean, average them, then take the root.",
			},
		},
		Concepts: []string{
			"Measures how far values deviate from the mean",
			"Low values mean data clusters near the mean",
		},
		Tags: []string{"variance", "spread", "statistics", "deviation"},
	},
	{
		ID:          "binomial-probability",
		Name:        "Binomial Probability",
		Expression:  "P(X = k) = C(n,k) × pᵏ × (1-p)ⁿ⁻ᵏ",
		LaTeX:       `P(X = k) = \binom{n}{k} p^k (1-p)^{n-k}`,
		Description: "Probability of exactly k successes in n independent trials",
		Category:    "statistics",
		Subcategory: "Probability",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"C(n,k) = n!/(k!(n-k)!) is the binomial coefficient",
			"p is the probability of success on each trial",
			"Trials must be independent",
			"Each trial has only two outcomes (success/failure)",
			"Expected value = np, Variance = np(1-p)",
		},
		Examples: []types.Example{
			{
				Problem:     "Flip a coin 10 times. Probability of exactly 3 heads?",
				Solution:    "P(X=3) = C(10,3) × (0.5)³ × (0.5)⁷ ≈ 0.117",
				Explanation: "There are 120 ways to choose which 3 flips are heads.",
			},
		},
		Concepts: []string{
			"Models successes in a fixed number of independent trials",
			"Each trial has the same probability of success",
		},
		Tags: []string{"probability", "binomial", "statistics", "trials"},
	},

	// Physics
	{
		ID:          "kinetic-energy",
		Name:        "Kinetic Energy",
		Expression:  "KE = ½mv²",
		LaTeX:       `KE = \frac{1}{2}mv^2`,
		Description: "Energy of motion for an object with mass m and velocity v",
		Category:    "physics",
		Subcategory: "Mechanics",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Energy is always positive",
			"Depends on square of velocity",
			"Units: Joules (J)",
			"Doubling velocity quadruples energy",
		},
		Examples: []types.Example{
			{
				Problem:     "Find KE of 2kg object moving at 3 m/s",
				Solution:    "KE = ½(2)(3)² = ½(2)(9) = 9 J",
				Explanation: "Square velocity, multiply by mass, divide by 2.",
			},
		},
		Concepts: []string{
			"Energy of motion",
			"Conserved in elastic collisions",
			"Related to work-energy theorem",
		},
		Tags: []string{"energy", "motion", "physics", "mechanics"},
	},

	// Linear algebra
	{
		ID:          "matrix-determinant-2x2",
		Name:        "2×2 Matrix Determinant",
		Expression:  "det(A) = ad - bc",
		LaTeX:       `\det\begin{pmatrix} a & b \\ c & d \end{pmatrix} = ad - bc`,
		Description: "Determinant of a 2×2 matrix [[a,b],[c,d]]",
		Category:    "linear-algebra",
		Subcategory: "Matrices",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Only defined for square matrices",
			"Determinant of 0 means matrix is not invertible",
			"Geometric interpretation: area/volume scaling factor",
			"Useful for solving systems of linear equations",
		},
		Examples: []types.Example{
			{
				Problem:     "Find det([[3,1],[2,4]])",
				Solution:    "det = (3×4) - (1×2) = 12 - 2 = 10",
				Explanation: "Multiply the main diagonal and subtract the off diagonal product.",
			},
			{
				Problem:     "Find det([[1,2],[3,6]])",
				Solution:    "det = (1×6) - (2×3) = 0",
				Explanation: "The rows are proportional so the matrix is not invertible.",
			},
		},
		Concepts: []string{
			"Scalar computed from a square matrix",
			"Measures how the matrix scales area",
		},
		Tags: []string{"matrix", "determinant", "linear algebra", "invertible"},
	},
	{
		ID:          "eigenvalue-characteristic",
		Name:        "Characteristic Equation",
		Expression:  "det(A - λI) = 0",
		LaTeX:       `\det(A - \lambda I) = 0`,
		Description: "Equation to find eigenvalues of matrix A",
		Category:    "linear-algebra",
		Subcategory: "Eigenvalues",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"λ represents the eigenvalue",
			"I is the identity matrix",
			"Degree of equation equals matrix size",
			"Eigenvalues can be real or complex",
			"Sum of eigenvalues equals trace of matrix",
		},
		Examples: []types.Example{
			{
				Problem:     "Find the eigenvalues of [[4,1],[2,3]]",
				Solution:    "(4-λ)(3-λ) - 2 = λ² - 7λ + 10 = 0\nλ = 5 or λ = 2",
				Explanation: "Expand the determinant of A - λI and solve the quadratic.",
			},
		},
		Concepts: []string{
			"Eigenvalues describe how a matrix scales vectors along special directions",
			"The characteristic polynomial has the eigenvalues as roots",
		},
		Tags: []string{"eigenvalue", "matrix", "linear algebra", "polynomial"},
	},

	// Number theory
	{
		ID:          "euclidean-algorithm",
		Name:        "Euclidean Algorithm",
		Expression:  "gcd(a,b) = gcd(b, a mod b)",
		LaTeX:       `\gcd(a, b) = \gcd(b, a \bmod b)`,
		Description: "Efficient method to find greatest common divisor",
		Category:    "number-theory",
		Subcategory: "Divisibility",
		Difficulty:  types.DifficultyIntermediate,
		Tips: []string{
			"Continue until remainder is 0",
			"Last non-zero remainder is the GCD",
			"Much faster than prime factorization for large numbers",
			"Can be extended to find Bézout coefficients",
		},
		Examples: []types.Example{
			{
				Problem:     "Find gcd(48, 18)",
				Solution:    "48 = 2×18 + 12\ngcd(18, 12) = gcd(12, 6) = gcd(6, 0) = 6",
				Explanation: "Replace the pair with (divisor, remainder) until the remainder is zero.",
			},
		},
		Concepts: []string{
			"The GCD of two numbers also divides their difference",
			"Runs in logarithmic time",
		},
		Tags: []string{"gcd", "divisor", "number theory", "algorithm"},
	},
	{
		ID:          "fermat-little-theorem",
		Name:        "Fermat's Little Theorem",
		Expression:  "aᵖ⁻¹ ≡ 1 (mod p)",
		LaTeX:       `a^{p-1} \equiv 1 \pmod{p}`,
		Description: "If p is prime and a is not divisible by p",
		Category:    "number-theory",
		Subcategory: "Modular Arithmetic",
		Difficulty:  types.DifficultyAdvanced,
		Tips: []string{
			"Only works when p is prime",
			"a must not be divisible by p",
			"Useful for primality testing",
			"Foundation for RSA cryptography",
			"Can be used to find modular inverses",
		},
		Examples: []types.Example{
			{
				Problem:     "Check 3⁶ mod 7",
				Solution:    "3⁶ = 729 = 104×7 + 1\n3⁶ ≡ 1 (mod 7)",
				Explanation: "7 is prime and does not divide 3.",
			},
		},
		Concepts: []string{
			"Necessary condition for primality",
			"Used in primality testing and cryptography",
		},
		Tags: []string{"prime", "modular", "number theory", "cryptography"},
	},
}
