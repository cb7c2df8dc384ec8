// Package typeface sizes, loads and measures the fonts used for placeholder text.
package typeface

const (
	MinSize = 12
	MaxSize = 200
)

// tier divides the shorter image side by divisor when applies matches.
type tier struct {
	name    string
	applies func(side int) bool
	divisor int
}

// tiers is evaluated top-down; the last entry always matches.
var tiers = []tier{
	{name: "small", applies: func(side int) bool { return side < 100 }, divisor: 4},
	{name: "large", applies: func(side int) bool { return side > 1000 }, divisor: 8},
	{name: "medium", applies: func(int) bool { return true }, divisor: 6},
}

// Size returns the point size for text on a width x height image.
// Smaller images get proportionally larger text. The result is clamped to
// [MinSize, MaxSize].
func Size(width, height int) int {
	side := min(width, height)
	base := side / tierFor(side).divisor
	return max(MinSize, min(base, MaxSize))
}

func tierFor(side int) tier {
	for _, t := range tiers {
		if t.applies(side) {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
