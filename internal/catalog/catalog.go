// Package catalog holds the static reference data used by the analysis and
// validation engines: detection patterns, the known-item list, the official
// IRCTC menu, train schedules and community vote thresholds. All lookups are
// pure and fail soft.
package catalog

import "regexp"

// CategoryRule maps a complaint category to its ordered detection patterns.
// Rule order is significant: the first category with a matching pattern wins.
type CategoryRule struct {
	Category string
	Patterns []*regexp.Regexp
}

// CategoryOther is returned when no category pattern matches.
const CategoryOther = "Other"

// CategoryRules are evaluated in order against the lower-cased description.
var CategoryRules = []CategoryRule{
	{
		Category: "Overpricing",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)overcharg`),
			regexp.MustCompile(`(?i)charged?\s+(?:rs|inr|₹)?\s*\d+\s*(?:extra|more)`),
			regexp.MustCompile(`(?i)price\s+(?:was\s+)?(?:too|very|extremely)\s+high`),
			regexp.MustCompile(`(?i)mrp`),
		},
	},
	{
		Category: "Quality Issue",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)stale|spoiled|sour|soggy|cold|uncooked|burnt|raw`),
			regexp.MustCompile(`(?i)poor\s+quality`),
			regexp.MustCompile(`(?i)tast(?:e|ed)\s+(?:bad|awful|strange)`),
		},
	},
	{
		Category: "Hygiene Concern",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)dirty|unclean|smelly|smell`),
			regexp.MustCompile(`(?i)flies|cockroach|insect|worm`),
			regexp.MustCompile(`(?i)hygiene`),
			regexp.MustCompile(`(?i)contaminat`),
		},
	},
}

// KnownItems are canonical item phrases checked against descriptions in
// order; the first textual match wins. Longer phrases that contain shorter
// ones must come first ("water bottle" before "water" in the menu keys).
var KnownItems = []string{
	"water bottle", "veg thali", "non veg thali", "biryani", "fried rice",
	"paneer curry", "chicken curry", "samosa", "puff", "tea", "coffee",
	"sandwich", "burger", "cutlet", "poha", "idli", "dosa", "vada",
	"upma", "noodles", "juice", "lassi",
}

// Thresholds are the net-vote boundaries of the validation state machine.
type Thresholds struct {
	// Verified marks a complaint community-verified at this net vote count.
	Verified int
	// Escalated triggers auto-escalation at this net vote count.
	Escalated int
	// Disputed marks a complaint disputed at or below this net vote count.
	Disputed int
	// TrustedUser is the validated-report count that grants reporters
	// trusted status. Reserved; not consumed by scoring yet.
	TrustedUser int
}

// DefaultThresholds returns the production vote thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Verified:    10,
		Escalated:   25,
		Disputed:    -5,
		TrustedUser: 50,
	}
}
