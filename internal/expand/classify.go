package expand

// CategoryID names a classification bucket such as "BLUE" or "RED".
type CategoryID string

// Range is an inclusive [Lo, Hi] span of label numbers. Lo <= Hi is the
// caller's responsibility; an inverted range simply matches nothing.
type Range struct {
	Lo int
	Hi int
}

// Contains reports whether n lies within the range. Negative numbers,
// including NoNumber, never match.
func (r Range) Contains(n int) bool {
	return n >= 0 && n >= r.Lo && n <= r.Hi
}

// Rule binds a category to the ranges that select it.
type Rule struct {
	Category CategoryID
	Ranges   []Range
}

// InAnyRange reports whether n falls inside at least one of the rule's ranges.
func (r Rule) InAnyRange(n int) bool {
	for _, rg := range r.Ranges {
		if rg.Contains(n) {
			return true
		}
	}
	return false
}

// Classify returns the category of the first rule whose ranges contain n.
// Rules are checked in slice order, so when ranges overlap across
// categories the earlier rule wins. If no rule matches, fallback is
// returned.
func Classify(n int, rules []Rule, fallback CategoryID) CategoryID {
	for _, r := range rules {
		if r.InAnyRange(n) {
			return r.Category
		}
	}
	return fallback
}
