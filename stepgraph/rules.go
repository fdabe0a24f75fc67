package stepgraph

// StepRule maps a current index to one candidate next index.
// Results outside [0, len(values)) are dropped by the graph.
type StepRule interface {
	Next(index int) int
}

// Offset is the step rule i ↦ i+k.
type Offset int

// Next implements StepRule.
func (k Offset) Next(index int) int { return index + int(k) }

// RuleFunc adapts an ordinary function to a StepRule.
type RuleFunc func(index int) int

// Next implements StepRule.
func (f RuleFunc) Next(index int) int { return f(index) }

// Offsets builds one Offset rule per k, preserving order.
func Offsets(ks ...int) []StepRule {
	rules := make([]StepRule, 0, len(ks))
	for _, k := range ks {
		rules = append(rules, Offset(k))
	}

	return rules
}

// isNilRule reports whether r is nil, including a typed nil RuleFunc.
func isNilRule(r StepRule) bool {
	if r == nil {
		return true
	}
	if f, ok := r.(RuleFunc); ok && f == nil {
		return true
	}

	return false
}
