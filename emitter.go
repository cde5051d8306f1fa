package scss

// EmittedRule is a single flattened CSS rule: a concatenated selector and
// the properties declared directly on it. EmittedRule carries no children
// — by the time Emit returns, nesting exists only as selector prefixes.
type EmittedRule struct {
	Selector   string
	Properties []Property
}

// Emit flattens a resolved StyleSheet into an ordered list of EmittedRule,
// depth-first pre-order, concatenating ancestor selectors with a single
// space (the descendant combinator) as it descends. Rules with zero
// properties still appear in the output; this subset never elides them
// (see §9 of the grammar this compiler implements).
func Emit(sheet *StyleSheet) []EmittedRule {
	var out []EmittedRule
	for _, rule := range sheet.Rules {
		out = emitRule(rule, "", out)
	}
	return out
}

func emitRule(rule *StyleRule, parentSelector string, out []EmittedRule) []EmittedRule {
	selector := rule.Selector
	if parentSelector != "" {
		selector = parentSelector + " " + rule.Selector
	}

	out = append(out, EmittedRule{Selector: selector, Properties: rule.Properties})

	for _, child := range rule.Children {
		out = emitRule(child, selector, out)
	}
	return out
}
