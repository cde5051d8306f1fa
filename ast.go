package scss

// Variable is a (name, value) binding. Name includes the leading '$'.
// Value is an unresolved lexeme until the resolver runs; it may itself
// begin with '$' to denote a reference to another variable.
type Variable struct {
	Name  string
	Value string
}

// Property is a (name, value) declaration inside a rule body. Value is an
// unresolved lexeme until the resolver runs.
type Property struct {
	Name  string
	Value string
}

// StyleRule is a single nested rule: its own selector, its own properties,
// any nested child rules in source order, and a flattened snapshot of
// every variable visible at this scope (ancestor bindings first, then this
// rule's own bindings, in source order — shadowing is represented by a
// later entry with the same Name, never by overwriting the earlier one).
type StyleRule struct {
	Selector   string
	Properties []Property
	Children   []*StyleRule
	Variables  []Variable
}

// StyleSheet is the parsed root: top-level rules plus top-level variables.
type StyleSheet struct {
	Rules     []*StyleRule
	Variables []Variable
}
