package scss

// Resolve walks the tree, rewriting every variable reference to its literal
// value, in place. Two passes run per scope: first the scope's own
// variable list resolves against itself (so a later variable can reference
// an earlier one, and only an earlier one — forward references are
// rejected), then the rule's properties resolve against its full
// Variables snapshot.
//
// Resolve has no scope stack: because every rule already carries a
// flattened snapshot of its visible environment (ancestors first, own
// bindings last), a single reverse linear scan of that snapshot finds the
// nearest — i.e. correctly shadowing — binding. Re-running
// resolveVariableList on a rule's full snapshot (rather than splitting out
// just the locally declared tail) is safe: the inherited prefix is a
// separate copy of the parent's list as it stood when this rule opened, so
// resolving it again in place yields the same literals the parent's pass
// produced.
func Resolve(sheet *StyleSheet) error {
	if err := resolveVariableList(sheet.Variables); err != nil {
		return err
	}
	for _, rule := range sheet.Rules {
		if err := resolveRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// resolveVariableList resolves the references within a single flat list of
// variables against itself: for variable i, only variables [0, i) are
// visible, scanned nearest-first.
func resolveVariableList(vars []Variable) error {
	for i := range vars {
		if !isReference(vars[i].Value) {
			continue
		}
		value, ok := lookupBefore(vars, i, vars[i].Value)
		if !ok {
			return errUndefinedVariable(vars[i].Value)
		}
		vars[i].Value = value
	}
	return nil
}

// resolveRule resolves a single rule's Variables snapshot, then its
// properties against that (now fully literal) snapshot, then recurses into
// its children.
func resolveRule(rule *StyleRule) error {
	if err := resolveVariableList(rule.Variables); err != nil {
		return err
	}

	for i, prop := range rule.Properties {
		if !isReference(prop.Value) {
			continue
		}
		value, ok := lookupBefore(rule.Variables, len(rule.Variables), prop.Value)
		if !ok {
			return errUndefinedVariable(prop.Value)
		}
		rule.Properties[i].Value = value
	}

	for _, child := range rule.Children {
		if err := resolveRule(child); err != nil {
			return err
		}
	}
	return nil
}

// isReference reports whether value is an unresolved variable reference.
func isReference(value string) bool {
	return len(value) > 0 && value[0] == '$'
}

// lookupBefore scans vars[0:before] in reverse for a binding named name,
// so the nearest (innermost, most-recently-declared) match wins.
func lookupBefore(vars []Variable, before int, name string) (string, bool) {
	for i := before - 1; i >= 0; i-- {
		if vars[i].Name == name {
			return vars[i].Value, true
		}
	}
	return "", false
}
