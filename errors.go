package scss

import "fmt"

// ErrKind is a flat sum type of every way Compile can fail. There is no
// error hierarchy: callers switch on Kind, never on type assertions.
type ErrKind int

const (
	// Lexical errors, raised by the tokenizer.
	UnexpectedCharacter ErrKind = iota
	UnexpectedEndOfFile
	ClassSelectorCanOnlyContainsAlphaChar
	IdSelectorCanOnlyContainsAlphaChar
	IdentifierCanOnlyContainsAlphaChar
	// PropertyNameCanOnlyContainsAlphaChar is declared for taxonomy parity
	// with the error list this tokenizer was specified against; it is not
	// reachable here because a property name's character run only ever
	// stops at a char that NotImplemented already classifies.
	PropertyNameCanOnlyContainsAlphaChar
	PropertyValueCanOnlyContainsAlphaChar
	PropertyValueCannotBeEmpty
	PropertyValueCannotContainCRLF
	PropertyValueMustEndWithASemicolon
	// NoCRLFBetweenPropertyValueAndSemicolon is declared for taxonomy
	// parity; PropertyValueCannotContainCRLF already covers every CRLF
	// encountered while scanning a property value under this grammar.
	NoCRLFBetweenPropertyValueAndSemicolon
	VariableNameCanOnlyContainsAlphaChar
	VariableNameCannotContainCRLF
	VariableValueCannotContainCRLF

	// Grammatical errors, raised by the parser (and, for stray tokens the
	// grammar has no position for, the tokenizer).
	NotImplemented

	// Resolver errors.
	UndefinedVariable

	// OutOfMemory is carried for taxonomy parity with the source
	// specification. Go reports allocation failure by crashing the
	// process, not by returning a value, so this Kind is never
	// constructed.
	OutOfMemory
)

var errKindNames = [...]string{
	UnexpectedCharacter:                    "UnexpectedCharacter",
	UnexpectedEndOfFile:                    "UnexpectedEndOfFile",
	ClassSelectorCanOnlyContainsAlphaChar:  "ClassSelectorCanOnlyContainsAlphaChar",
	IdSelectorCanOnlyContainsAlphaChar:     "IdSelectorCanOnlyContainsAlphaChar",
	IdentifierCanOnlyContainsAlphaChar:     "IdentifierCanOnlyContainsAlphaChar",
	PropertyNameCanOnlyContainsAlphaChar:   "PropertyNameCanOnlyContainsAlphaChar",
	PropertyValueCanOnlyContainsAlphaChar:  "PropertyValueCanOnlyContainsAlphaChar",
	PropertyValueCannotBeEmpty:             "PropertyValueCannotBeEmpty",
	PropertyValueCannotContainCRLF:         "PropertyValueCannotContainCRLF",
	PropertyValueMustEndWithASemicolon:     "PropertyValueMustEndWithASemicolon",
	NoCRLFBetweenPropertyValueAndSemicolon: "NoCRLFBetweenPropertyValueAndSemicolon",
	VariableNameCanOnlyContainsAlphaChar:   "VariableNameCanOnlyContainsAlphaChar",
	VariableNameCannotContainCRLF:          "VariableNameCannotContainCRLF",
	VariableValueCannotContainCRLF:         "VariableValueCannotContainCRLF",
	NotImplemented:                         "NotImplemented",
	UndefinedVariable:                      "UndefinedVariable",
	OutOfMemory:                            "OutOfMemory",
}

// String returns the taxonomy name of the error kind.
func (k ErrKind) String() string {
	if k >= 0 && int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return "Unknown"
}

// Error is the single error type Compile and its stages return. It carries
// no stack trace and no source range: positions are reported separately,
// through the tokenizer's optional diagnostic hook (see Scanner.OnError),
// not through the returned value.
type Error struct {
	Kind ErrKind
	// Name, when non-empty, names the identifier involved (an undefined
	// variable, for instance). It has no effect on Kind comparisons.
	Name string
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
	return e.Kind.String()
}

// Unwrap always returns nil: Error is a leaf, not a wrapper.
func (e *Error) Unwrap() error { return nil }

func errKind(k ErrKind) error { return &Error{Kind: k} }

func errUndefinedVariable(name string) error {
	return &Error{Kind: UndefinedVariable, Name: name}
}
