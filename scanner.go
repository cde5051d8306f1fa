package scss

// Scanner is a single-pass, deterministic state machine over an input byte
// stream. It produces a flat token sequence and enforces the lexical
// well-formedness rules in §4.1 of the language grammar: non-empty property
// values, no raw CR/LF inside a value or name. It does not check that
// blocks are balanced (a stray '}' or an unclosed '{' scans without error);
// the parser rejects those.
//
// Every transition is explicit; there is no fall-through between states.
type Scanner struct {
	input []byte
	pos   int

	// OnError, if set, is called with the byte offset and kind of every
	// lexical error before it is returned from Scan. Scan's return value
	// never carries the position (see Error); this is the one place a
	// caller can recover it, e.g. to print a diagnostic to stderr.
	OnError func(pos int, kind ErrKind)
}

// NewScanner returns a Scanner over input. The Scanner borrows input; it
// must not be mutated while the Scanner is in use.
func NewScanner(input []byte) *Scanner {
	return &Scanner{input: input}
}

// state names the tokenizer's explicit states (§4.1).
type state int

const (
	stateStart state = iota
	stateSelector
	stateSelectorLookup
	stateStartBlock
	stateDone
)

const sentinel = 0 // '\x00', the synthetic end-of-input byte

// Scan runs the full state machine and returns the flat token sequence.
// It stops at the first lexical error.
func (s *Scanner) Scan() ([]Token, error) {
	var toks []Token
	st := stateStart

	for st != stateDone {
		switch st {
		case stateStart:
			next, toks2, err := s.dispatchStart()
			if err != nil {
				return nil, err
			}
			toks = append(toks, toks2...)
			st = next

		case stateSelector:
			toks2, next, err := s.scanSelectorRun()
			if err != nil {
				return nil, err
			}
			toks = append(toks, toks2...)
			st = next

		case stateSelectorLookup:
			next, toks2, err := s.scanSelectorLookup()
			if err != nil {
				return nil, err
			}
			toks = append(toks, toks2...)
			st = next

		case stateStartBlock:
			next, toks2, err := s.dispatchStartBlock()
			if err != nil {
				return nil, err
			}
			toks = append(toks, toks2...)
			st = next
		}
	}

	toks = append(toks, Token{Kind: EndOfFile, Start: len(s.input), End: len(s.input) + 1})
	return toks, nil
}

func (s *Scanner) fail(kind ErrKind) error {
	if s.OnError != nil {
		s.OnError(s.pos, kind)
	}
	return errKind(kind)
}

func (s *Scanner) cur() byte {
	if s.pos >= len(s.input) {
		return sentinel
	}
	return s.input[s.pos]
}

// skipSpace advances over blanks and line breaks (space, tab, CR, LF).
func (s *Scanner) skipSpace() {
	for isSpace(s.cur()) {
		s.pos++
	}
}

// skipBlank advances over blanks only (space, tab) — never CR/LF.
func (s *Scanner) skipBlank() {
	for isBlank(s.cur()) {
		s.pos++
	}
}

// readWhile advances the position while pred holds, starting from the
// current position, and returns the offset just past the run.
func (s *Scanner) readWhile(pred func(byte) bool) int {
	for pred(s.cur()) {
		s.pos++
	}
	return s.pos
}

// --- Start ---------------------------------------------------------------

func (s *Scanner) dispatchStart() (state, []Token, error) {
	s.skipSpace()
	ch := s.cur()

	switch {
	case isSelectorStart(ch):
		return stateSelector, nil, nil

	case ch == '$':
		toks, err := s.scanVariable()
		if err != nil {
			return 0, nil, err
		}
		return stateStart, toks, nil

	case ch == sentinel:
		return stateDone, nil, nil

	default:
		return 0, nil, s.fail(UnexpectedCharacter)
	}
}

func (s *Scanner) scanSelectorRun() ([]Token, state, error) {
	start := s.pos
	s.consumeSelectorPrefix()
	s.readWhile(isIdentChar)
	end := s.pos

	switch ch := s.cur(); {
	case isBlank(ch) || ch == '\r' || ch == '\n':
		s.skipSpace()
		return []Token{{Kind: Selector, Start: start, End: end}}, stateSelectorLookup, nil

	case ch == '{':
		blockStart := s.pos
		s.pos++
		return []Token{
			{Kind: Selector, Start: start, End: end},
			{Kind: BlockStart, Start: blockStart, End: s.pos},
		}, stateStartBlock, nil

	case ch == sentinel:
		return nil, 0, s.fail(UnexpectedEndOfFile)

	default:
		return nil, 0, s.fail(selectorKindError(start, s.input))
	}
}

// consumeSelectorPrefix advances past a leading '.' or '#', if present: the
// selector-start char class accepts identifier chars, '.', or '#', but only
// identifier chars may repeat.
func (s *Scanner) consumeSelectorPrefix() {
	if ch := s.cur(); ch == '.' || ch == '#' {
		s.pos++
	}
}

func selectorKindError(start int, input []byte) ErrKind {
	if start < len(input) {
		switch input[start] {
		case '.':
			return ClassSelectorCanOnlyContainsAlphaChar
		case '#':
			return IdSelectorCanOnlyContainsAlphaChar
		}
	}
	return IdentifierCanOnlyContainsAlphaChar
}

// scanSelectorLookup implements the (trivial, in this grammar subset)
// SelectorLookup state: skip space, then only '{' or EOF are live — this
// subset carries no selector combinators beyond nesting, so a fresh
// selector-start char here would restart at Selector, but the grammar
// never produces one in practice.
func (s *Scanner) scanSelectorLookup() (state, []Token, error) {
	s.skipSpace()
	switch ch := s.cur(); {
	case ch == '{':
		start := s.pos
		s.pos++
		return stateStartBlock, []Token{{Kind: BlockStart, Start: start, End: s.pos}}, nil
	case isSelectorStart(ch):
		return stateSelector, nil, nil
	case ch == sentinel:
		return stateDone, nil, nil
	default:
		return 0, nil, s.fail(UnexpectedCharacter)
	}
}

// --- StartBlock ------------------------------------------------------------

func (s *Scanner) dispatchStartBlock() (state, []Token, error) {
	s.skipSpace()
	ch := s.cur()

	switch {
	case ch == '$':
		toks, err := s.scanVariable()
		if err != nil {
			return 0, nil, err
		}
		return stateStartBlock, toks, nil

	case ch == '}':
		start := s.pos
		s.pos++
		return stateStartBlock, []Token{{Kind: BlockEnd, Start: start, End: s.pos}}, nil

	case isSelectorStart(ch):
		return s.scanNameOrSelector()

	case ch == sentinel:
		return stateDone, nil, nil

	default:
		return 0, nil, s.fail(UnexpectedCharacter)
	}
}

// scanNameOrSelector consumes an identifier-shaped run inside a block and
// disambiguates between a PropertyName and a nested Selector only once the
// follow character is seen: ':' means property, '{' means nested rule.
func (s *Scanner) scanNameOrSelector() (state, []Token, error) {
	start := s.pos
	s.consumeSelectorPrefix()
	s.readWhile(isIdentChar)
	nameEnd := s.pos

	s.skipBlank()

	switch ch := s.cur(); {
	case ch == ':':
		nameTok := Token{Kind: PropertyName, Start: start, End: nameEnd}
		s.pos++ // consume ':'

		valueTok, err := s.scanPropertyValue()
		if err != nil {
			return 0, nil, err
		}
		return stateStartBlock, []Token{nameTok, valueTok[0], valueTok[1]}, nil

	case ch == '{':
		s.pos++
		selTok := Token{Kind: Selector, Start: start, End: nameEnd}
		blockTok := Token{Kind: BlockStart, Start: s.pos - 1, End: s.pos}
		return stateStartBlock, []Token{selTok, blockTok}, nil

	default:
		return 0, nil, s.fail(NotImplemented)
	}
}

// scanPropertyValue implements the property-value subroutine (§4.1): skip
// blanks, open a PropertyValue token, consume property-value chars
// (including inner blanks, '#', and the '$' of a variable reference), then
// react to the terminator. Trailing
// blanks before ';' are part of the PropertyValue lexeme.
func (s *Scanner) scanPropertyValue() ([2]Token, error) {
	s.skipBlank()
	start := s.pos
	s.readWhile(isPropertyValueChar)
	end := s.pos

	switch ch := s.cur(); {
	case ch == ';':
		if trimmedEmpty(s.input, start, end) {
			return [2]Token{}, s.fail(PropertyValueCannotBeEmpty)
		}
		valTok := Token{Kind: PropertyValue, Start: start, End: end}
		semiStart := s.pos
		s.pos++
		return [2]Token{valTok, {Kind: EndStatement, Start: semiStart, End: s.pos}}, nil

	case ch == '}':
		return [2]Token{}, s.fail(PropertyValueMustEndWithASemicolon)

	case ch == '\r' || ch == '\n':
		return [2]Token{}, s.fail(PropertyValueCannotContainCRLF)

	case ch == sentinel:
		return [2]Token{}, s.fail(UnexpectedEndOfFile)

	default:
		return [2]Token{}, s.fail(PropertyValueCanOnlyContainsAlphaChar)
	}
}

// --- Variable subroutine ----------------------------------------------------

// scanVariable implements the variable subroutine (§4.1). The emitted
// VariableName token's range starts at the '$' itself: the resolver and
// parser both key on the full "$name" lexeme (the chosen resolution of the
// §9 Open Question on variable-name representation), so there is no
// special-casing at any call site that reads VariableName lexemes.
func (s *Scanner) scanVariable() ([]Token, error) {
	nameStart := s.pos // at '$'
	s.pos++            // consume '$'
	s.readWhile(isIdentChar)
	nameEnd := s.pos

	nameTok := Token{Kind: VariableName, Start: nameStart, End: nameEnd}

	s.skipBlank()
	switch ch := s.cur(); {
	case ch == '\r' || ch == '\n':
		return nil, s.fail(VariableNameCannotContainCRLF)
	case ch != ':':
		return nil, s.fail(VariableNameCanOnlyContainsAlphaChar)
	}
	s.pos++ // consume ':'
	s.skipBlank()

	valStart := s.pos
	s.readWhile(isPropertyValueChar)
	valEnd := s.pos
	// Trim trailing blanks from the value by rewinding end to the last
	// non-blank byte before the terminator.
	for valEnd > valStart && isBlank(s.input[valEnd-1]) {
		valEnd--
	}

	switch ch := s.cur(); {
	case ch == '\r' || ch == '\n':
		return nil, s.fail(VariableValueCannotContainCRLF)
	case ch == sentinel:
		return nil, s.fail(UnexpectedEndOfFile)
	case ch != ';':
		return nil, s.fail(UnexpectedCharacter)
	}

	valTok := Token{Kind: VariableValue, Start: valStart, End: valEnd}
	semiStart := s.pos
	s.pos++ // consume ';'

	return []Token{nameTok, valTok, {Kind: EndStatement, Start: semiStart, End: s.pos}}, nil
}

func trimmedEmpty(input []byte, start, end int) bool {
	for i := start; i < end; i++ {
		if !isBlank(input[i]) {
			return false
		}
	}
	return true
}

// --- character classes -----------------------------------------------------

func isIdentChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '-' || ch == '_'
}

func isSelectorStart(ch byte) bool {
	return isIdentChar(ch) || ch == '.' || ch == '#'
}

func isPropertyValueChar(ch byte) bool {
	return isIdentChar(ch) || isBlank(ch) || ch == '#' || ch == '$'
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isSpace(ch byte) bool {
	return isBlank(ch) || ch == '\r' || ch == '\n'
}
