package scss

// parser is a recursive-descent parser over a buffered token array. peek
// inspects without advancing, eat returns-and-advances, lexeme recovers
// the source text of a token via the shared input buffer.
type parser struct {
	tokens []Token
	input  []byte
	cursor int
}

// Parse turns a token sequence into a StyleSheet. It is the sole entry
// point into the parser; Tokenization ties the tokens to the input buffer
// the parser needs for lexeme recovery.
func Parse(tz Tokenization) (*StyleSheet, error) {
	p := &parser{tokens: tz.Tokens, input: tz.Input}
	return p.parseStyleSheet()
}

func (p *parser) peek() Token {
	return p.tokens[p.cursor]
}

func (p *parser) eat() Token {
	t := p.tokens[p.cursor]
	if t.Kind != EndOfFile {
		p.cursor++
	}
	return t
}

func (p *parser) lexeme(t Token) string {
	return t.Lexeme(p.input)
}

func (p *parser) expect(kind Kind) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return Token{}, errKind(NotImplemented)
	}
	return p.eat(), nil
}

// parseStyleSheet implements the top-level grammar: a sequence of variable
// declarations and style rules, in source order, until EndOfFile.
func (p *parser) parseStyleSheet() (*StyleSheet, error) {
	sheet := &StyleSheet{}

	for p.peek().Kind != EndOfFile {
		switch p.peek().Kind {
		case VariableName:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			sheet.Variables = append(sheet.Variables, v)

		case Selector:
			rule, err := p.parseStyleRule(sheet.Variables)
			if err != nil {
				return nil, err
			}
			sheet.Rules = append(sheet.Rules, rule)

		default:
			return nil, errKind(NotImplemented)
		}
	}

	return sheet, nil
}

// parseVariable expects VariableName, VariableValue, EndStatement in order.
func (p *parser) parseVariable() (Variable, error) {
	name, err := p.expect(VariableName)
	if err != nil {
		return Variable{}, err
	}
	value, err := p.expect(VariableValue)
	if err != nil {
		return Variable{}, err
	}
	if _, err := p.expect(EndStatement); err != nil {
		return Variable{}, err
	}
	return Variable{Name: p.lexeme(name), Value: p.lexeme(value)}, nil
}

// parseProperty expects PropertyName, PropertyValue, EndStatement in order.
func (p *parser) parseProperty() (Property, error) {
	name, err := p.expect(PropertyName)
	if err != nil {
		return Property{}, err
	}
	value, err := p.expect(PropertyValue)
	if err != nil {
		return Property{}, err
	}
	if _, err := p.expect(EndStatement); err != nil {
		return Property{}, err
	}
	return Property{Name: p.lexeme(name), Value: p.lexeme(value)}, nil
}

// parseStyleRule expects Selector, BlockStart, then a mixed sequence of
// variable declarations, properties, and nested rules, then BlockEnd.
// parentVariables is copied into the rule's own Variables before any local
// declaration is appended: shadowing is always by append, never replace,
// so a nested rule parsed before the shadowing declaration still sees the
// ancestor binding. The rule's own properties resolve against its complete
// list, shadowing declarations included, wherever they appear in the body.
func (p *parser) parseStyleRule(parentVariables []Variable) (*StyleRule, error) {
	selTok, err := p.expect(Selector)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(BlockStart); err != nil {
		return nil, err
	}

	rule := &StyleRule{Selector: p.lexeme(selTok)}
	rule.Variables = append(rule.Variables, parentVariables...)

	for {
		switch p.peek().Kind {
		case VariableName:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			rule.Variables = append(rule.Variables, v)

		case PropertyName:
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			rule.Properties = append(rule.Properties, prop)

		case Selector:
			child, err := p.parseStyleRule(rule.Variables)
			if err != nil {
				return nil, err
			}
			rule.Children = append(rule.Children, child)

		case BlockEnd:
			p.eat()
			return rule, nil

		default:
			return nil, errKind(NotImplemented)
		}
	}
}
