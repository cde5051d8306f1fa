package scss

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Selector is a class (.x), id (#x), or type (x) selector.
	Selector Kind = iota
	// BlockStart is the '{' that opens a rule body.
	BlockStart
	// BlockEnd is the '}' that closes a rule body.
	BlockEnd
	// PropertyName is the identifier to the left of a property's ':'.
	PropertyName
	// PropertyValue is the unresolved lexeme to the right of a property's ':'.
	PropertyValue
	// EndStatement is the ';' terminating a property or variable declaration.
	EndStatement
	// VariableName is a '$name' lexeme, '$' included.
	VariableName
	// VariableValue is the unresolved lexeme to the right of a variable's ':'.
	VariableValue
	// EndOfFile is always the last token in a Tokenization.
	EndOfFile
)

var kindNames = [...]string{
	Selector:      "Selector",
	BlockStart:    "BlockStart",
	BlockEnd:      "BlockEnd",
	PropertyName:  "PropertyName",
	PropertyValue: "PropertyValue",
	EndStatement:  "EndStatement",
	VariableName:  "VariableName",
	VariableValue: "VariableValue",
	EndOfFile:     "EndOfFile",
}

// String returns the name of the token kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is a tagged half-open byte range [Start, End) into the input that
// produced it. The lexeme itself is recovered by slicing the input; Token
// carries no copy of the text.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Lexeme returns the slice of input this token spans.
func (t Token) Lexeme(input []byte) string {
	return string(input[t.Start:t.End])
}

// Tokenization is the flat output of the tokenizer: the token sequence plus
// the original input buffer, which every later stage needs for lexeme
// recovery.
type Tokenization struct {
	Tokens []Token
	Input  []byte
}

// Lexeme recovers the text of the i-th token.
func (tz Tokenization) Lexeme(i int) string {
	return tz.Tokens[i].Lexeme(tz.Input)
}
