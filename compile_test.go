package scss_test

import (
	"testing"

	scss "github.com/adrianhall/scssflat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileScenarios(t *testing.T) {
	var tests = []struct {
		name string
		src  string
		out  string
	}{
		{
			name: "sibling rules",
			src:  `.button{ margin: 0; padding:0; } h1{ color: red; }`,
			out:  ".button {\n  margin: 0;\n  padding: 0;\n}\n\nh1 {\n  color: red;\n}\n",
		},
		{
			name: "nested rule",
			src:  `.button{ margin: 0; h1 { color: red; } }`,
			out:  ".button {\n  margin: 0;\n}\n\n.button h1 {\n  color: red;\n}\n",
		},
		{
			name: "variable reference",
			src:  `$zig-orange: #f7a41d; .button { color: $zig-orange; }`,
			out:  ".button {\n  color: #f7a41d;\n}\n",
		},
		{
			name: "shadowing",
			src:  `$c: #111; .a { $c: #222; .b { color: $c; } }`,
			out:  ".a {\n}\n\n.a .b {\n  color: #222;\n}\n",
		},
		{
			name: "empty input",
			src:  ``,
			out:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := scss.Compile([]byte(tt.src), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	var tests = []struct {
		name string
		src  string
		kind scss.ErrKind
	}{
		{name: "forward reference", src: `$my-color: $zig-orange; $zig-orange: #f7a41d;`, kind: scss.UndefinedVariable},
		{name: "empty property value", src: `.x{margin:;}`, kind: scss.PropertyValueCannotBeEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scss.Compile([]byte(tt.src), nil)
			require.Error(t, err)
			serr, ok := err.(*scss.Error)
			require.True(t, ok)
			assert.Equal(t, tt.kind, serr.Kind)
		})
	}
}

func TestCompileShortCircuitsOnFirstError(t *testing.T) {
	out, err := scss.Compile([]byte(`.x{margin:;} .y{color:red;}`), nil)
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestCompileOnLexErrorHook(t *testing.T) {
	var called bool
	_, err := scss.Compile([]byte(`!bad`), func(pos int, kind scss.ErrKind) {
		called = true
		assert.Equal(t, scss.UnexpectedCharacter, kind)
		assert.Equal(t, 0, pos)
	})
	require.Error(t, err)
	assert.True(t, called)
}
