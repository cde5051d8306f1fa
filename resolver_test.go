package scss_test

import (
	"testing"

	scss "github.com/adrianhall/scssflat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileToSheet(t *testing.T, src string) *scss.StyleSheet {
	t.Helper()
	sheet := parse(t, src)
	require.NoError(t, scss.Resolve(sheet))
	return sheet
}

func TestResolveSimpleReference(t *testing.T) {
	sheet := compileToSheet(t, "$zig-orange: #f7a41d; .button { color: $zig-orange; }")
	assert.Equal(t, "#f7a41d", sheet.Rules[0].Properties[0].Value)
}

func TestResolveForwardReferenceFails(t *testing.T) {
	sheet := parse(t, "$my-color: $zig-orange; $zig-orange: #f7a41d;")
	err := scss.Resolve(sheet)
	require.Error(t, err)
	serr, ok := err.(*scss.Error)
	require.True(t, ok)
	assert.Equal(t, scss.UndefinedVariable, serr.Kind)
}

func TestResolveUndefinedVariable(t *testing.T) {
	sheet := parse(t, ".x { color: $nope; }")
	err := scss.Resolve(sheet)
	require.Error(t, err)
	serr, ok := err.(*scss.Error)
	require.True(t, ok)
	assert.Equal(t, scss.UndefinedVariable, serr.Kind)
	assert.Equal(t, "$nope", serr.Name)
}

func TestResolveShadowingLaw(t *testing.T) {
	sheet := compileToSheet(t, "$c: #111; .a { $c: #222; .b { $c: #333; color: $c; } a2 { color: $c; } }")
	a := sheet.Rules[0]
	b := a.Children[0]
	a2 := a.Children[1]

	assert.Equal(t, "#333", b.Properties[0].Value, "depth-3 reference resolves to depth-3 value")
	assert.Equal(t, "#222", a2.Properties[0].Value, "depth-2 reference resolves to depth-2 value")
}

func TestResolveNoValueStartsWithDollarAfterward(t *testing.T) {
	sheet := compileToSheet(t, "$c: #111; .a { color: $c; } ")
	for _, v := range sheet.Variables {
		assert.False(t, len(v.Value) > 0 && v.Value[0] == '$')
	}
	for _, prop := range sheet.Rules[0].Properties {
		assert.False(t, len(prop.Value) > 0 && prop.Value[0] == '$')
	}
}
