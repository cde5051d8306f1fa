package scss_test

import (
	"testing"

	scss "github.com/adrianhall/scssflat"
	"github.com/stretchr/testify/assert"
)

func TestPrintSingleRuleNoNesting(t *testing.T) {
	rules := []scss.EmittedRule{
		{Selector: "h1", Properties: []scss.Property{{Name: "color", Value: "red"}}},
	}
	got := scss.Print(rules)
	assert.Equal(t, "h1 {\n  color: red;\n}\n", got)
}

func TestPrintBlankLineBetweenRules(t *testing.T) {
	rules := []scss.EmittedRule{
		{Selector: ".button", Properties: []scss.Property{{Name: "margin", Value: "0"}, {Name: "padding", Value: "0"}}},
		{Selector: "h1", Properties: []scss.Property{{Name: "color", Value: "red"}}},
	}
	got := scss.Print(rules)
	want := ".button {\n  margin: 0;\n  padding: 0;\n}\n\nh1 {\n  color: red;\n}\n"
	assert.Equal(t, want, got)
}

func TestPrintEmptyRuleBody(t *testing.T) {
	rules := []scss.EmittedRule{{Selector: ".a"}}
	assert.Equal(t, ".a {\n}\n", scss.Print(rules))
}

func TestPrintNoRules(t *testing.T) {
	assert.Equal(t, "", scss.Print(nil))
}
