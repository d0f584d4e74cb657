package cascade_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetForEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	text := `.a {
		fill: green;
	}
	.b {
		fill: red;
	}`
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	var visited []*cascade.Rule
	sheet.ForEach(func(r *cascade.Rule) {
		visited = append(visited, r)
	})
	assert.Equal(t, rules, visited)
	t.Log(sheet.Dump())
}

func TestSheetParseNestedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	text := `.a.b {
		.c {
			fill: green;
		}
	}`
	sheet := cascade.NewStyleSheet()
	require.NoError(t, sheet.ParseFromString(text, newTestStyle))
	require.Equal(t, 1, sheet.Len(), "empty outer rule should not be added")
	rule := sheet.Rules()[0]
	assert.Equal(t, "green", fillOf(rule.Declaration()))
	require.Equal(t, 2, rule.Chain().Len())
	first, _ := rule.Chain().Selector(0)
	second, _ := rule.Chain().Selector(1)
	assert.Equal(t, []string{"a", "b"}, first.Classes())
	assert.Equal(t, []string{"c"}, second.Classes())
}

func TestSheetLastRuleFirst(t *testing.T) {
	text := `.a {
		fill: green;
	}
	.b {
		fill: green;
	}`
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	first, _ := sheet.Rules()[0].Chain().Selector(0)
	if !first.Has("b") {
		t.Errorf("expected rule declared last to come first, first rule is %s", first)
	}
}

func TestSheetSelectorPriorityFirst(t *testing.T) {
	text := `.a.b {
		fill: green;
	}
	.c {
		fill: green;
	}`
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	first, _ := sheet.Rules()[0].Chain().Selector(0)
	if first.String() != ".a.b" {
		t.Errorf("expected rule with higher selector priority to come first, is %s", first)
	}
}

func TestSheetChainPriorityFirst(t *testing.T) {
	text := `.a {
		.b {
			fill: green;
		}
	}
	.c {
		fill: green;
	}`
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	if chain := sheet.Rules()[0].Chain(); chain.String() != ".a .b" {
		t.Errorf("expected rule with higher chain priority to come first, is %s", chain)
	}
}

func TestSheetOrderingInvariant(t *testing.T) {
	sheet := cascade.NewStyleSheet()
	chains := []string{".a", ".a .b", ".c.d", ".e", ".f .g", ".a.b.c", ".h"}
	for _, c := range chains {
		sheet.AddRule(cascade.NewRule(cascade.ParseSelectorChain(c), styleWithFill(c)))
	}
	rules := sheet.Rules()
	for i := 1; i < len(rules); i++ {
		if rules[i-1].ComparePriority(rules[i]) < 0 {
			t.Errorf("rule %s precedes rule %s of higher priority", rules[i-1].Chain(), rules[i].Chain())
		}
	}
	// equal priority: later added come first
	var order []string
	for _, r := range rules {
		order = append(order, r.Chain().String())
	}
	expected := []string{".f .g", ".a .b", ".a.b.c", ".c.d", ".h", ".e", ".a"}
	assert.Equal(t, expected, order)
}

func TestSheetAppendRules(t *testing.T) {
	sheet, err := cascade.ParseStyleSheet(".a {\n fill: red;\n}\n.b {\n fill: red;\n}", newTestStyle)
	require.NoError(t, err)
	other, err := cascade.ParseStyleSheet(".c {\n fill: red;\n}\n.d {\n fill: red;\n}", newTestStyle)
	require.NoError(t, err)
	sheet.AppendRules(other)
	var order []string
	sheet.ForEach(func(r *cascade.Rule) {
		order = append(order, r.Chain().String())
	})
	assert.Equal(t, []string{".d", ".c", ".b", ".a"}, order)
	assert.Equal(t, 2, other.Len())
}

func TestSheetEmptyRuleDropped(t *testing.T) {
	text := `.a {
		// Just a comment.
	}`
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	assert.True(t, sheet.IsEmpty())
}

func TestSheetWindowsLineEndings(t *testing.T) {
	text := ".a {\r\n  fill: green;\r\n}\r\n"
	sheet, err := cascade.ParseStyleSheet(text, newTestStyle)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Len())
	assert.Equal(t, "green", fillOf(sheet.Rules()[0].Declaration()))
}

func TestSheetParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	tests := []struct {
		name  string
		text  string
		line  int
		cause error
	}{
		{"too many closing brackets", ".a {\n  fill: green;\n  }\n}", 4, cascade.ErrTooManyClosingBrackets},
		{"closing bracket at top level", "}", 1, cascade.ErrTooManyClosingBrackets},
		{"missing closing brackets", ".a {\n  fill: green;\n  .b {\n    fill: red;\n}", 5, cascade.ErrMissingClosingBrackets},
		{"unparsable line", ".a {\n  fill: green;\n  cannot be parsed\n}", 3, nil},
		{"attribute with leading hyphen", ".a {\n  -fill: green;\n}", 2, nil},
		{"selector with whitespace", ".alpha.bravo .charlie {\n  fill: green;\n}", 1, nil},
		{"missing space before bracket", ".a{\n  fill: green;\n}", 1, nil},
		{"missing semicolon", ".a {\n  fill: green\n}", 2, nil},
		{"comment without space", ".a {\n  //comment\n}", 2, nil},
		{"empty class in selector", ".a {\n  fill: red;\n}\n.a..b {\n  fill: green;\n}", 4, nil},
		{"trailing period in selector", ".a. {\n  fill: green;\n}", 1, nil},
	}
	for _, tt := range tests {
		sheet := cascade.NewStyleSheet()
		err := sheet.ParseFromString(tt.text, newTestStyle)
		var perr *cascade.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected a parse error, got %v", tt.name, err)
			continue
		}
		if perr.Line != tt.line {
			t.Errorf("%s: expected error for line %d, is for line %d", tt.name, tt.line, perr.Line)
		}
		if tt.cause != nil && !errors.Is(err, tt.cause) {
			t.Errorf("%s: expected error to be %v, is %v", tt.name, tt.cause, err)
		}
		if !sheet.IsEmpty() {
			t.Errorf("%s: expected sheet to stay empty after error, has %d rules", tt.name, sheet.Len())
		}
	}
}

func TestSheetErrorMessages(t *testing.T) {
	err := cascade.NewStyleSheet().ParseFromString(".a {\n  fill: green;\n  cannot be parsed\n}", newTestStyle)
	require.Error(t, err)
	assert.Equal(t, "line 3 in style sheet could not be parsed", err.Error())

	err = cascade.NewStyleSheet().ParseFromString(".a {\n  fill: green;\n}\n}", newTestStyle)
	require.Error(t, err)
	assert.Equal(t, "too many closing brackets in style sheet (line 4)", err.Error())

	err = cascade.NewStyleSheet().ParseFromString(".a {\n  fill: green;\n", newTestStyle)
	require.Error(t, err)
	assert.Equal(t, "missing closing brackets in style sheet (line 2)", err.Error())

	err = cascade.NewStyleSheet().ParseFromString(".a {\n  color: green;\n}", newTestStyle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), `unknown attribute "color"`)

	err = cascade.NewStyleSheet().ParseFromString("fill: green;", newTestStyle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestSheetNoPartialResults(t *testing.T) {
	sheet, err := cascade.ParseStyleSheet(".x {\n fill: blue;\n}", newTestStyle)
	require.NoError(t, err)
	err = sheet.ParseFromString(".a {\n fill: green;\n}\n.b {\n fill: red;\n", newTestStyle)
	require.ErrorIs(t, err, cascade.ErrMissingClosingBrackets)
	assert.Equal(t, 1, sheet.Len(), "failed parse must not add rules")
}

func TestSheetLongLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	long := strings.Repeat("x", 70000)
	sheet, err := cascade.ParseStyleSheet(".a {\n  fill: "+long+";\n}", newTestStyle)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Len())
	assert.Equal(t, long, fillOf(sheet.Rules()[0].Declaration()))
}

func TestSheetSelectorWithHyphensAndDigits(t *testing.T) {
	sheet, err := cascade.ParseStyleSheet(".control-point.level2 {\n  fill: green;\n}", newTestStyle)
	require.NoError(t, err)
	sel, err := sheet.Rules()[0].Chain().Selector(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"control-point", "level2"}, sel.Classes())
}
