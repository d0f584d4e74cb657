package cascade

import (
	"bufio"
	"errors"
	"io"
	"math"
	"regexp"
	"strings"
)

// Style sheets are line oriented. Every line has to be of one of the
// following kinds.
var (
	selectorLine  = regexp.MustCompile(`^\s*(\.[a-z][\w\-]*(?:\.[\w\-]+)*) \{$`) // .polygon.selected {
	attributeLine = regexp.MustCompile(`^\s*([a-z][a-z\-]*): (.+);$`)            //   fill: green;
	ruleEndLine   = regexp.MustCompile(`^\s*\}$`)                                // }
	commentLine   = regexp.MustCompile(`^\s*// .+$`)                             // // comment
	emptyLine     = regexp.MustCompile(`^\s*$`)
)

var errAttributeOutsideRule = errors.New("attribute declared outside of a rule")

// ParseFromString parses style rules from the text of a style sheet and
// adds them to sheet. factory creates the declarations for the rules.
//
// The syntax is line oriented:
//
//	.a.b {           opens a rule for selector .a.b, nested in the enclosing rule
//	  fill: green;   sets an attribute of the innermost open rule
//	}                closes the innermost open rule
//	// a comment
//
// Nesting is flattened: a rule opened inside of another rule gets the
// enclosing rule's selector chain, extended by its own selector.
// Rules without any attributes are dropped.
//
// If the text cannot be parsed, a *ParseError is returned and the style
// sheet is left unchanged.
func (sheet *StyleSheet) ParseFromString(text string, factory DeclarationFactory) error {
	return sheet.Parse(strings.NewReader(text), factory)
}

// Parse reads the text of a style sheet from r. See ParseFromString.
func (sheet *StyleSheet) Parse(r io.Reader, factory DeclarationFactory) error {
	p := &sheetParser{
		chains:  []*SelectorChain{NewSelectorChain()}, // sentinel for top level
		newDecl: factory,
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt) // no limit on line length
	for scanner.Scan() {
		p.lineno++
		if err := p.parseLine(scanner.Text()); err != nil {
			tracer().Errorf("style sheet: %v", err)
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		err = &ParseError{Line: p.lineno + 1, Err: err}
		tracer().Errorf("style sheet: %v", err)
		return err
	}
	if len(p.chains) > 1 {
		err := &ParseError{Line: p.lineno, Err: ErrMissingClosingBrackets}
		tracer().Errorf("style sheet: %v", err)
		return err
	}
	for _, rule := range p.rules {
		sheet.AddRule(rule)
	}
	tracer().Debugf("style sheet: parsed %d lines, %d rules", p.lineno, len(p.rules))
	return nil
}

// sheetParser holds a stack of selector chains and a stack of declarations,
// one entry per open rule. The chain stack has an additional bottom entry
// for the top level. Completed rules are added to the style sheet only after
// the whole input has been parsed successfully.
type sheetParser struct {
	chains  []*SelectorChain
	decls   []Declaration
	rules   []*Rule // completed rules in order of declaration
	newDecl DeclarationFactory
	lineno  int
}

func (p *sheetParser) parseLine(line string) error {
	if m := selectorLine.FindStringSubmatch(line); m != nil {
		top := p.chains[len(p.chains)-1]
		p.chains = append(p.chains, top.Clone().AddSelector(NewSelector(m[1])))
		p.decls = append(p.decls, p.newDecl())
		return nil
	}
	if m := attributeLine.FindStringSubmatch(line); m != nil {
		if len(p.decls) == 0 {
			return &ParseError{Line: p.lineno, Err: errAttributeOutsideRule}
		}
		if err := p.decls[len(p.decls)-1].ParseAttribute(m[1], m[2]); err != nil {
			return &ParseError{Line: p.lineno, Err: err}
		}
		return nil
	}
	if ruleEndLine.MatchString(line) {
		if len(p.decls) == 0 {
			return &ParseError{Line: p.lineno, Err: ErrTooManyClosingBrackets}
		}
		chain := p.chains[len(p.chains)-1]
		decl := p.decls[len(p.decls)-1]
		p.chains = p.chains[:len(p.chains)-1]
		p.decls = p.decls[:len(p.decls)-1]
		if !decl.IsEmpty() {
			p.rules = append(p.rules, NewRule(chain, decl))
		}
		return nil
	}
	if commentLine.MatchString(line) || emptyLine.MatchString(line) {
		return nil
	}
	return &ParseError{Line: p.lineno}
}
