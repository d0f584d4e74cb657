package cssimport

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade"
	"go.uber.org/multierr"
)

// ErrUnsupportedSelector is wrapped by errors for selectors which cannot
// be expressed as a selector chain.
var ErrUnsupportedSelector = errors.New("unsupported selector")

// ErrUnsupportedAtRule is wrapped by errors for skipped at-rules.
var ErrUnsupportedAtRule = errors.New("unsupported at-rule")

// a compound class selector, e.g. ".polygon.selected"
var classSelector = regexp.MustCompile(`^(\.[A-Za-z_][\w\-]*)+$`)

// Import parses CSS text and converts its rules to a style sheet.
// factory creates the declarations for the rules.
//
// If the CSS cannot be parsed at all, Import returns nil and the parser
// error. Otherwise a style sheet is returned, holding all rules which could
// be converted. Problems with single selectors, at-rules or declarations
// are collected and returned as a combined error (see multierr.Errors).
func Import(text string, factory cascade.DeclarationFactory) (*cascade.StyleSheet, error) {
	stylesheet, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("CSS parser: %v", err)
		return nil, fmt.Errorf("cannot parse CSS: %w", err)
	}
	sheet := cascade.NewStyleSheet()
	var errs error
	for _, r := range stylesheet.Rules {
		errs = multierr.Append(errs, importRule(sheet, r, factory))
	}
	tracer().Debugf("CSS import: %d rules converted", sheet.Len())
	if errs != nil {
		tracer().Infof("CSS import: %d problems", len(multierr.Errors(errs)))
	}
	return sheet, errs
}

func importRule(sheet *cascade.StyleSheet, r *css.Rule, factory cascade.DeclarationFactory) error {
	if r.Kind == css.AtRule {
		return fmt.Errorf("%w: %s", ErrUnsupportedAtRule, r.Name)
	}
	var errs error
	for _, sel := range r.Selectors {
		chain, err := ChainFromSelector(sel)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		decl := factory()
		for _, d := range r.Declarations {
			if err := decl.ParseAttribute(d.Property, d.Value); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", sel, err))
			}
		}
		if decl.IsEmpty() {
			continue
		}
		sheet.AddRule(cascade.NewRule(chain, decl))
	}
	return errs
}

// ChainFromSelector converts a CSS selector to a selector chain. Only class
// selectors joined by whitespace are supported, e.g. ".a .b.c".
func ChainFromSelector(sel string) (*cascade.SelectorChain, error) {
	fields := strings.Fields(sel)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSelector, sel)
	}
	chain := cascade.NewSelectorChain()
	for _, f := range fields {
		if !classSelector.MatchString(f) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedSelector, sel)
		}
		chain.AddSelector(cascade.NewSelector(f))
	}
	return chain, nil
}
