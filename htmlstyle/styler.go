package htmlstyle

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade"
	tp "github.com/xlab/treeprint"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Styler resolves the styles of HTML elements from a style sheet.
// A Styler may be used concurrently, as long as the style sheet is not
// changed.
type Styler struct {
	sheet   *cascade.StyleSheet
	factory cascade.DeclarationFactory
}

// NewStyler creates a styler for a style sheet. factory creates the
// declarations for computed styles and for inline styles.
func NewStyler(sheet *cascade.StyleSheet, factory cascade.DeclarationFactory) *Styler {
	return &Styler{sheet: sheet, factory: factory}
}

// StyledNode is an HTML element together with its computed style.
type StyledNode struct {
	Node  *html.Node
	Chain *cascade.SelectorChain
	Style cascade.Declaration
}

// ChainForNode returns the selector chain of an HTML node: one selector
// per element from the document root down to n, built from the elements'
// class attributes. Non-element nodes are skipped.
func ChainForNode(n *html.Node) *cascade.SelectorChain {
	chain := cascade.NewSelectorChain()
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		chain.AddSelectorToFront(cascade.SelectorOf(strings.Fields(attr(n, "class"))...))
	}
	return chain
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// InlineStyle parses the "style" attribute of an element. It returns nil
// if the element has no style attribute. Declarations which cannot be
// parsed are skipped and reported as a combined error.
func (s *Styler) InlineStyle(n *html.Node) (cascade.Declaration, error) {
	text := strings.TrimSpace(attr(n, "style"))
	if text == "" {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("<%s> style attribute: %w", n.Data, err)
	}
	element := s.factory()
	var errs error
	for _, d := range decls {
		if err := element.ParseAttribute(d.Property, d.Value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("<%s> style attribute: %w", n.Data, err))
		}
	}
	return element, errs
}

// StyleOf computes the style of an HTML element. Errors in the element's
// inline style are returned along with the style computed from the
// remaining declarations.
func (s *Styler) StyleOf(n *html.Node) (StyledNode, error) {
	chain := ChainForNode(n)
	element, err := s.InlineStyle(n)
	if err != nil {
		tracer().Errorf("%v", err)
	}
	style := cascade.CalculateStyle(s.sheet, chain, s.factory, element)
	tracer().Debugf("style of %s: %s", chain, style)
	return StyledNode{Node: n, Chain: chain, Style: style}, err
}

// Select finds all elements below and including root matching a CSS
// selector, e.g. "g.layer > polygon", and computes their styles.
func (s *Styler) Select(root *html.Node, selector string) ([]StyledNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	var errs error
	nodes := sel.MatchAll(root)
	styled := make([]StyledNode, 0, len(nodes))
	for _, n := range nodes {
		sn, err := s.StyleOf(n)
		errs = multierr.Append(errs, err)
		styled = append(styled, sn)
	}
	tracer().Infof("selector %q matched %d elements", selector, len(styled))
	return styled, errs
}

// Dump returns a tree of the elements below root which have a non-empty
// computed style, for debugging.
func (s *Styler) Dump(root *html.Node) string {
	printer := tp.NewWithRoot("Document")
	s.dump(root, printer)
	return printer.String()
}

func (s *Styler) dump(n *html.Node, branch tp.Tree) {
	if n.Type == html.ElementNode {
		sn, _ := s.StyleOf(n)
		if !sn.Style.IsEmpty() {
			sel, _ := sn.Chain.Selector(sn.Chain.Len() - 1)
			branch = branch.AddMetaBranch(n.Data+sel.String(), sn.Style.String())
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		s.dump(ch, branch)
	}
}
