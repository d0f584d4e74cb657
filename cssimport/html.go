package cssimport

import (
	"strings"

	"github.com/npillmayer/cascade"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style elements in document order.
func ExtractStyleElements(htmldoc *html.Node) []string {
	var css []string
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		extractStyles(findElement(a, htmldoc), &css)
	}
	return css
}

func extractStyles(h *html.Node, css *[]string) {
	if h == nil {
		return
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		if ch.DataAtom == atom.Style {
			var b strings.Builder
			for t := ch.FirstChild; t != nil; t = t.NextSibling {
				if t.Type == html.TextNode {
					b.WriteString(t.Data)
				}
			}
			if strings.TrimSpace(b.String()) != "" {
				*css = append(*css, b.String())
			}
			continue
		}
		extractStyles(ch, css)
	}
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// ImportHTML imports the CSS of all <style> elements of an HTML document
// into one style sheet. Style elements later in the document count as
// declared after earlier ones. Errors are combined as with Import; style
// elements which cannot be parsed at all are skipped.
func ImportHTML(htmldoc *html.Node, factory cascade.DeclarationFactory) (*cascade.StyleSheet, error) {
	sheet := cascade.NewStyleSheet()
	var errs error
	for _, text := range ExtractStyleElements(htmldoc) {
		s, err := Import(text, factory)
		errs = multierr.Append(errs, err)
		sheet.AppendRules(s)
	}
	return sheet, errs
}
