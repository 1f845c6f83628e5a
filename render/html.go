// Package render draws a retained widget tree for output: HTML documents
// for browsers and styled text for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agiangrant/fileinput/retained"
)

// hiddenStyle is the inline style of invisible widgets.
const hiddenStyle = "display:none"

// HTML writes w and its descendants as an HTML fragment.
func HTML(out io.Writer, w *retained.Widget) error {
	if err := html.Render(out, Node(w)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Page writes a complete HTML document whose body holds root. Each
// stylesheet becomes a link element in the head.
func Page(out io.Writer, title string, root *retained.Widget, stylesheets ...string) error {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	t := element(atom.Title)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	for _, href := range stylesheets {
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: href}))
	}

	body := element(atom.Body)
	if root != nil {
		body.AppendChild(Node(root))
	}

	doc := element(atom.Html, html.Attribute{Key: "lang", Val: "en"})
	doc.AppendChild(head)
	doc.AppendChild(body)

	if _, err := io.WriteString(out, "<!DOCTYPE html>\n"); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := html.Render(out, doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Node converts w and its descendants to an HTML node tree.
func Node(w *retained.Widget) *html.Node {
	n := element(tagFor(w.Kind()))
	if classes := w.Classes(); classes != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: classes})
	}

	reserved := reservedAttrs(w.Kind())
	for _, name := range w.AttrNames() {
		if reserved[name] {
			continue
		}
		v, _ := w.Attr(name)
		n.Attr = append(n.Attr, html.Attribute{Key: name, Val: v})
	}

	switch w.Kind() {
	case retained.KindTextField:
		n.Attr = append(n.Attr, html.Attribute{Key: "type", Val: "text"})
		if v := w.Value(); v != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "value", Val: v})
		}
		if p := w.Placeholder(); p != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "placeholder", Val: p})
		}
	case retained.KindFileInput:
		n.Attr = append(n.Attr, html.Attribute{Key: "type", Val: "file"})
		if accept := w.Accept(); len(accept) > 0 {
			n.Attr = append(n.Attr, html.Attribute{Key: "accept", Val: strings.Join(accept, ",")})
		}
		if w.Required() {
			n.Attr = append(n.Attr, html.Attribute{Key: "required"})
		}
	case retained.KindButton, retained.KindText:
		if text := w.Text(); text != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		}
	}

	if w.Disabled() {
		n.Attr = append(n.Attr, html.Attribute{Key: "disabled"})
	}
	if !w.Visible() {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: hiddenStyle})
	}

	for _, c := range w.Children() {
		n.AppendChild(Node(c))
	}
	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func tagFor(kind retained.WidgetKind) atom.Atom {
	switch kind {
	case retained.KindGroup, retained.KindText:
		return atom.Span
	case retained.KindButton:
		return atom.Button
	case retained.KindTextField, retained.KindFileInput:
		return atom.Input
	case retained.KindForm:
		return atom.Form
	}
	return atom.Div
}

// reservedAttrs lists attributes the renderer derives from widget state.
func reservedAttrs(kind retained.WidgetKind) map[string]bool {
	switch kind {
	case retained.KindTextField:
		return map[string]bool{"class": true, "style": true, "type": true, "value": true, "placeholder": true}
	case retained.KindFileInput:
		return map[string]bool{"class": true, "style": true, "type": true, "value": true, "accept": true, "required": true}
	}
	return map[string]bool{"class": true, "style": true}
}
