// Package render turns a document block tree into printable HTML.
//
// The markup is built as an x/net/html node tree, so every piece of contract
// text reaches the output as an escaped text node. Clauses carry both the
// avoid-break class and an inline page-break style, which print pipelines
// honor without the stylesheet.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/AnTengye/contractstudio/document"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContentType is the media type of HTML output.
const ContentType = "text/html; charset=utf-8"

const (
	avoidBreakStyle = "page-break-inside: avoid; break-inside: avoid"
	signatureRule   = "________________________________________"
)

const stylesheet = `
body { font-family: "Times New Roman", serif; font-size: 12pt; line-height: 1.5; margin: 2.5cm; }
h1 { text-align: center; font-size: 14pt; }
h2 { font-size: 12pt; }
.party { margin-bottom: 1em; }
.party p { margin: 0; }
.clause h3 { font-size: 12pt; margin-bottom: 0.25em; }
.clause p { text-align: justify; }
.avoid-break { page-break-inside: avoid; break-inside: avoid; }
.signature { margin-top: 3em; text-align: center; page-break-inside: avoid; }
.signature p { margin: 0; }
.date-line { margin-top: 2em; text-align: right; }
.notice { font-style: italic; }
`

// clausePrefix numbers a clause heading: "CLÁUSULA 2ª - ".
func clausePrefix(c document.Clause) string {
	return fmt.Sprintf("CLÁUSULA %dª - ", c.Ordinal)
}

// HTML writes doc as a standalone HTML page.
func HTML(w io.Writer, doc *document.Document) error {
	if err := html.Render(w, page(doc)); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// Bytes is HTML into a buffer.
func Bytes(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func page(doc *document.Document) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, attr("lang", "pt-BR"))
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(element(atom.Title), doc.Title))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	article := element(atom.Article, attr("class", "contract"), attr("data-type", doc.Type))
	for _, b := range doc.Blocks {
		if n := block(b); n != nil {
			article.AppendChild(n)
		}
	}
	body.AppendChild(article)
	htmlEl.AppendChild(body)
	return root
}

func block(b document.Block) *html.Node {
	switch v := b.(type) {
	case document.Heading:
		a := atom.H2
		if v.Level <= 1 {
			a = atom.H1
		}
		return segments(element(a), v.Segments)

	case document.PartyBlock:
		sec := element(atom.Section, attr("class", "party"))
		sec.AppendChild(withText(element(atom.H3), v.Title))
		for _, l := range v.Lines {
			p := element(atom.P)
			p.AppendChild(withText(element(atom.Strong), l.Label+":"))
			p.AppendChild(text(" " + l.Value))
			sec.AppendChild(p)
		}
		return sec

	case document.Clause:
		class := "clause"
		var attrs []html.Attribute
		if v.AvoidBreak {
			class += " avoid-break"
			attrs = append(attrs, attr("style", avoidBreakStyle))
		}
		attrs = append([]html.Attribute{attr("class", class), attr("id", fmt.Sprintf("clausula-%d", v.Ordinal))}, attrs...)
		sec := element(atom.Section, attrs...)
		h3 := withText(element(atom.H3), clausePrefix(v))
		sec.AppendChild(segments(h3, v.Title))
		sec.AppendChild(segments(element(atom.P), v.Body))
		if len(v.Items) > 0 {
			ul := element(atom.Ul)
			for _, it := range v.Items {
				ul.AppendChild(segments(element(atom.Li), it))
			}
			sec.AppendChild(ul)
		}
		return sec

	case document.Paragraph:
		return segments(element(atom.P), v.Segments)

	case document.SignatureBlock:
		div := element(atom.Div, attr("class", "signature"))
		div.AppendChild(withText(element(atom.P), signatureRule))
		div.AppendChild(withText(element(atom.P, attr("class", "name")), v.Name))
		div.AppendChild(withText(element(atom.P, attr("class", "label")), v.Label))
		return div

	case document.DateLine:
		return withText(element(atom.P, attr("class", "date-line")), v.Text())

	case document.Notice:
		return withText(element(atom.P, attr("class", "notice")), v.Text)
	}
	return nil
}

// segments appends segs to n, wrapping emphasized runs in <strong>.
func segments(n *html.Node, segs []document.Segment) *html.Node {
	for _, s := range segs {
		if s.Emphasized {
			n.AppendChild(withText(element(atom.Strong), s.Text))
			continue
		}
		n.AppendChild(text(s.Text))
	}
	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}
