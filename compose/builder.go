package compose

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/currency"
	"github.com/AnTengye/contractstudio/pkg/highlight"
	"github.com/AnTengye/contractstudio/pkg/numwords"
)

const (
	introText   = "Pelo presente instrumento particular, as partes abaixo qualificadas:"
	agreedText  = "têm entre si justo e acordado o presente %s, que se regerá pelas cláusulas e condições seguintes."
	closingText = "E, por estarem assim justas e contratadas, as partes assinam o presente instrumento em vias de igual teor e forma, para que produza seus jurídicos e legais efeitos."
	forumText   = "Fica eleito o foro da comarca de %s para dirimir quaisquer dúvidas oriundas do presente instrumento, com renúncia expressa a qualquer outro, por mais privilegiado que seja."
)

// env is what every composer reads besides the contract itself.
type env struct {
	company  model.CompanyIdentity
	settings Settings
}

// builder appends blocks to a document, running every text through the
// composer's highlighter.
type builder struct {
	env
	doc *document.Document
	hl  *highlight.Highlighter
}

func newBuilder(e env, ct model.ContractType, title string, hl *highlight.Highlighter) *builder {
	b := &builder{
		env: e,
		doc: &document.Document{Type: string(ct), Title: title},
		hl:  hl,
	}
	b.doc.Add(document.Heading{Level: 1, Segments: hl.Split(title)})
	return b
}

func (b *builder) heading(text string) {
	b.doc.Add(document.Heading{Level: 2, Segments: b.hl.Split(text)})
}

func (b *builder) paragraph(text string) {
	b.doc.Add(document.Paragraph{Segments: b.hl.Split(text)})
}

func (b *builder) party(p document.PartyBlock) {
	b.doc.Add(p)
}

// clause appends a numbered clause. Each non-blank item becomes a list entry.
func (b *builder) clause(ordinal int, title, body string, items ...string) {
	c := document.Clause{
		Ordinal:    ordinal,
		Title:      b.hl.Split(title),
		Body:       b.hl.Split(body),
		AvoidBreak: true,
	}
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		c.Items = append(c.Items, b.hl.Split(it))
	}
	b.doc.Add(c)
}

func (b *builder) forum(ordinal int, forum string) {
	b.clause(ordinal, "DO FORO", fmt.Sprintf(forumText, b.orPlaceholder(forum)))
}

// closing appends the closing sentence, the signatures in the given order
// and the date line.
func (b *builder) closing(signing model.Signing, signatures ...document.SignatureBlock) *document.Document {
	b.paragraph(closingText)
	for _, s := range signatures {
		b.doc.Add(s)
	}
	b.doc.Add(document.DateLine{City: b.orPlaceholder(signing.City), Date: b.date(signing.Date)})
	return b.doc
}

// money prints a form amount as "R$ 1.500,00 (mil e quinhentos reais)".
func money(raw string) string {
	return currency.FormatString(raw) + numwords.MonetaryString(raw)
}

// moneyOf is money for a computed amount.
func moneyOf(amount float64) string {
	return currency.Format(amount) + numwords.Monetary(amount)
}

// days prints "30 (trinta) dias", or the placeholder when unreadable.
func (e env) days(raw string) string {
	if s := numwords.Days(raw); s != "" {
		return s
	}
	return e.settings.Placeholder + " dias"
}

// percent prints "20% (vinte por cento)", or the placeholder when unreadable.
func (e env) percent(raw string) string {
	if s := numwords.Percent(raw); s != "" {
		return s
	}
	return e.settings.Placeholder + "%"
}

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// date prints an ISO date as "19 de outubro de 2026"; anything else is
// printed as given.
func (e env) date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return e.settings.Placeholder
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// lines splits free text into one item per non-blank line, dropping list
// markers typed by the user.
func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		l = strings.TrimSpace(strings.TrimLeft(l, "-•*"))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// sentence trims text and makes sure it ends with a period.
func sentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text
	}
	return text + "."
}

func (b *builder) intro() {
	b.paragraph(introText)
}

// agreed closes the qualification of the parties, naming the document.
func (b *builder) agreed() {
	b.paragraph(fmt.Sprintf(agreedText, b.doc.Title))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
