// Package document defines the block tree produced by the contract composers.
//
// A Document is an ordered list of typed blocks. It carries no presentation
// beyond the block kind, emphasis flags on text segments and the AvoidBreak
// pagination hint on clauses; renderers decide everything else.
package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a block type.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParty     Kind = "party"
	KindClause    Kind = "clause"
	KindParagraph Kind = "paragraph"
	KindSignature Kind = "signature"
	KindDateLine  Kind = "date_line"
	KindNotice    Kind = "notice"
)

// Segment is a run of text, emphasized when it is a defined term.
type Segment struct {
	Text       string `json:"text"`
	Emphasized bool   `json:"emphasized,omitempty"`
}

// Plain wraps text in a single unemphasized segment.
func Plain(text string) []Segment {
	return []Segment{{Text: text}}
}

// Join concatenates the text of segs.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Block is one element of a document.
type Block interface {
	Kind() Kind
}

// Heading is a title line. Level 1 is the document title.
type Heading struct {
	Level    int       `json:"level"`
	Segments []Segment `json:"segments"`
}

// Line is a labeled value inside a party block.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PartyBlock identifies one party of the contract.
type PartyBlock struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// Clause is a numbered section. Items holds list entries rendered after Body.
// Title is highlighted like Body.
type Clause struct {
	Ordinal    int         `json:"ordinal"`
	Title      []Segment   `json:"title"`
	Body       []Segment   `json:"body"`
	Items      [][]Segment `json:"items,omitempty"`
	AvoidBreak bool        `json:"avoid_break,omitempty"`
}

// TitleText is the clause title without emphasis.
func (c Clause) TitleText() string {
	return Join(c.Title)
}

// Paragraph is free text outside any clause.
type Paragraph struct {
	Segments []Segment `json:"segments"`
}

// SignatureBlock is a signature line for one party.
type SignatureBlock struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// DateLine is the place and date of signing.
type DateLine struct {
	City string `json:"city"`
	Date string `json:"date"`
}

// Text renders the line as "São Paulo, 19 de outubro de 2026."
func (d DateLine) Text() string {
	return fmt.Sprintf("%s, %s.", d.City, d.Date)
}

// Notice is an informational message shown instead of a contract.
type Notice struct {
	Text string `json:"text"`
}

func (Heading) Kind() Kind        { return KindHeading }
func (PartyBlock) Kind() Kind     { return KindParty }
func (Clause) Kind() Kind         { return KindClause }
func (Paragraph) Kind() Kind      { return KindParagraph }
func (SignatureBlock) Kind() Kind { return KindSignature }
func (DateLine) Kind() Kind       { return KindDateLine }
func (Notice) Kind() Kind         { return KindNotice }

// Document is the composed contract.
type Document struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Add appends blocks in order.
func (d *Document) Add(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Clauses returns the clause blocks in document order.
func (d *Document) Clauses() []Clause {
	var out []Clause
	for _, b := range d.Blocks {
		if c, ok := b.(Clause); ok {
			out = append(out, c)
		}
	}
	return out
}

// Signatures returns the signature blocks in document order.
func (d *Document) Signatures() []SignatureBlock {
	var out []SignatureBlock
	for _, b := range d.Blocks {
		if s, ok := b.(SignatureBlock); ok {
			out = append(out, s)
		}
	}
	return out
}

// Parties returns the party blocks in document order.
func (d *Document) Parties() []PartyBlock {
	var out []PartyBlock
	for _, b := range d.Blocks {
		if p, ok := b.(PartyBlock); ok {
			out = append(out, p)
		}
	}
	return out
}

// MarshalJSON tags every block with its kind so clients can walk the tree
// without knowing Go types.
func (d Document) MarshalJSON() ([]byte, error) {
	blocks := make([]json.RawMessage, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		raw, err := marshalBlock(b)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, raw)
	}
	return json.Marshal(struct {
		Type   string            `json:"type"`
		Title  string            `json:"title"`
		Blocks []json.RawMessage `json:"blocks"`
	}{d.Type, d.Title, blocks})
}

func marshalBlock(b Block) ([]byte, error) {
	body, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s block: %w", b.Kind(), err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to tag %s block: %w", b.Kind(), err)
	}
	kind, _ := json.Marshal(b.Kind())
	fields["kind"] = kind
	return json.Marshal(fields)
}
