// Package highlight splits text into plain and emphasized segments around
// defined terms.
package highlight

import (
	"sort"
	"strings"
	"sync"

	"github.com/AnTengye/contractstudio/document"
	"github.com/dlclark/regexp2"
)

// Letters, digits and underscore count as word characters on both sides of
// a term, accented letters included.
const (
	leftBoundary  = `(?<![\p{L}\p{N}_])`
	rightBoundary = `(?![\p{L}\p{N}_])`
)

// Highlighter matches a fixed term list. It is safe for concurrent use.
type Highlighter struct {
	terms []string
	re    *regexp2.Regexp
}

// New compiles terms into one case-insensitive whole-word pattern. Blank
// terms are ignored.
func New(terms []string) *Highlighter {
	h := &Highlighter{}
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		key := strings.ToLower(t)
		if strings.TrimSpace(t) == "" || seen[key] {
			continue
		}
		seen[key] = true
		h.terms = append(h.terms, t)
	}
	if len(h.terms) == 0 {
		return h
	}

	// Longer alternatives first so a multi-word title wins over its first word.
	alts := make([]string, len(h.terms))
	for i, t := range h.terms {
		alts[i] = regexp2.Escape(t)
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })

	pattern := leftBoundary + "(?:" + strings.Join(alts, "|") + ")" + rightBoundary
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		h.terms = nil
		return h
	}
	h.re = re
	return h
}

// Split returns text as alternating segments. Concatenating the segment
// texts gives back text. Empty text yields a single empty segment.
func (h *Highlighter) Split(text string) []document.Segment {
	if text == "" {
		return []document.Segment{{Text: ""}}
	}
	if h == nil || h.re == nil {
		return document.Plain(text)
	}

	runes := []rune(text)
	var pieces []string
	pos := 0
	m, err := h.re.FindRunesMatch(runes)
	for err == nil && m != nil {
		pieces = append(pieces, string(runes[pos:m.Index]), string(runes[m.Index:m.Index+m.Length]))
		pos = m.Index + m.Length
		m, err = h.re.FindNextMatch(m)
	}
	pieces = append(pieces, string(runes[pos:]))

	segs := make([]document.Segment, 0, len(pieces))
	for _, p := range pieces {
		if p == "" {
			continue
		}
		segs = append(segs, document.Segment{Text: p, Emphasized: h.isTerm(p)})
	}
	if len(segs) == 0 {
		return []document.Segment{{Text: ""}}
	}
	return segs
}

func (h *Highlighter) isTerm(s string) bool {
	for _, t := range h.terms {
		if strings.EqualFold(s, t) {
			return true
		}
	}
	return false
}

var cache = struct {
	sync.RWMutex
	m map[string]*Highlighter
}{m: make(map[string]*Highlighter)}

// For returns a compiled highlighter for terms, reusing one built earlier
// for the same list. Composers call it on every document.
func For(terms ...string) *Highlighter {
	key := strings.Join(terms, "\x1f")

	cache.RLock()
	h, ok := cache.m[key]
	cache.RUnlock()
	if ok {
		return h
	}

	h = New(terms)
	cache.Lock()
	if existing, ok := cache.m[key]; ok {
		h = existing
	} else {
		cache.m[key] = h
	}
	cache.Unlock()
	return h
}
