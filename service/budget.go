package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/currency"
	"github.com/AnTengye/contractstudio/pkg/numwords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BudgetService prices budget requests, resolving preset lines from the
// tenant's preset store.
type BudgetService struct {
	presets *PresetStore
}

func NewBudgetService(presets *PresetStore) *BudgetService {
	return &BudgetService{presets: presets}
}

// Quote prices req for tenant. A zero quantity counts as one unit and the
// discount is clamped to [0, 100].
func (s *BudgetService) Quote(tenant string, req model.QuoteRequest) (*model.Quote, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: no lines", ErrInvalidQuote)
	}

	q := &model.Quote{
		Client: cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(req.Client)),
		Lines:  make([]model.QuotedLine, 0, len(req.Lines)),
	}
	for i, l := range req.Lines {
		if l.PresetID != "" {
			p, err := s.presets.Get(tenant, l.PresetID)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: preset %s: %w", ErrInvalidQuote, i+1, l.PresetID, err)
			}
			if strings.TrimSpace(l.Description) == "" {
				l.Description = p.Description
			}
			l.UnitPrice = p.UnitPrice
		}
		if l.Quantity < 0 || l.UnitPrice < 0 || !finite(l.Quantity) || !finite(l.UnitPrice) {
			return nil, fmt.Errorf("%w: line %d has a negative or invalid amount", ErrInvalidQuote, i+1)
		}
		if l.Quantity == 0 {
			l.Quantity = 1
		}

		total := roundCents(l.Quantity * l.UnitPrice)
		q.Lines = append(q.Lines, model.QuotedLine{
			Description:   strings.TrimSpace(l.Description),
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Total:         total,
			UnitPriceText: currency.Format(l.UnitPrice),
			TotalText:     currency.Format(total),
		})
		q.Subtotal += total
	}

	pct := math.Min(math.Max(req.DiscountPercent, 0), 100)
	if !finite(pct) {
		pct = 0
	}
	q.Subtotal = roundCents(q.Subtotal)
	q.Discount = roundCents(q.Subtotal * pct / 100)
	q.Total = roundCents(q.Subtotal - q.Discount)

	q.SubtotalText = currency.Format(q.Subtotal)
	q.DiscountText = currency.Format(q.Discount)
	q.TotalText = currency.Format(q.Total)
	q.TotalWords = amountInWords(q.Total)
	return q, nil
}

// amountInWords returns "Mil e quinhentos reais" for 1500.
func amountInWords(v float64) string {
	words := strings.TrimSpace(numwords.Monetary(v))
	words = strings.TrimSuffix(strings.TrimPrefix(words, "("), ")")
	return numwords.Capitalize(words)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
