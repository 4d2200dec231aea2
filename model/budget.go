package model

import (
	"time"
)

// BudgetItem is a reusable line item kept in the preset store
type BudgetItem struct {
	ID          string    `json:"id"`
	Tenant      string    `json:"-"`
	Description string    `json:"description" binding:"required"`
	UnitPrice   float64   `json:"unit_price" binding:"gte=0"`
	Unit        string    `json:"unit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuoteLine is one line of a budget request. When PresetID is set the
// description and unit price come from the preset.
type QuoteLine struct {
	PresetID    string  `json:"preset_id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// QuoteRequest asks for a budget over a list of lines
type QuoteRequest struct {
	Client          string      `json:"client"`
	Lines           []QuoteLine `json:"lines"`
	DiscountPercent float64     `json:"discount_percent"`
}

// QuotedLine is a priced line of a quote
type QuotedLine struct {
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Total         float64 `json:"total"`
	UnitPriceText string  `json:"unit_price_text"`
	TotalText     string  `json:"total_text"`
}

// Quote is the computed budget
type Quote struct {
	Client       string       `json:"client,omitempty"`
	Lines        []QuotedLine `json:"lines"`
	Subtotal     float64      `json:"subtotal"`
	Discount     float64      `json:"discount"`
	Total        float64      `json:"total"`
	SubtotalText string       `json:"subtotal_text"`
	DiscountText string       `json:"discount_text"`
	TotalText    string       `json:"total_text"`
	TotalWords   string       `json:"total_words"`
}
