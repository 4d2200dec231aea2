package compose

// Settings holds the defaults composers fall back to when the form leaves a
// field empty.
type Settings struct {
	// Placeholder replaces any missing party, city or date field.
	Placeholder string
	// DepositPercent is the share paid at signing in a deposit-plus-delivery
	// plan when the form does not say.
	DepositPercent float64
	// OtherPaymentFallback is printed for an "other" payment plan with no
	// description.
	OtherPaymentFallback string
	// NotImplementedNotice is the single block returned for an unknown
	// contract type.
	NotImplementedNotice string
}

const (
	defaultPlaceholder          = "____________________"
	defaultDepositPercent       = 50
	defaultOtherPaymentFallback = "O pagamento será realizado na forma e nos prazos acordados entre as partes."
	defaultNotImplementedNotice = "Modelo de contrato não implementado."
)

// DefaultSettings returns the stock defaults.
func DefaultSettings() Settings {
	return Settings{
		Placeholder:          defaultPlaceholder,
		DepositPercent:       defaultDepositPercent,
		OtherPaymentFallback: defaultOtherPaymentFallback,
		NotImplementedNotice: defaultNotImplementedNotice,
	}
}

// withDefaults fills zero fields from DefaultSettings.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Placeholder == "" {
		s.Placeholder = d.Placeholder
	}
	if s.DepositPercent <= 0 || s.DepositPercent >= 100 {
		s.DepositPercent = d.DepositPercent
	}
	if s.OtherPaymentFallback == "" {
		s.OtherPaymentFallback = d.OtherPaymentFallback
	}
	if s.NotImplementedNotice == "" {
		s.NotImplementedNotice = d.NotImplementedNotice
	}
	return s
}
