package compose

import (
	"strconv"
	"strings"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	labelName        = "Nome"
	labelCompanyName = "Razão social"
	labelTaxID       = "CPF/CNPJ"
	labelCompanyTax  = "CNPJ"
	labelAddress     = "Endereço"
	labelSeat        = "Sede"
	labelEmail       = "E-mail"
)

// companyOverride replaces the company's tax id and address on its party
// block. Empty fields keep the identity's own values.
type companyOverride struct {
	TaxID   string
	Address string
}

// roleTitle returns "CONTRATANTE" or, for numbered parties, "CONTRATANTE 2".
func roleTitle(role string, index int) string {
	if index > 0 {
		return role + " " + strconv.Itoa(index)
	}
	return role
}

func (e env) partyBlock(role string, index int, p model.ContractParty) document.PartyBlock {
	return document.PartyBlock{
		Title: roleTitle(role, index),
		Lines: []document.Line{
			{Label: labelName, Value: e.orPlaceholder(p.Name)},
			{Label: labelTaxID, Value: e.orPlaceholder(p.TaxID)},
			{Label: labelAddress, Value: e.orPlaceholder(p.Address)},
			{Label: labelEmail, Value: e.orPlaceholder(p.Email)},
		},
	}
}

func (e env) companyBlock(role string, o companyOverride) document.PartyBlock {
	c := e.company
	taxID, address, addressLabel := c.TaxID, c.Address, labelAddress
	if strings.TrimSpace(o.TaxID) != "" {
		taxID = o.TaxID
	}
	if strings.TrimSpace(o.Address) != "" {
		address, addressLabel = o.Address, labelSeat
	}
	return document.PartyBlock{
		Title: role,
		Lines: []document.Line{
			{Label: labelCompanyName, Value: e.orPlaceholder(c.Name)},
			{Label: labelCompanyTax, Value: e.orPlaceholder(taxID)},
			{Label: addressLabel, Value: e.orPlaceholder(address)},
			{Label: labelEmail, Value: e.orPlaceholder(c.Email)},
		},
	}
}

// signature prints the signer's name in capitals under the line. A Caser
// keeps state, so each call gets its own.
func (e env) signature(role string, index int, name string) document.SignatureBlock {
	upper := cases.Upper(language.BrazilianPortuguese)
	return document.SignatureBlock{
		Label: roleTitle(role, index),
		Name:  e.orPlaceholder(upper.String(strings.TrimSpace(name))),
	}
}

func (e env) orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return e.settings.Placeholder
	}
	return s
}
