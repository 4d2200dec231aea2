// Package compose turns contract data into a document block tree.
//
// Each contract type has one composer, a pure function of the contract and
// the company identity. The Assembler is the only entry point: it picks the
// composer from a table keyed by contract type.
package compose

import (
	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
)

// Party roles. They double as defined terms.
const (
	roleContratante  = "CONTRATANTE"
	roleContratantes = "CONTRATANTES"
	roleContratada   = "CONTRATADA"
	roleContratado   = "CONTRATADO"
	roleAutorizante  = "AUTORIZANTE"
	roleAutorizado   = "AUTORIZADO"
)

type composer struct {
	title   string
	compose func(model.Contract, env) *document.Document
}

// typed adapts a composer for one variant to the union. A contract of
// another Go type under the same discriminant composes as the zero variant.
func typed[T model.Contract](f func(T, env) *document.Document) func(model.Contract, env) *document.Document {
	return func(c model.Contract, e env) *document.Document {
		v, _ := c.(T)
		return f(v, e)
	}
}

var composers = map[model.ContractType]composer{
	model.TypeEquipmentTrade:        {equipmentTradeTitle, typed(composeEquipmentTrade)},
	model.TypeVideoService:          {videoServiceTitle, typed(composeVideoService)},
	model.TypeFilmmakerHire:         {filmmakerHireTitle, typed(composeFilmmakerHire)},
	model.TypeEditorHire:            {editorHireTitle, typed(composeEditorHire)},
	model.TypeMaterialAuthorization: {materialAuthorizationTitle, typed(composeMaterialAuthorization)},
}

// Title returns the document title for a contract type, or "" when the type
// has no composer.
func Title(ct model.ContractType) string {
	return composers[ct].title
}

// Supported reports whether ct has a composer.
func Supported(ct model.ContractType) bool {
	_, ok := composers[ct]
	return ok
}

// Assembler composes documents for a fixed company identity. It holds no
// per-call state and is safe for concurrent use.
type Assembler struct {
	env env
}

// NewAssembler returns an Assembler. Zero fields of settings take the
// DefaultSettings values.
func NewAssembler(company model.CompanyIdentity, settings Settings) *Assembler {
	return &Assembler{env: env{company: company, settings: settings.withDefaults()}}
}

// Assemble composes c. A nil contract or an unknown contract type yields a
// document holding a single notice block.
func (a *Assembler) Assemble(c model.Contract) *document.Document {
	if c == nil {
		return a.notImplemented("")
	}
	comp, ok := composers[c.Type()]
	if !ok {
		return a.notImplemented(c.Type())
	}
	return comp.compose(c, a.env)
}

func (a *Assembler) notImplemented(ct model.ContractType) *document.Document {
	return &document.Document{
		Type:   string(ct),
		Blocks: []document.Block{document.Notice{Text: a.env.settings.NotImplementedNotice}},
	}
}
