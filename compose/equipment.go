package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/highlight"
)

const equipmentTradeTitle = "CONTRATO DE PERMUTA DE EQUIPAMENTO POR SERVIÇOS"

var equipmentTradeTerms = []string{
	roleContratante, roleContratada, equipmentTradeTitle,
}

// composeEquipmentTrade numbers clauses as they are emitted, so leaving out
// the payment or general-dispositions clause never leaves a gap.
func composeEquipmentTrade(c model.EquipmentTradeContract, e env) *document.Document {
	b := newBuilder(e, c.Type(), equipmentTradeTitle, highlight.For(equipmentTradeTerms...))

	b.intro()
	b.party(e.partyBlock(roleContratante, 0, c.Party))
	b.party(e.companyBlock(roleContratada, companyOverride{}))
	b.agreed()

	n := 0
	next := func() int {
		n++
		return n
	}

	b.clause(next(), "DO OBJETO", fmt.Sprintf(
		"O presente contrato tem por objeto a permuta do seguinte equipamento, de propriedade do CONTRATANTE: %s, avaliado em %s, pelos seguintes serviços, a serem prestados pela CONTRATADA: %s",
		e.orPlaceholder(c.EquipmentDescription), money(c.EquipmentValue), sentence(e.orPlaceholder(c.ServiceDescription)),
	))
	if present(c.PaymentClause) {
		b.clause(next(), "DO PAGAMENTO", sentence(c.PaymentClause))
	}
	b.clause(next(), "DAS CONDIÇÕES", sentence(e.orPlaceholder(c.Conditions)))
	b.clause(next(), "DA TRANSFERÊNCIA", sentence(e.orPlaceholder(c.TransferClause)))
	if present(c.GeneralDispositions) {
		b.clause(next(), "DAS DISPOSIÇÕES GERAIS", sentence(c.GeneralDispositions))
	}
	b.forum(next(), c.Forum)

	return b.closing(c.Signing,
		e.signature(roleContratante, 0, c.Party.Name),
		e.signature(roleContratada, 0, e.company.Name),
	)
}
