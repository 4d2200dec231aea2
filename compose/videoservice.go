package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/currency"
	"github.com/AnTengye/contractstudio/pkg/highlight"
	"github.com/AnTengye/contractstudio/pkg/numwords"
)

const videoServiceTitle = "CONTRATO DE PRESTAÇÃO DE SERVIÇOS AUDIOVISUAIS"

var videoServiceTerms = []string{
	roleContratante, roleContratantes, roleContratada, videoServiceTitle,
}

// Fixed clause ordinals of the video service contract.
const (
	vsObject = iota + 1
	vsValue
	vsPayment
	vsDeadline
	vsProviderDuties
	vsClientDuties
	vsCopyright
	vsRescission
	vsGeneral
	vsForum
)

// hiring describes the hiring side in the grammatical number it needs.
type hiring struct {
	role    string
	article string
	of      string
	ofTitle string
	pays    string
}

func hiringSide(n int) hiring {
	if n > 1 {
		return hiring{role: roleContratantes, article: "Os", of: "dos", ofTitle: "DOS", pays: "pagarão, solidariamente,"}
	}
	return hiring{role: roleContratante, article: "O", of: "do", ofTitle: "DO", pays: "pagará"}
}

func composeVideoService(c model.VideoServiceContract, e env) *document.Document {
	b := newBuilder(e, c.Type(), videoServiceTitle, highlight.For(videoServiceTerms...))

	parties := c.Parties
	if len(parties) == 0 {
		parties = []model.ContractParty{{}}
	}
	side := hiringSide(len(parties))

	b.intro()
	if len(parties) == 1 {
		b.party(e.partyBlock(roleContratante, 0, parties[0]))
	} else {
		b.heading(roleContratantes + ":")
		for i, p := range parties {
			b.party(e.partyBlock(roleContratante, i+1, p))
		}
	}
	b.party(e.companyBlock(roleContratada, companyOverride{}))
	b.agreed()

	b.clause(vsObject, "DO OBJETO", fmt.Sprintf(
		"O presente contrato tem por objeto a prestação, pela CONTRATADA, dos seguintes serviços audiovisuais: %s",
		sentence(e.orPlaceholder(c.ServiceObject)),
	))
	b.clause(vsValue, "DO VALOR", fmt.Sprintf(
		"Pelos serviços objeto deste contrato, %s %s %s à CONTRATADA o valor total de %s.",
		side.article, side.role, side.pays, money(c.TotalValue),
	))
	b.clause(vsPayment, "DA FORMA DE PAGAMENTO", e.paymentSentence(c.PaymentPlan, c.TotalValue))
	b.clause(vsDeadline, "DO PRAZO DE ENTREGA", fmt.Sprintf(
		"A CONTRATADA entregará o material final no seguinte prazo: %s",
		sentence(e.orPlaceholder(c.DeliveryDeadline)),
	))
	b.clause(vsProviderDuties, "DAS OBRIGAÇÕES DA CONTRATADA",
		"São obrigações da CONTRATADA:", e.items(c.ProviderResponsibilities)...)
	b.clause(vsClientDuties, fmt.Sprintf("DAS OBRIGAÇÕES %s %s", side.ofTitle, side.role),
		fmt.Sprintf("São obrigações %s %s:", side.of, side.role), e.items(c.ClientResponsibilities)...)
	b.clause(vsCopyright, "DOS DIREITOS AUTORAIS", sentence(e.orPlaceholder(c.CopyrightClause)))
	b.clause(vsRescission, "DA RESCISÃO", fmt.Sprintf(
		"O presente contrato poderá ser rescindido por qualquer das partes mediante aviso prévio, por escrito, de %s. A parte que rescindir o contrato sem justa causa pagará à outra multa de %s sobre o valor total do contrato.",
		e.days(c.RescissionNoticeDays), e.percent(c.RescissionPenaltyPercent),
	))
	if present(c.GeneralDispositions) {
		b.clause(vsGeneral, "DAS DISPOSIÇÕES GERAIS", sentence(c.GeneralDispositions))
	}
	b.forum(vsForum, c.Forum)

	signatures := make([]document.SignatureBlock, 0, len(parties)+1)
	if len(parties) == 1 {
		signatures = append(signatures, e.signature(roleContratante, 0, parties[0].Name))
	} else {
		for i, p := range parties {
			signatures = append(signatures, e.signature(roleContratante, i+1, p.Name))
		}
	}
	signatures = append(signatures, e.signature(roleContratada, 0, e.company.Name))

	return b.closing(c.Signing, signatures...)
}

// paymentSentence picks the sentence for the payment plan. A deposit plan
// with a blank or unreadable percentage falls back to
// Settings.DepositPercent; a readable one is kept, clamped to 0..100.
func (e env) paymentSentence(plan model.PaymentPlan, totalRaw string) string {
	switch plan.Kind {
	case model.PaymentFullUpfront:
		return "O pagamento será realizado integralmente, à vista, no ato da assinatura deste contrato."
	case model.PaymentDepositPlusDelivery:
		deposit, ok := currency.Parse(plan.DepositPercent)
		if !ok {
			deposit = e.settings.DepositPercent
		}
		deposit = min(max(deposit, 0), 100)
		rest := roundCents(100 - deposit)
		total, _ := currency.Parse(totalRaw)
		return fmt.Sprintf(
			"O pagamento será realizado da seguinte forma: %s do valor total, correspondente a %s, no ato da assinatura deste contrato, e os %s restantes, correspondentes a %s, na entrega do material final.",
			numwords.PercentOf(deposit), moneyOf(roundCents(total*deposit/100)),
			numwords.PercentOf(rest), moneyOf(roundCents(total*rest/100)),
		)
	default:
		if present(plan.OtherDescription) {
			return sentence(plan.OtherDescription)
		}
		return e.settings.OtherPaymentFallback
	}
}

// items returns one list entry per line, or a single placeholder entry.
func (e env) items(text string) []string {
	if l := lines(text); len(l) > 0 {
		return l
	}
	return []string{e.settings.Placeholder}
}
