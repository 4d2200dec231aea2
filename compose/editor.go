package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/highlight"
)

const editorHireTitle = "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE EDIÇÃO DE VÍDEO"

var editorHireTerms = []string{
	roleContratante, roleContratado, editorHireTitle,
}

const (
	edObject = iota + 1
	edNature
	edRemuneration
	edSchedule
	edDeadlines
	edLatePenalty
	edContractorDuties
	edClientDuties
	edIntellectualProperty
	edConfidentiality
	edConfidentialityPenalty
	edNoEmployment
	edRescission
	edForum
	// the non-compete clause, when present, takes this ordinal and pushes
	// the term clause one further
	edTrailing
)

var editorDuties = append(append([]string(nil), contractorDuties...),
	"Manter cópia de segurança dos arquivos de projeto até a aprovação final do material.")

func composeEditorHire(c model.EditorHireContract, e env) *document.Document {
	b := newBuilder(e, c.Type(), editorHireTitle, highlight.For(editorHireTerms...))

	b.intro()
	b.party(e.companyBlock(roleContratante, companyOverride{}))
	b.party(e.partyBlock(roleContratado, 0, c.Party))
	b.agreed()

	b.clause(edObject, "DO OBJETO",
		"O presente contrato tem por objeto a prestação, pelo CONTRATADO à CONTRATANTE, de serviços de edição e finalização de vídeos, conforme demandas encaminhadas pela CONTRATANTE.")
	b.clause(edNature, "DA NATUREZA DA PRESTAÇÃO",
		"Os serviços serão prestados de forma autônoma, com liberdade de horário e local, observados os prazos e padrões de qualidade definidos pela CONTRATANTE.")
	b.clause(edRemuneration, "DA REMUNERAÇÃO", remunerationText(c.Hire))
	b.clause(edSchedule, "DA PERIODICIDADE DO PAGAMENTO", paymentScheduleText(c.Hire))
	b.clause(edDeadlines, "DOS PRAZOS DE ENTREGA",
		"Os prazos de entrega de cada projeto serão definidos pela CONTRATANTE no momento da solicitação, podendo ser ajustados de comum acordo entre as partes.")
	b.clause(edLatePenalty, "DA MULTA POR ATRASO", fmt.Sprintf(
		"O atraso injustificado na entrega de qualquer projeto sujeitará o CONTRATADO ao pagamento de multa de %s sobre o valor do respectivo projeto.",
		e.percent(c.LateDeliveryPenaltyPercent),
	))
	b.clause(edContractorDuties, "DAS OBRIGAÇÕES DO CONTRATADO", "São obrigações do CONTRATADO:",
		editorDuties...)
	b.clause(edClientDuties, "DAS OBRIGAÇÕES DA CONTRATANTE", "São obrigações da CONTRATANTE:", clientDuties...)
	b.clause(edIntellectualProperty, "DA PROPRIEDADE INTELECTUAL",
		"Os vídeos editados, arquivos de projeto e demais materiais produzidos em razão deste contrato pertencem exclusivamente à CONTRATANTE, sendo vedada ao CONTRATADO a sua utilização para qualquer outro fim sem autorização prévia e por escrito.")
	b.clause(edConfidentiality, "DA CONFIDENCIALIDADE", confidentialityText)
	b.clause(edConfidentialityPenalty, "DA MULTA POR QUEBRA DE SIGILO", confidentialityPenaltyText(c.Hire))
	b.clause(edNoEmployment, "DA AUSÊNCIA DE VÍNCULO EMPREGATÍCIO", noEmploymentText)
	b.clause(edRescission, "DA RESCISÃO", e.rescissionText(c.Hire))
	b.forum(edForum, c.Forum)

	term := edTrailing
	if text, ok := nonCompete(c.Hire); ok {
		b.clause(edTrailing, "DA NÃO CONCORRÊNCIA", text)
		term++
	}
	b.clause(term, "DA VIGÊNCIA", fmt.Sprintf(
		"O presente contrato entra em vigor na data de sua assinatura e vigorará por prazo indeterminado, até que seja rescindido nos termos da Cláusula %dª.",
		edRescission,
	))

	return b.closing(c.Signing,
		e.signature(roleContratado, 0, c.Party.Name),
		e.signature(roleContratante, 0, e.company.Name),
	)
}
