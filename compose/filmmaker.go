package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/highlight"
)

const filmmakerHireTitle = "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE FILMMAKER"

var filmmakerHireTerms = []string{
	roleContratante, roleContratado, filmmakerHireTitle,
}

const (
	fmObject = iota + 1
	fmRemuneration
	fmSchedule
	fmDeadline
	fmEquipment
	fmContractorDuties
	fmClientDuties
	fmRights
	fmConfidentiality
	fmNoEmployment
	fmRescission
	fmNonCompete
	fmForum
)

func composeFilmmakerHire(c model.FilmmakerHireContract, e env) *document.Document {
	b := newBuilder(e, c.Type(), filmmakerHireTitle, highlight.For(filmmakerHireTerms...))

	b.intro()
	b.party(e.companyBlock(roleContratante, companyOverride{}))
	b.party(e.partyBlock(roleContratado, 0, c.Party))
	b.agreed()

	b.clause(fmObject, "DO OBJETO",
		"O presente contrato tem por objeto a prestação, pelo CONTRATADO à CONTRATANTE, de serviços de captação de imagens e vídeos nas produções por ela designadas.")
	b.clause(fmRemuneration, "DA REMUNERAÇÃO", remunerationText(c.Hire))
	b.clause(fmSchedule, "DA PERIODICIDADE DO PAGAMENTO", paymentScheduleText(c.Hire))
	b.clause(fmDeadline, "DO PRAZO DE ENTREGA", fmt.Sprintf(
		"O CONTRATADO entregará o material captado no seguinte prazo: %s",
		sentence(e.orPlaceholder(c.DeliveryDeadline)),
	))
	b.clause(fmEquipment, "DOS EQUIPAMENTOS", sentence(e.orPlaceholder(c.EquipmentResponsibility)))
	b.clause(fmContractorDuties, "DAS OBRIGAÇÕES DO CONTRATADO", "São obrigações do CONTRATADO:", contractorDuties...)
	b.clause(fmClientDuties, "DAS OBRIGAÇÕES DA CONTRATANTE", "São obrigações da CONTRATANTE:", clientDuties...)
	b.clause(fmRights, "DOS DIREITOS AUTORAIS E DE IMAGEM",
		"Todo o material captado em razão deste contrato é de titularidade exclusiva da CONTRATANTE, que poderá utilizá-lo, editá-lo e divulgá-lo livremente, cabendo ao CONTRATADO apenas o direito de ser identificado como autor das imagens quando cabível.")
	b.clause(fmConfidentiality, "DA CONFIDENCIALIDADE", confidentialityText+" "+confidentialityPenaltyText(c.Hire))
	b.clause(fmNoEmployment, "DA AUSÊNCIA DE VÍNCULO EMPREGATÍCIO", noEmploymentText)
	b.clause(fmRescission, "DA RESCISÃO", e.rescissionText(c.Hire))
	if text, ok := nonCompete(c.Hire); ok {
		b.clause(fmNonCompete, "DA NÃO CONCORRÊNCIA", text)
	}
	b.forum(fmForum, c.Forum)

	return b.closing(c.Signing,
		e.signature(roleContratado, 0, c.Party.Name),
		e.signature(roleContratante, 0, e.company.Name),
	)
}
