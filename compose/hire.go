package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/model"
)

// Sentences shared by the filmmaker and editor contracts. In both the
// company is the CONTRATANTE and the hired professional the CONTRATADO.

func frequencyText(f model.PaymentFrequency) string {
	switch f {
	case model.FrequencyMonthly:
		return "mensalmente, até o 5º (quinto) dia útil do mês subsequente ao da prestação dos serviços"
	case model.FrequencyWeekly:
		return "semanalmente, até o último dia útil da semana em que os serviços forem prestados"
	case model.FrequencyPerProject:
		return "por projeto, em até 10 (dez) dias após a entrega e aprovação do respectivo material"
	}
	return "na periodicidade acordada entre as partes"
}

func remunerationText(h model.Hire) string {
	return fmt.Sprintf(
		"Pelos serviços prestados, a CONTRATANTE pagará ao CONTRATADO a remuneração de %s.",
		money(h.Remuneration),
	)
}

func paymentScheduleText(h model.Hire) string {
	return fmt.Sprintf(
		"A remuneração será paga %s, mediante apresentação de nota fiscal ou recibo pelo CONTRATADO.",
		frequencyText(h.PaymentFrequency),
	)
}

func confidentialityPenaltyText(h model.Hire) string {
	return fmt.Sprintf(
		"A violação do dever de sigilo sujeitará o CONTRATADO ao pagamento de multa de %s, sem prejuízo da apuração de perdas e danos.",
		money(h.ConfidentialityPenalty),
	)
}

func (e env) rescissionText(h model.Hire) string {
	return fmt.Sprintf(
		"Qualquer das partes poderá rescindir o presente contrato mediante aviso prévio, por escrito, de %s. A rescisão imotivada sem o cumprimento do aviso prévio sujeitará a parte que lhe der causa ao pagamento de multa de %s sobre o valor da remuneração.",
		e.days(h.RescissionNoticeDays), e.percent(h.RescissionPenaltyPercent),
	)
}

// nonCompete reports whether the clause is included and its text.
func nonCompete(h model.Hire) (string, bool) {
	if !h.NonCompete.Enabled || !present(h.NonCompete.Text) {
		return "", false
	}
	return sentence(h.NonCompete.Text), true
}

const noEmploymentText = "O presente contrato não gera vínculo empregatício entre as partes, cabendo ao CONTRATADO o recolhimento de todos os tributos e encargos incidentes sobre a sua remuneração."

const confidentialityText = "O CONTRATADO compromete-se a manter absoluto sigilo sobre informações, roteiros, imagens, clientes e demais dados a que tiver acesso em razão deste contrato, durante a sua vigência e após o seu término."

var contractorDuties = []string{
	"Executar os serviços com zelo, qualidade técnica e dentro dos prazos acordados.",
	"Seguir as orientações criativas e técnicas definidas pela CONTRATANTE.",
	"Comunicar à CONTRATANTE, com antecedência, qualquer impedimento à execução dos serviços.",
}

var clientDuties = []string{
	"Fornecer ao CONTRATADO as informações e materiais necessários à execução dos serviços.",
	"Efetuar os pagamentos nos valores e prazos previstos neste contrato.",
}
