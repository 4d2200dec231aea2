package compose

import (
	"fmt"

	"github.com/AnTengye/contractstudio/document"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/highlight"
)

const materialAuthorizationTitle = "TERMO DE AUTORIZAÇÃO DE USO DE MATERIAL AUDIOVISUAL"

var materialAuthorizationTerms = []string{
	roleAutorizante, roleAutorizado, materialAuthorizationTitle,
}

const (
	maObject = iota + 1
	maUsage
	maRestrictions
	maCredits
	maPenalty
	maTerm
	maForum
)

// composeMaterialAuthorization prints the company with its registered seat
// rather than the general address.
func composeMaterialAuthorization(c model.MaterialAuthorizationContract, e env) *document.Document {
	b := newBuilder(e, c.Type(), materialAuthorizationTitle, highlight.For(materialAuthorizationTerms...))

	b.intro()
	b.party(e.companyBlock(roleAutorizante, companyOverride{
		TaxID:   e.company.LegalTaxID,
		Address: e.company.LegalAddress,
	}))
	b.party(e.partyBlock(roleAutorizado, 0, c.Party))
	b.agreed()

	b.clause(maObject, "DO OBJETO", fmt.Sprintf(
		"A AUTORIZANTE autoriza o AUTORIZADO a utilizar o material audiovisual produzido no projeto %s, realizado para o cliente final %s e executado em %s, exclusivamente para divulgação de seu portfólio profissional.",
		e.orPlaceholder(c.ProjectName), e.orPlaceholder(c.FinalClient), e.date(c.ExecutionDate),
	))
	b.clause(maUsage, "DOS USOS AUTORIZADOS",
		"O material poderá ser publicado exclusivamente nos seguintes endereços:", e.items(c.UsageLinks)...)
	b.clause(maRestrictions, "DAS VEDAÇÕES",
		"É vedado ao AUTORIZADO alterar o material de forma a prejudicar a imagem da AUTORIZANTE ou do cliente final, comercializá-lo, cedê-lo a terceiros ou utilizá-lo em finalidade diversa da prevista neste termo.")
	b.clause(maCredits, "DOS CRÉDITOS",
		"Em toda publicação do material, o AUTORIZADO deverá indicar a AUTORIZANTE como produtora responsável pelo projeto.")
	b.clause(maPenalty, "DA PENALIDADE", fmt.Sprintf(
		"O uso do material em desacordo com este termo sujeitará o AUTORIZADO ao pagamento de multa de %s, sem prejuízo da remoção imediata do conteúdo e da apuração de perdas e danos.",
		money(c.MisusePenalty),
	))
	b.clause(maTerm, "DA VIGÊNCIA",
		"A presente autorização vigora por prazo indeterminado a partir da data de sua assinatura, podendo ser revogada pela AUTORIZANTE mediante comunicação por escrito, hipótese em que o AUTORIZADO deverá retirar o material de circulação em até 15 (quinze) dias.")
	b.forum(maForum, c.Forum)

	return b.closing(c.Signing,
		e.signature(roleAutorizado, 0, c.Party.Name),
		e.signature(roleAutorizante, 0, e.company.Name),
	)
}
