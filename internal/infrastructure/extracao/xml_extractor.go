package extracao

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
)

// XMLExtractor mapeia o XML de uma NF-e para o registro canônico.
// Diferente do extrator de texto, aqui a estrutura é autoritativa: se o
// elemento infNFe não existe sob nenhum dos dois invólucros aceitos
// (nfeProc/NFe ou NFe direto), a extração falha sem resultado parcial.
type XMLExtractor struct{}

// NewXMLExtractor constrói o extrator.
func NewXMLExtractor() *XMLExtractor { return &XMLExtractor{} }

// Extrair faz o mapeamento direto dos blocos ide/emit/dest/total/cobr.
func (e *XMLExtractor) Extrair(conteudo []byte) (*nfe.DadosNota, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = leitorCharset
	if err := doc.ReadFromBytes(conteudo); err != nil {
		return nil, fmt.Errorf("%w: XML malformado: %v", domain.ErrExtraction, err)
	}

	inf := localizarInfNFe(doc)
	if inf == nil {
		return nil, fmt.Errorf("%w: estrutura XML inválida: elemento infNFe ausente", domain.ErrExtraction)
	}

	dados := &nfe.DadosNota{
		NumeroNota:       texto(inf, "ide/nNF"),
		Serie:            texto(inf, "ide/serie"),
		DataEmissao:      dataEmissao(inf),
		ChaveAcesso:      strings.TrimPrefix(inf.SelectAttrValue("Id", ""), "NFe"),
		EmitenteNome:     texto(inf, "emit/xNome"),
		EmitenteCNPJ:     documento(inf, "emit"),
		DestinatarioNome: texto(inf, "dest/xNome"),
		DestinatarioCNPJ: documento(inf, "dest"),
		ValorTotal:       valor(inf, "total/ICMSTot/vNF"),
	}

	// Bloco de cobrança é opcional: sem ele, a lista de duplicatas sai vazia
	// e o sintetizador decide depois.
	if cobr := inf.FindElement("cobr"); cobr != nil {
		for _, dup := range cobr.FindElements("dup") {
			dados.Duplicatas = append(dados.Duplicatas, nfe.DuplicataExtraida{
				Numero:     texto(dup, "nDup"),
				Vencimento: texto(dup, "dVenc"),
				Valor:      valor(dup, "vDup"),
			})
		}
	}
	return dados, nil
}

// localizarInfNFe aceita o documento processado (nfeProc) ou a NFe crua.
func localizarInfNFe(doc *etree.Document) *etree.Element {
	raiz := doc.Root()
	if raiz == nil {
		return nil
	}
	switch raiz.Tag {
	case "nfeProc":
		return raiz.FindElement("NFe/infNFe")
	case "NFe":
		return raiz.FindElement("infNFe")
	}
	return nil
}

func texto(el *etree.Element, caminho string) string {
	if filho := el.FindElement(caminho); filho != nil {
		return strings.TrimSpace(filho.Text())
	}
	return ""
}

// dataEmissao prefere dhEmi (layout 4.00, com hora e fuso) e cai para dEmi
// (layouts antigos). Só a parte da data interessa ao sistema.
func dataEmissao(inf *etree.Element) string {
	emissao := texto(inf, "ide/dhEmi")
	if emissao == "" {
		emissao = texto(inf, "ide/dEmi")
	}
	if len(emissao) > len(nfe.FormatoDataISO) {
		emissao = emissao[:len(nfe.FormatoDataISO)]
	}
	return emissao
}

// documento lê CNPJ ou, na ausência, CPF do bloco indicado.
func documento(inf *etree.Element, bloco string) string {
	if cnpj := texto(inf, bloco+"/CNPJ"); cnpj != "" {
		return cnpj
	}
	return texto(inf, bloco+"/CPF")
}

func valor(el *etree.Element, caminho string) decimal.Decimal {
	v, err := decimal.NewFromString(texto(el, caminho))
	if err != nil {
		return decimal.Zero
	}
	return v
}
