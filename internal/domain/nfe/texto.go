package nfe

import (
	"regexp"
	"strings"
	"time"

	"github.com/gestorfiscal/nf-comissoes/pkg/fiscal"
)

// Cada campo é resolvido por uma lista ordenada de padrões independentes:
// o primeiro que casar vence, sem backtracking entre padrões. Adicionar
// suporte a um novo layout de DANFE é acrescentar um padrão ao fim da lista.

var padroesNumeroNota = []*regexp.Regexp{
	// "NF-e Nº 123456", "NOTA FISCAL N. 123456"
	regexp.MustCompile(`(?i)(?:NF-e|NOTA\s*FISCAL|N\.?\s*F\.?)[:\s]*N[ºª°]?\.?\s*(\d{6,})`),
	// "Nº 123456" isolado
	regexp.MustCompile(`(?i)N[ºª°]\.?\s*(\d{6,})`),
	// "NUMERO: 123456"
	regexp.MustCompile(`(?i)(?:N[ÚU]MERO|NUM)[:\s]*(\d{6,})`),
}

var padroesSerie = []*regexp.Regexp{
	regexp.MustCompile(`(?i)S[ÉE]RIE[:\s]*(\d+)`),
}

var padroesDataEmissao = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:EMISS[ÃA]O|DATA\s*(?:DE\s*)?EMISS[ÃA]O)[:\s]*(\d{2}[/\-]\d{2}[/\-]\d{4})`),
}

// Chave de acesso: 44 dígitos, tolerando espaços entre os grupos de 4
// (formato impresso no DANFE).
var padraoChaveAcesso = regexp.MustCompile(
	`(\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4}\s*\d{4})`)

var padroesEmitente = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:RAZ[ÃA]O\s*SOCIAL|NOME\s*(?:EMPRESARIAL)?)[:\s]*([^\n]{5,100})`),
	regexp.MustCompile(`(?i)EMITENTE[:\s]*([^\n]{5,100})`),
}

var padroesDestinatario = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:DESTINAT[ÁA]RIO[/\\]?REMETENTE|DESTINAT[ÁA]RIO)[:\s]*([^\n]{5,100})`),
	regexp.MustCompile(`(?i)(?:CLIENTE|TOMADOR)[:\s]*([^\n]{5,100})`),
}

// CNPJ/CPF ancorado no rótulo: grupos 2-3-3-4-2 com separadores opcionais.
// A primeira ocorrência é atribuída ao emitente e a segunda ao destinatário.
var padraoDocumento = regexp.MustCompile(`(?i)(?:CNPJ|CPF)[:\s]*(\d{2}\.?\d{3}\.?\d{3}[/\\]?\d{4}\-?\d{2})`)

var padroesValorTotal = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:VALOR\s*TOTAL|TOTAL\s*(?:DA\s*)?(?:NOTA|NF)|VL\.?\s*TOTAL)[:\s]*R?\$?\s*([\d.,]+)`),
}

// Duplicatas, padrão estrito: "001 15/01/2024 R$ 1.000,00" (ou "01/001").
var padraoDuplicataEstrito = regexp.MustCompile(
	`(\d{3}|\d{2}[/\\]\d{3})\s+(\d{2}[/\\]\d{2}[/\\]\d{4})\s+R?\$?\s*([\d.,]+)`)

// Fallback frouxo: "DUPLICATA 001 ... 15/01/2024 ... 1.000,00".
var padraoDuplicataFrouxo = regexp.MustCompile(
	`(?i)(?:DUPLICATA|PARC(?:ELA)?)[:\s]*(\d+)\D+([\d/\\\-]+)\D+([\d.,]+)`)

// ParseTexto extrai os dados da nota a partir do texto livre de um DANFE.
// Nunca falha: campos ausentes recebem os sentinelas de dados.go, e a data
// de emissão ausente assume a data de referência (momento da extração).
func ParseTexto(texto string, referencia time.Time) *DadosNota {
	dados := &DadosNota{
		NumeroNota:       SemNumero,
		Serie:            SeriePadrao,
		DataEmissao:      referencia.Format(FormatoDataISO),
		EmitenteNome:     NaoIdentificado,
		DestinatarioNome: NaoIdentificado,
	}

	if num, ok := primeiraCaptura(padroesNumeroNota, texto); ok {
		dados.NumeroNota = num
	}
	if serie, ok := primeiraCaptura(padroesSerie, texto); ok {
		dados.Serie = serie
	}
	if bruta, ok := primeiraCaptura(padroesDataEmissao, texto); ok {
		if iso, ok := ConverterDataBR(bruta); ok {
			dados.DataEmissao = iso
		}
	}
	if m := padraoChaveAcesso.FindStringSubmatch(texto); m != nil {
		if chave, err := fiscal.NormalizarChave(m[1]); err == nil {
			dados.ChaveAcesso = chave
		}
	}
	if nome, ok := primeiraCaptura(padroesEmitente, texto); ok {
		dados.EmitenteNome = colapsarEspacos(nome)
	}
	if nome, ok := primeiraCaptura(padroesDestinatario, texto); ok {
		dados.DestinatarioNome = colapsarEspacos(nome)
	}
	docs := padraoDocumento.FindAllStringSubmatch(texto, 2)
	if len(docs) > 0 {
		dados.EmitenteCNPJ = fiscal.SomenteDigitos(docs[0][1])
	}
	if len(docs) > 1 {
		dados.DestinatarioCNPJ = fiscal.SomenteDigitos(docs[1][1])
	}
	if bruto, ok := primeiraCaptura(padroesValorTotal, texto); ok {
		if v, ok := ParseValorBR(bruto); ok {
			dados.ValorTotal = v
		}
	}

	dados.Duplicatas = extrairDuplicatas(texto)
	return dados
}

// primeiraCaptura percorre a lista de padrões e devolve o primeiro grupo
// capturado pelo primeiro padrão que casar.
func primeiraCaptura(padroes []*regexp.Regexp, texto string) (string, bool) {
	for _, re := range padroes {
		if m := re.FindStringSubmatch(texto); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// extrairDuplicatas coleta todas as parcelas pelo padrão estrito; se nenhuma
// casar, tenta o fallback frouxo ancorado em "DUPLICATA"/"PARC".
func extrairDuplicatas(texto string) []DuplicataExtraida {
	var dups []DuplicataExtraida

	for _, m := range padraoDuplicataEstrito.FindAllStringSubmatch(texto, -1) {
		numero := strings.NewReplacer("/", "", `\`, "").Replace(m[1])
		vencimento, okData := ConverterDataBR(m[2])
		valor, okValor := ParseValorBR(m[3])
		if !okData || !okValor {
			continue
		}
		dups = append(dups, DuplicataExtraida{Numero: numero, Vencimento: vencimento, Valor: valor})
	}
	if len(dups) > 0 {
		return dups
	}

	for _, m := range padraoDuplicataFrouxo.FindAllStringSubmatch(texto, -1) {
		vencimento, okData := ConverterDataBR(m[2])
		valor, okValor := ParseValorBR(m[3])
		if !okData || !okValor {
			continue
		}
		dups = append(dups, DuplicataExtraida{
			Numero:     padZeros(m[1], 3),
			Vencimento: vencimento,
			Valor:      valor,
		})
	}
	return dups
}

func padZeros(s string, tamanho int) string {
	for len(s) < tamanho {
		s = "0" + s
	}
	return s
}
