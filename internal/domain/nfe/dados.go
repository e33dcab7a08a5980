// Package nfe concentra a lógica pura de interpretação de notas fiscais:
// extração de campos do texto livre de um DANFE, normalização de números e
// datas no formato brasileiro e síntese da duplicata padrão.
//
// Nada aqui toca banco, rede ou arquivos; os extratores de infraestrutura
// (PDF/XML) produzem ou consomem os tipos deste pacote.
package nfe

import "github.com/shopspring/decimal"

// Valores-sentinela usados quando o texto livre não revela o campo.
// A extração de texto nunca falha por campo ausente: documentos parcialmente
// legíveis ainda são importáveis.
const (
	SemNumero       = "SEM_NUMERO"
	NaoIdentificado = "NÃO IDENTIFICADO"
	SeriePadrao     = "1"
)

// DuplicataExtraida é uma parcela encontrada no documento.
type DuplicataExtraida struct {
	Numero     string
	Vencimento string // YYYY-MM-DD
	Valor      decimal.Decimal
}

// DadosNota é a saída canônica de qualquer extrator (texto livre ou XML).
// Datas em ISO (YYYY-MM-DD); ChaveAcesso vazia quando o documento não traz
// os 44 dígitos.
type DadosNota struct {
	NumeroNota       string
	Serie            string
	DataEmissao      string
	ChaveAcesso      string
	EmitenteNome     string
	EmitenteCNPJ     string
	DestinatarioNome string
	DestinatarioCNPJ string
	ValorTotal       decimal.Decimal
	Duplicatas       []DuplicataExtraida
}
