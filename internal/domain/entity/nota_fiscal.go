package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrigemPDF marca notas importadas a partir do texto de um PDF (sem XML armazenado).
const OrigemPDF = "PDF_IMPORT"

// NotaFiscal representa o cabeçalho de uma NF-e importada.
// Datas fiscais (emissão) são armazenadas como string ISO (YYYY-MM-DD),
// sem fuso horário: o documento de origem não carrega timezone.
type NotaFiscal struct {
	ID               string
	NumeroNota       string
	Serie            string
	DataEmissao      string // YYYY-MM-DD
	ChaveAcesso      string // 44 dígitos; vazio quando o documento não traz chave
	EmitenteNome     string
	EmitenteCNPJ     string
	DestinatarioNome string
	DestinatarioCNPJ string
	ValorTotal       decimal.Decimal
	Origem           string // XML completo da nota ou OrigemPDF
	DataImportacao   time.Time
}
