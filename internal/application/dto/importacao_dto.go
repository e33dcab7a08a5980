package dto

import "github.com/shopspring/decimal"

// DuplicataExtraidaDTO parcela extraída do documento (preview e importação).
type DuplicataExtraidaDTO struct {
	Numero     string          `json:"numero"`
	Vencimento string          `json:"vencimento"`
	Valor      decimal.Decimal `json:"valor"`
}

// DadosNotaDTO resultado da extração para POST /api/preview-pdf.
type DadosNotaDTO struct {
	NumeroNota       string                 `json:"numero_nota"`
	Serie            string                 `json:"serie"`
	DataEmissao      string                 `json:"data_emissao"`
	ChaveAcesso      string                 `json:"chave_acesso,omitempty"`
	EmitenteNome     string                 `json:"emitente_nome"`
	EmitenteCNPJ     string                 `json:"emitente_cnpj"`
	DestinatarioNome string                 `json:"destinatario_nome"`
	DestinatarioCNPJ string                 `json:"destinatario_cnpj"`
	ValorTotal       decimal.Decimal        `json:"valor_total"`
	Duplicatas       []DuplicataExtraidaDTO `json:"duplicatas"`
}

// TituloCriadoDTO título gerado em uma importação.
type TituloCriadoDTO struct {
	ID                 string          `json:"id"`
	NumeroDuplicata    string          `json:"numero_duplicata"`
	ValorDuplicata     decimal.Decimal `json:"valor_duplicata"`
	Vencimento         string          `json:"vencimento"`
	PercentualComissao decimal.Decimal `json:"percentual_comissao"`
	ValorComissao      decimal.Decimal `json:"valor_comissao"`
}

// ImportacaoResponse resposta de POST /api/importar-pdf e /api/importar-xml.
type ImportacaoResponse struct {
	NotaFiscalID      string            `json:"nota_fiscal_id"`
	QuantidadeTitulos int               `json:"quantidade_titulos"`
	Titulos           []TituloCriadoDTO `json:"titulos"`
}
