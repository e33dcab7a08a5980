package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TituloDetalhadoDTO título com os dados da nota e da duplicata de origem.
type TituloDetalhadoDTO struct {
	ID                  string          `json:"id"`
	ValorComissao       decimal.Decimal `json:"valor_comissao"`
	PercentualComissao  decimal.Decimal `json:"percentual_comissao"`
	Status              string          `json:"status"`
	StatusPagamento     string          `json:"status_pagamento"`
	PedidoID            string          `json:"pedido_id,omitempty"`
	DataCriacao         time.Time       `json:"data_criacao"`
	NumeroNota          string          `json:"numero_nota"`
	EmitenteNome        string          `json:"emitente_nome"`
	ClienteNome         string          `json:"cliente_nome"`
	NumeroDuplicata     string          `json:"numero_duplicata"`
	ValorDuplicata      decimal.Decimal `json:"valor_duplicata"`
	Vencimento          string          `json:"vencimento"`
	PrevisaoRecebimento string          `json:"previsao_recebimento"`
}

// AtualizarTituloRequest body para PUT /api/titulos-comissao/:id.
// ValorComissao só é aceito enquanto o título não está em pedido.
type AtualizarTituloRequest struct {
	ValorComissao   *decimal.Decimal `json:"valor_comissao,omitempty"`
	StatusPagamento string           `json:"status_pagamento,omitempty"`
}
