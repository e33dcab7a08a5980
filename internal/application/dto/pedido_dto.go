package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarPedidoRequest body para POST /api/pedidos.
type CriarPedidoRequest struct {
	TitulosIDs []string `json:"titulos_ids"`
}

// PedidoCriadoResponse resposta do agrupamento.
type PedidoCriadoResponse struct {
	PedidoID          string          `json:"pedido_id"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	QuantidadeTitulos int             `json:"quantidade_titulos"`
}

// PedidoDTO pedido em listagens.
type PedidoDTO struct {
	ID                string          `json:"id"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	QuantidadeTitulos int             `json:"quantidade_titulos"`
	Status            string          `json:"status"`
	DataCriacao       time.Time       `json:"data_criacao"`
}

// PedidoDetalhadoResponse pedido com seus títulos (GET /api/pedidos/:id).
type PedidoDetalhadoResponse struct {
	Pedido  PedidoDTO            `json:"pedido"`
	Titulos []TituloDetalhadoDTO `json:"titulos"`
}
