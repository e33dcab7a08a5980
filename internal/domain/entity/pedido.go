package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do pedido de comissão.
const (
	PedidoPendente = "pendente"
)

// Pedido agrupa títulos de comissão para acerto consolidado.
// ValorTotal é a soma dos valores de comissão no momento do agrupamento
// e não muda depois disso.
type Pedido struct {
	ID                string
	ValorTotal        decimal.Decimal
	QuantidadeTitulos int
	Status            string
	DataCriacao       time.Time
}
