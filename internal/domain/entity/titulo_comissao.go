package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de agrupamento do título de comissão.
const (
	TituloPendente = "pendente"  // Aguardando inclusão em pedido
	TituloEmPedido = "em_pedido" // Já vinculado a um pedido (imutável a partir daqui)
)

// Status de pagamento do título.
const (
	PagamentoPendente = "pendente"
	PagamentoPago     = "pago"
)

// TituloComissao é a comissão devida sobre uma duplicata (relação 1:1).
// ValorComissao = valor da duplicata × percentual / 100, calculado na importação.
type TituloComissao struct {
	ID                  string
	DuplicataID         string
	NotaFiscalID        string
	PercentualComissao  decimal.Decimal
	ValorComissao       decimal.Decimal
	Status              string
	StatusPagamento     string
	PedidoID            string // vazio enquanto o título não entra em pedido
	DataCriacao         time.Time
}
