package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
)

// TituloDetalhadoResult é o resultado cru do join título + nota + duplicata.
// Produzido pelo banco; o use case o converte em DTO.
type TituloDetalhadoResult struct {
	ID                  string
	ValorComissao       decimal.Decimal
	PercentualComissao  decimal.Decimal
	Status              string
	StatusPagamento     string
	PedidoID            string // vazio quando o título ainda não entrou em pedido
	DataCriacao         time.Time
	NumeroNota          string
	EmitenteNome        string
	ClienteNome         string
	NumeroDuplicata     string
	ValorDuplicata      decimal.Decimal
	Vencimento          string
	PrevisaoRecebimento string
}

// TituloComissaoRepository define o porto de persistência para títulos de comissão.
type TituloComissaoRepository interface {
	Create(titulo *entity.TituloComissao) error
	// GetByID devolve nil (sem erro) quando o título não existe.
	GetByID(id string) (*entity.TituloComissao, error)
	GetDetalhadoByID(id string) (*TituloDetalhadoResult, error)
	ListDetalhados() ([]*TituloDetalhadoResult, error)
	ListByPedidoID(pedidoID string) ([]*TituloDetalhadoResult, error)
	// Atualizar altera valor de comissão e/ou status de pagamento.
	// Campos nil/vazios ficam como estão.
	Atualizar(id string, valorComissao *decimal.Decimal, statusPagamento string) error

	// GetForUpdateByIDs carrega e bloqueia (SELECT ... FOR UPDATE) os títulos
	// indicados. Só faz sentido dentro de uma transação: é o que serializa
	// agrupamentos concorrentes sobre conjuntos sobrepostos.
	GetForUpdateByIDs(ids []string) ([]*entity.TituloComissao, error)
	// MarcarAgrupados coloca os títulos em em_pedido apontando para o pedido.
	MarcarAgrupados(ids []string, pedidoID string) error
}
