package repository

import "github.com/gestorfiscal/nf-comissoes/internal/domain/entity"

// PedidoRepository define o porto de persistência para pedidos de comissão.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	// GetByID devolve nil (sem erro) quando o pedido não existe.
	GetByID(id string) (*entity.Pedido, error)
	List() ([]*entity.Pedido, error)
}
