package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação de PedidoRepository (pool ou tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste o pedido com o total congelado no agrupamento.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	if pedido.ID == "" {
		pedido.ID = uuid.New().String()
	}
	if pedido.Status == "" {
		pedido.Status = entity.PedidoPendente
	}
	query := `
		INSERT INTO pedidos (id, valor_total, quantidade_titulos, status)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.ValorTotal, pedido.QuantidadeTitulos, pedido.Status,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID busca o pedido; nil quando não existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, valor_total, quantidade_titulos, status, data_criacao
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ValorTotal, &p.QuantidadeTitulos, &p.Status, &p.DataCriacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List devolve todos os pedidos, mais recentes primeiro.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `
		SELECT id, valor_total, quantidade_titulos, status, data_criacao
		FROM pedidos ORDER BY data_criacao DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ValorTotal, &p.QuantidadeTitulos, &p.Status, &p.DataCriacao); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
