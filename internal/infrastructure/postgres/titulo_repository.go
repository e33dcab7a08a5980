package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var _ repository.TituloComissaoRepository = (*TituloComissaoRepo)(nil)

// TituloComissaoRepo implementação de TituloComissaoRepository (pool ou tx).
type TituloComissaoRepo struct {
	q Querier
}

// NewTituloComissaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTituloComissaoRepository(q Querier) *TituloComissaoRepo {
	return &TituloComissaoRepo{q: q}
}

// Create persiste o título derivado de uma duplicata.
func (r *TituloComissaoRepo) Create(titulo *entity.TituloComissao) error {
	if titulo.ID == "" {
		titulo.ID = uuid.New().String()
	}
	query := `
		INSERT INTO titulos_comissao (id, duplicata_id, nota_fiscal_id, percentual_comissao, valor_comissao, status, status_pagamento)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		titulo.ID, titulo.DuplicataID, titulo.NotaFiscalID,
		titulo.PercentualComissao, titulo.ValorComissao, titulo.Status, titulo.StatusPagamento,
	)
	if err != nil {
		return fmt.Errorf("insert título: %w", err)
	}
	return nil
}

// GetByID busca o título cru; nil quando não existe.
func (r *TituloComissaoRepo) GetByID(id string) (*entity.TituloComissao, error) {
	query := `
		SELECT id, duplicata_id, nota_fiscal_id, percentual_comissao, valor_comissao,
		       status, status_pagamento, COALESCE(pedido_id::text, ''), data_criacao
		FROM titulos_comissao WHERE id = $1`
	var t entity.TituloComissao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.DuplicataID, &t.NotaFiscalID, &t.PercentualComissao, &t.ValorComissao,
		&t.Status, &t.StatusPagamento, &t.PedidoID, &t.DataCriacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get título: %w", err)
	}
	return &t, nil
}

const consultaDetalhada = `
	SELECT tc.id, tc.valor_comissao, tc.percentual_comissao, tc.status, tc.status_pagamento,
	       COALESCE(tc.pedido_id::text, ''), tc.data_criacao,
	       nf.numero_nota, COALESCE(nf.emitente_nome, ''), COALESCE(nf.destinatario_nome, ''),
	       d.numero_duplicata, d.valor, d.vencimento, d.previsao_recebimento
	FROM titulos_comissao tc
	JOIN notas_fiscais nf ON tc.nota_fiscal_id = nf.id
	JOIN duplicatas d ON tc.duplicata_id = d.id`

// GetDetalhadoByID devolve o título com nota e duplicata; nil quando não existe.
func (r *TituloComissaoRepo) GetDetalhadoByID(id string) (*repository.TituloDetalhadoResult, error) {
	row := r.q.QueryRow(context.Background(), consultaDetalhada+` WHERE tc.id = $1`, id)
	res, err := scanDetalhado(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get título detalhado: %w", err)
	}
	return res, nil
}

// ListDetalhados devolve todos os títulos, mais recentes primeiro.
func (r *TituloComissaoRepo) ListDetalhados() ([]*repository.TituloDetalhadoResult, error) {
	return r.listDetalhados(consultaDetalhada + ` ORDER BY tc.data_criacao DESC`)
}

// ListByPedidoID devolve os títulos vinculados a um pedido.
func (r *TituloComissaoRepo) ListByPedidoID(pedidoID string) ([]*repository.TituloDetalhadoResult, error) {
	return r.listDetalhados(consultaDetalhada+` WHERE tc.pedido_id = $1 ORDER BY tc.data_criacao`, pedidoID)
}

func (r *TituloComissaoRepo) listDetalhados(query string, args ...any) ([]*repository.TituloDetalhadoResult, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list títulos: %w", err)
	}
	defer rows.Close()
	var list []*repository.TituloDetalhadoResult
	for rows.Next() {
		res, err := scanDetalhado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan título detalhado: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

func scanDetalhado(row pgx.Row) (*repository.TituloDetalhadoResult, error) {
	var res repository.TituloDetalhadoResult
	err := row.Scan(
		&res.ID, &res.ValorComissao, &res.PercentualComissao, &res.Status, &res.StatusPagamento,
		&res.PedidoID, &res.DataCriacao,
		&res.NumeroNota, &res.EmitenteNome, &res.ClienteNome,
		&res.NumeroDuplicata, &res.ValorDuplicata, &res.Vencimento, &res.PrevisaoRecebimento,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Atualizar altera valor de comissão e/ou status de pagamento.
// COALESCE mantém o campo quando o parâmetro vem nulo.
func (r *TituloComissaoRepo) Atualizar(id string, valorComissao *decimal.Decimal, statusPagamento string) error {
	query := `
		UPDATE titulos_comissao
		SET valor_comissao   = COALESCE($2, valor_comissao),
		    status_pagamento = COALESCE($3, status_pagamento)
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, valorComissao, nullIfEmpty(statusPagamento))
	if err != nil {
		return fmt.Errorf("update título: %w", err)
	}
	return nil
}

// GetForUpdateByIDs carrega os títulos com SELECT ... FOR UPDATE.
// Dentro de uma transação, o lock de linha serializa agrupamentos
// concorrentes sobre conjuntos sobrepostos: o segundo só enxerga as linhas
// depois que o primeiro comita, e aí o pedido_id já está preenchido.
func (r *TituloComissaoRepo) GetForUpdateByIDs(ids []string) ([]*entity.TituloComissao, error) {
	query := `
		SELECT id, duplicata_id, nota_fiscal_id, percentual_comissao, valor_comissao,
		       status, status_pagamento, COALESCE(pedido_id::text, ''), data_criacao
		FROM titulos_comissao WHERE id = ANY($1) FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("lock títulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.TituloComissao
	for rows.Next() {
		var t entity.TituloComissao
		if err := rows.Scan(
			&t.ID, &t.DuplicataID, &t.NotaFiscalID, &t.PercentualComissao, &t.ValorComissao,
			&t.Status, &t.StatusPagamento, &t.PedidoID, &t.DataCriacao,
		); err != nil {
			return nil, fmt.Errorf("scan título: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// MarcarAgrupados coloca os títulos em em_pedido apontando para o pedido.
// Deve rodar na mesma transação do GetForUpdateByIDs e do Create do pedido.
func (r *TituloComissaoRepo) MarcarAgrupados(ids []string, pedidoID string) error {
	query := `UPDATE titulos_comissao SET status = $2, pedido_id = $3 WHERE id = ANY($1)`
	_, err := r.q.Exec(context.Background(), query, ids, entity.TituloEmPedido, pedidoID)
	if err != nil {
		return fmt.Errorf("marcar títulos agrupados: %w", err)
	}
	return nil
}
