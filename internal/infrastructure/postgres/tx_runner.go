package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// Ensure TxRunner implements importacao.ImportTxRunner and comissao.PedidoTxRunner.
var _ importacao.ImportTxRunner = (*TxRunner)(nil)
var _ comissao.PedidoTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImportacao inicia uma transação, executa fn com os repositórios da
// importação atados à tx e faz Commit ou Rollback.
func (r *TxRunner) RunImportacao(ctx context.Context, fn func(
	notaRepo repository.NotaFiscalRepository,
	dupRepo repository.DuplicataRepository,
	tituloRepo repository.TituloComissaoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNotaFiscalRepository(tx), NewDuplicataRepository(tx), NewTituloComissaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPedido inicia uma transação com os repositórios do agrupamento
// (títulos com lock + pedidos).
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	tituloRepo repository.TituloComissaoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTituloComissaoRepository(tx), NewPedidoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
