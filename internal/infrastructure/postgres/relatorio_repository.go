package postgres

import (
	"context"
	"fmt"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas read-only do painel.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador.
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// TotaisNotasFiscais conta e soma as notas importadas.
func (r *RelatorioRepo) TotaisNotasFiscais() (*repository.TotaisResult, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(valor_total), 0) FROM notas_fiscais`
	return r.totais(query, "notas fiscais")
}

// TotaisTitulosComissao conta, soma e conta os pendentes.
func (r *RelatorioRepo) TotaisTitulosComissao() (*repository.TotaisResult, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(valor_comissao), 0),
		       COUNT(CASE WHEN status = $1 THEN 1 END)
		FROM titulos_comissao`
	var res repository.TotaisResult
	err := r.q.QueryRow(context.Background(), query, entity.TituloPendente).
		Scan(&res.Total, &res.Valor, &res.Pendentes)
	if err != nil {
		return nil, fmt.Errorf("totais títulos: %w", err)
	}
	return &res, nil
}

// TotaisPedidos conta e soma os pedidos de comissão.
func (r *RelatorioRepo) TotaisPedidos() (*repository.TotaisResult, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(valor_total), 0) FROM pedidos`
	return r.totais(query, "pedidos")
}

func (r *RelatorioRepo) totais(query, alvo string) (*repository.TotaisResult, error) {
	var res repository.TotaisResult
	err := r.q.QueryRow(context.Background(), query).Scan(&res.Total, &res.Valor)
	if err != nil {
		return nil, fmt.Errorf("totais %s: %w", alvo, err)
	}
	return &res, nil
}
