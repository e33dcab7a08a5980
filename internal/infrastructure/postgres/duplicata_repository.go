package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var _ repository.DuplicataRepository = (*DuplicataRepo)(nil)

// DuplicataRepo implementação de DuplicataRepository (usável com pool ou tx).
type DuplicataRepo struct {
	q Querier
}

// NewDuplicataRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDuplicataRepository(q Querier) *DuplicataRepo {
	return &DuplicataRepo{q: q}
}

// Create persiste uma parcela da nota.
func (r *DuplicataRepo) Create(dup *entity.Duplicata) error {
	if dup.ID == "" {
		dup.ID = uuid.New().String()
	}
	query := `
		INSERT INTO duplicatas (id, nota_fiscal_id, numero_duplicata, valor, vencimento, previsao_recebimento)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		dup.ID, dup.NotaFiscalID, dup.NumeroDuplicata, dup.Valor, dup.Vencimento, dup.PrevisaoRecebimento,
	)
	if err != nil {
		return fmt.Errorf("insert duplicata: %w", err)
	}
	return nil
}

// ListByNotaFiscalID devolve as parcelas de uma nota na ordem de criação.
func (r *DuplicataRepo) ListByNotaFiscalID(notaFiscalID string) ([]*entity.Duplicata, error) {
	query := `
		SELECT id, nota_fiscal_id, numero_duplicata, valor, vencimento, previsao_recebimento, data_criacao
		FROM duplicatas WHERE nota_fiscal_id = $1 ORDER BY numero_duplicata`
	rows, err := r.q.Query(context.Background(), query, notaFiscalID)
	if err != nil {
		return nil, fmt.Errorf("list duplicatas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Duplicata
	for rows.Next() {
		var d entity.Duplicata
		if err := rows.Scan(&d.ID, &d.NotaFiscalID, &d.NumeroDuplicata, &d.Valor, &d.Vencimento, &d.PrevisaoRecebimento, &d.DataCriacao); err != nil {
			return nil, fmt.Errorf("scan duplicata: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
