package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var _ repository.NotaFiscalRepository = (*NotaFiscalRepo)(nil)

// NotaFiscalRepo implementação de NotaFiscalRepository (usável com pool ou tx).
type NotaFiscalRepo struct {
	q Querier
}

// NewNotaFiscalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNotaFiscalRepository(q Querier) *NotaFiscalRepo {
	return &NotaFiscalRepo{q: q}
}

// Create persiste o cabeçalho da nota. Violação da constraint única de
// chave_acesso vira ErrDuplicate: é a garantia real contra importações
// concorrentes do mesmo documento, não a pré-checagem do caso de uso.
func (r *NotaFiscalRepo) Create(nota *entity.NotaFiscal) error {
	if nota.ID == "" {
		nota.ID = uuid.New().String()
	}
	if nota.DataImportacao.IsZero() {
		nota.DataImportacao = time.Now()
	}
	query := `
		INSERT INTO notas_fiscais (id, numero_nota, serie, data_emissao, chave_acesso, emitente_nome, emitente_cnpj, destinatario_nome, destinatario_cnpj, valor_total, origem, data_importacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.NumeroNota, nota.Serie, nota.DataEmissao, nullIfEmpty(nota.ChaveAcesso),
		nota.EmitenteNome, nota.EmitenteCNPJ, nota.DestinatarioNome, nota.DestinatarioCNPJ,
		nota.ValorTotal, nota.Origem, nota.DataImportacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: chave de acesso %s", domain.ErrDuplicate, nota.ChaveAcesso)
		}
		return fmt.Errorf("insert nota fiscal: %w", err)
	}
	return nil
}

// GetByChaveAcesso busca a nota pela chave; nil quando não existe.
func (r *NotaFiscalRepo) GetByChaveAcesso(chave string) (*entity.NotaFiscal, error) {
	query := `
		SELECT id, numero_nota, COALESCE(serie, ''), COALESCE(data_emissao, ''), COALESCE(chave_acesso, ''),
		       COALESCE(emitente_nome, ''), COALESCE(emitente_cnpj, ''), COALESCE(destinatario_nome, ''),
		       COALESCE(destinatario_cnpj, ''), valor_total, COALESCE(origem, ''), data_importacao
		FROM notas_fiscais WHERE chave_acesso = $1`
	var nota entity.NotaFiscal
	err := r.q.QueryRow(context.Background(), query, chave).Scan(
		&nota.ID, &nota.NumeroNota, &nota.Serie, &nota.DataEmissao, &nota.ChaveAcesso,
		&nota.EmitenteNome, &nota.EmitenteCNPJ, &nota.DestinatarioNome, &nota.DestinatarioCNPJ,
		&nota.ValorTotal, &nota.Origem, &nota.DataImportacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota por chave: %w", err)
	}
	return &nota, nil
}

// List devolve todas as notas, mais recentes primeiro.
func (r *NotaFiscalRepo) List() ([]*entity.NotaFiscal, error) {
	query := `
		SELECT id, numero_nota, COALESCE(serie, ''), COALESCE(data_emissao, ''), COALESCE(chave_acesso, ''),
		       COALESCE(emitente_nome, ''), COALESCE(emitente_cnpj, ''), COALESCE(destinatario_nome, ''),
		       COALESCE(destinatario_cnpj, ''), valor_total, COALESCE(origem, ''), data_importacao
		FROM notas_fiscais ORDER BY data_importacao DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list notas fiscais: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotaFiscal
	for rows.Next() {
		var nota entity.NotaFiscal
		if err := rows.Scan(
			&nota.ID, &nota.NumeroNota, &nota.Serie, &nota.DataEmissao, &nota.ChaveAcesso,
			&nota.EmitenteNome, &nota.EmitenteCNPJ, &nota.DestinatarioNome, &nota.DestinatarioCNPJ,
			&nota.ValorTotal, &nota.Origem, &nota.DataImportacao,
		); err != nil {
			return nil, fmt.Errorf("scan nota fiscal: %w", err)
		}
		list = append(list, &nota)
	}
	return list, rows.Err()
}

// Delete remove a nota; o banco derruba duplicatas e títulos por cascata.
func (r *NotaFiscalRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM notas_fiscais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nota fiscal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
