package repository

import "github.com/gestorfiscal/nf-comissoes/internal/domain/entity"

// DuplicataRepository define o porto de persistência para duplicatas.
type DuplicataRepository interface {
	Create(dup *entity.Duplicata) error
	ListByNotaFiscalID(notaFiscalID string) ([]*entity.Duplicata, error)
}
