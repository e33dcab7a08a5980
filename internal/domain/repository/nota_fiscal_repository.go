package repository

import "github.com/gestorfiscal/nf-comissoes/internal/domain/entity"

// NotaFiscalRepository define o porto de persistência para notas fiscais.
type NotaFiscalRepository interface {
	Create(nota *entity.NotaFiscal) error
	// GetByChaveAcesso devolve nil (sem erro) quando a chave não existe.
	GetByChaveAcesso(chave string) (*entity.NotaFiscal, error)
	List() ([]*entity.NotaFiscal, error)
	// Delete remove a nota e, por cascata no banco, duplicatas e títulos.
	Delete(id string) error
}
