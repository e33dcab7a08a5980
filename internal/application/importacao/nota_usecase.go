package importacao

import (
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// NotaUseCase mantém o catálogo de notas importadas.
type NotaUseCase struct {
	notaRepo repository.NotaFiscalRepository
}

// NewNotaUseCase constrói o caso de uso.
func NewNotaUseCase(notaRepo repository.NotaFiscalRepository) *NotaUseCase {
	return &NotaUseCase{notaRepo: notaRepo}
}

// Listar devolve as notas importadas, mais recentes primeiro.
func (uc *NotaUseCase) Listar() ([]*entity.NotaFiscal, error) {
	return uc.notaRepo.List()
}

// Excluir remove a nota; duplicatas e títulos caem por cascata no banco.
// Notas são imutáveis depois de importadas: a única remoção possível é do
// conjunto inteiro.
func (uc *NotaUseCase) Excluir(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.notaRepo.Delete(id)
}
