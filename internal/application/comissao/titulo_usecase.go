package comissao

import (
	"fmt"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// TituloUseCase consulta e atualiza títulos de comissão.
type TituloUseCase struct {
	tituloRepo repository.TituloComissaoRepository
}

// NewTituloUseCase constrói o caso de uso.
func NewTituloUseCase(tituloRepo repository.TituloComissaoRepository) *TituloUseCase {
	return &TituloUseCase{tituloRepo: tituloRepo}
}

// Listar devolve todos os títulos com os dados da nota e duplicata de origem.
func (uc *TituloUseCase) Listar() ([]dto.TituloDetalhadoDTO, error) {
	resultados, err := uc.tituloRepo.ListDetalhados()
	if err != nil {
		return nil, err
	}
	return detalhadosParaDTO(resultados), nil
}

// GetByID devolve um título detalhado.
func (uc *TituloUseCase) GetByID(id string) (*dto.TituloDetalhadoDTO, error) {
	resultado, err := uc.tituloRepo.GetDetalhadoByID(id)
	if err != nil {
		return nil, err
	}
	if resultado == nil {
		return nil, domain.ErrNotFound
	}
	d := detalhadoParaDTO(resultado)
	return &d, nil
}

// Atualizar altera valor de comissão e/ou status de pagamento de um título.
// O valor de comissão é imutável a partir do momento em que o título entra
// em um pedido; tentar editá-lo depois disso devolve ErrConflict.
func (uc *TituloUseCase) Atualizar(id string, in dto.AtualizarTituloRequest) error {
	if in.ValorComissao == nil && in.StatusPagamento == "" {
		return fmt.Errorf("%w: nenhum campo para atualizar", domain.ErrInvalidInput)
	}
	titulo, err := uc.tituloRepo.GetByID(id)
	if err != nil {
		return err
	}
	if titulo == nil {
		return domain.ErrNotFound
	}
	if titulo.PedidoID != "" && in.ValorComissao != nil {
		return fmt.Errorf("%w: valor de comissão não pode ser alterado após entrar em pedido", domain.ErrConflict)
	}
	return uc.tituloRepo.Atualizar(id, in.ValorComissao, in.StatusPagamento)
}

func detalhadosParaDTO(resultados []*repository.TituloDetalhadoResult) []dto.TituloDetalhadoDTO {
	out := make([]dto.TituloDetalhadoDTO, 0, len(resultados))
	for _, r := range resultados {
		out = append(out, detalhadoParaDTO(r))
	}
	return out
}

func detalhadoParaDTO(r *repository.TituloDetalhadoResult) dto.TituloDetalhadoDTO {
	return dto.TituloDetalhadoDTO{
		ID:                  r.ID,
		ValorComissao:       r.ValorComissao,
		PercentualComissao:  r.PercentualComissao,
		Status:              r.Status,
		StatusPagamento:     r.StatusPagamento,
		PedidoID:            r.PedidoID,
		DataCriacao:         r.DataCriacao,
		NumeroNota:          r.NumeroNota,
		EmitenteNome:        r.EmitenteNome,
		ClienteNome:         r.ClienteNome,
		NumeroDuplicata:     r.NumeroDuplicata,
		ValorDuplicata:      r.ValorDuplicata,
		Vencimento:          r.Vencimento,
		PrevisaoRecebimento: r.PrevisaoRecebimento,
	}
}
