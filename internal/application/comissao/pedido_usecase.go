package comissao

import (
	"context"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// PedidoUseCase consulta pedidos e gera o espelho em PDF.
type PedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	tituloRepo   repository.TituloComissaoRepository
	pdfGenerator PedidoPDFGenerator
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(
	pedidoRepo repository.PedidoRepository,
	tituloRepo repository.TituloComissaoRepository,
	pdfGenerator PedidoPDFGenerator,
) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, tituloRepo: tituloRepo, pdfGenerator: pdfGenerator}
}

// Listar devolve todos os pedidos, mais recentes primeiro.
func (uc *PedidoUseCase) Listar() ([]dto.PedidoDTO, error) {
	pedidos, err := uc.pedidoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoDTO, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, pedidoParaDTO(p))
	}
	return out, nil
}

// GetByID devolve o pedido com seus títulos.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoDetalhadoResponse, error) {
	pedido, titulos, err := uc.carregar(id)
	if err != nil {
		return nil, err
	}
	return &dto.PedidoDetalhadoResponse{
		Pedido:  pedidoParaDTO(pedido),
		Titulos: titulos,
	}, nil
}

// GerarPDF devolve os bytes do espelho do pedido.
func (uc *PedidoUseCase) GerarPDF(ctx context.Context, id string) ([]byte, error) {
	pedido, titulos, err := uc.carregar(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GerarPedidoPDF(ctx, pedido, titulos)
}

func (uc *PedidoUseCase) carregar(id string) (*entity.Pedido, []dto.TituloDetalhadoDTO, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if pedido == nil {
		return nil, nil, domain.ErrNotFound
	}
	resultados, err := uc.tituloRepo.ListByPedidoID(id)
	if err != nil {
		return nil, nil, err
	}
	return pedido, detalhadosParaDTO(resultados), nil
}

func pedidoParaDTO(p *entity.Pedido) dto.PedidoDTO {
	return dto.PedidoDTO{
		ID:                p.ID,
		ValorTotal:        p.ValorTotal,
		QuantidadeTitulos: p.QuantidadeTitulos,
		Status:            p.Status,
		DataCriacao:       p.DataCriacao,
	}
}
