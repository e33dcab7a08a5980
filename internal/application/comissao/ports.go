package comissao

import (
	"context"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// PedidoTxRunner executa fn dentro de uma transação com os repositórios do
// agrupamento. É nessa transação que o lock dos títulos (FOR UPDATE) vive.
type PedidoTxRunner interface {
	RunPedido(ctx context.Context, fn func(
		tituloRepo repository.TituloComissaoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}

// PedidoPDFGenerator gera o espelho do pedido (relatório de acerto) em PDF.
type PedidoPDFGenerator interface {
	GerarPedidoPDF(ctx context.Context, pedido *entity.Pedido, titulos []dto.TituloDetalhadoDTO) ([]byte, error)
}
