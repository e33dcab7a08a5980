package comissao

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// AgruparTitulosUseCase cria um pedido a partir de um conjunto de títulos
// pendentes. É o único compare-and-swap multilinha do sistema: a sequência
// carregar-com-lock → verificar → criar pedido → marcar títulos acontece
// inteira dentro de uma transação, e o SELECT ... FOR UPDATE serializa
// requisições concorrentes sobre conjuntos sobrepostos: exatamente uma
// vence, a outra recebe ErrAlreadyGrouped.
type AgruparTitulosUseCase struct {
	txRunner PedidoTxRunner
}

// NewAgruparTitulosUseCase constrói o caso de uso.
func NewAgruparTitulosUseCase(txRunner PedidoTxRunner) *AgruparTitulosUseCase {
	return &AgruparTitulosUseCase{txRunner: txRunner}
}

// CriarPedido agrupa os títulos indicados em um novo pedido.
// Pré-condições verificadas como unidade atômica: todos os ids existem e
// nenhum já pertence a um pedido. Qualquer violação aborta sem mutação
// alguma; nunca há agrupamento parcial.
func (uc *AgruparTitulosUseCase) CriarPedido(ctx context.Context, titulosIDs []string) (*dto.PedidoCriadoResponse, error) {
	if len(titulosIDs) == 0 {
		return nil, fmt.Errorf("%w: lista de títulos vazia", domain.ErrInvalidInput)
	}

	var resp *dto.PedidoCriadoResponse
	err := uc.txRunner.RunPedido(ctx, func(
		tituloRepo repository.TituloComissaoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		titulos, err := tituloRepo.GetForUpdateByIDs(titulosIDs)
		if err != nil {
			return err
		}
		if len(titulos) != len(titulosIDs) {
			return fmt.Errorf("%w: um ou mais títulos não existem", domain.ErrNotFound)
		}
		valorTotal := decimal.Zero
		for _, t := range titulos {
			if t.PedidoID != "" {
				return fmt.Errorf("%w: título %s já está no pedido %s", domain.ErrAlreadyGrouped, t.ID, t.PedidoID)
			}
			valorTotal = valorTotal.Add(t.ValorComissao)
		}

		pedido := &entity.Pedido{
			ValorTotal:        valorTotal,
			QuantidadeTitulos: len(titulos),
			Status:            entity.PedidoPendente,
		}
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		if err := tituloRepo.MarcarAgrupados(titulosIDs, pedido.ID); err != nil {
			return err
		}

		resp = &dto.PedidoCriadoResponse{
			PedidoID:          pedido.ID,
			ValorTotal:        valorTotal,
			QuantidadeTitulos: len(titulos),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
