package relatorio

import (
	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// DashboardUseCase agrega os totais do painel (notas, títulos, pedidos).
type DashboardUseCase struct {
	repo repository.RelatorioRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.RelatorioRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumo devolve contagens e somas das três visões.
func (uc *DashboardUseCase) Resumo() (*dto.DashboardResponse, error) {
	notas, err := uc.repo.TotaisNotasFiscais()
	if err != nil {
		return nil, err
	}
	titulos, err := uc.repo.TotaisTitulosComissao()
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.repo.TotaisPedidos()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		NotasFiscais:    dto.TotaisDTO{Total: notas.Total, Valor: notas.Valor},
		TitulosComissao: dto.TotaisDTO{Total: titulos.Total, Valor: titulos.Valor, Pendentes: titulos.Pendentes},
		Pedidos:         dto.TotaisDTO{Total: pedidos.Total, Valor: pedidos.Valor},
	}, nil
}
