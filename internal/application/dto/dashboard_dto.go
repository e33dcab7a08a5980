package dto

import "github.com/shopspring/decimal"

// TotaisDTO contagem e soma de uma visão do painel.
type TotaisDTO struct {
	Total     int             `json:"total"`
	Valor     decimal.Decimal `json:"valor"`
	Pendentes int             `json:"pendentes,omitempty"`
}

// DashboardResponse resposta de GET /api/dashboard.
type DashboardResponse struct {
	NotasFiscais    TotaisDTO `json:"notas_fiscais"`
	TitulosComissao TotaisDTO `json:"titulos_comissao"`
	Pedidos         TotaisDTO `json:"pedidos"`
}
