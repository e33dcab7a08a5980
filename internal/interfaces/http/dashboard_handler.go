package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/application/relatorio"
)

// DashboardHandler atende o painel de totais.
type DashboardHandler struct {
	uc *relatorio.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *relatorio.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo devolve contagens e somas de notas, títulos e pedidos.
// GET /api/dashboard
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	resumo, err := h.uc.Resumo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resumo)
}
