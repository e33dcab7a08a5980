package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
)

// NotaHandler atende as rotas do catálogo de notas fiscais.
type NotaHandler struct {
	uc *importacao.NotaUseCase
}

// NewNotaHandler constrói o handler.
func NewNotaHandler(uc *importacao.NotaUseCase) *NotaHandler {
	return &NotaHandler{uc: uc}
}

// List lista as notas importadas, mais recentes primeiro.
// GET /api/notas-fiscais
func (h *NotaHandler) List(c *fiber.Ctx) error {
	notas, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(notas)
}

// Delete remove a nota com suas duplicatas e títulos.
// DELETE /api/notas-fiscais/:id
func (h *NotaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Excluir(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota fiscal não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
