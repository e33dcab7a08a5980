package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
)

// PedidoHandler atende as rotas de pedidos de comissão.
type PedidoHandler struct {
	agruparUC *comissao.AgruparTitulosUseCase
	pedidoUC  *comissao.PedidoUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(agruparUC *comissao.AgruparTitulosUseCase, pedidoUC *comissao.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{agruparUC: agruparUC, pedidoUC: pedidoUC}
}

// Create agrupa títulos pendentes em um novo pedido.
// POST /api/pedidos
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.agruparUC.CriarPedido(c.Context(), in.TitulosIDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrAlreadyGrouped) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_GROUPED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista os pedidos, mais recentes primeiro.
// GET /api/pedidos
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	pedidos, err := h.pedidoUC.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pedidos)
}

// GetByID devolve o pedido com seus títulos.
// GET /api/pedidos/:id
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pedido, err := h.pedidoUC.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pedido)
}

// GetPDF devolve o espelho do pedido em PDF.
// GET /api/pedidos/:id/pdf
func (h *PedidoHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, err := h.pedidoUC.GerarPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
