package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
)

// ImportacaoHandler atende as rotas de importação e preview de documentos.
type ImportacaoHandler struct {
	uc               *importacao.ImportarNotaUseCase
	percentualPadrao decimal.Decimal
}

// NewImportacaoHandler constrói o handler. percentualPadrao é usado quando a
// requisição não informa o campo percentual.
func NewImportacaoHandler(uc *importacao.ImportarNotaUseCase, percentualPadrao decimal.Decimal) *ImportacaoHandler {
	return &ImportacaoHandler{uc: uc, percentualPadrao: percentualPadrao}
}

// ImportarPDF importa um DANFE em PDF e gera os títulos de comissão.
// POST /api/importar-pdf (multipart: arquivo + percentual)
func (h *ImportacaoHandler) ImportarPDF(c *fiber.Ctx) error {
	return h.importar(c, importacao.TipoPDF)
}

// ImportarXML importa o XML da NF-e e gera os títulos de comissão.
// POST /api/importar-xml (multipart: arquivo + percentual)
func (h *ImportacaoHandler) ImportarXML(c *fiber.Ctx) error {
	return h.importar(c, importacao.TipoXML)
}

func (h *ImportacaoHandler) importar(c *fiber.Ctx, tipo string) error {
	conteudo, err := lerArquivo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "arquivo ausente ou ilegível"})
	}
	percentual := h.percentualPadrao
	if raw := c.FormValue("percentual"); raw != "" {
		percentual, err = decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "percentual de comissão inválido"})
		}
	}

	resp, err := h.uc.Importar(c.Context(), tipo, conteudo, percentual)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nota fiscal já importada"})
		}
		if errors.Is(err, domain.ErrExtraction) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EXTRACTION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PreviewPDF extrai os dados do PDF sem gravar nada.
// POST /api/preview-pdf (multipart: arquivo)
func (h *ImportacaoHandler) PreviewPDF(c *fiber.Ctx) error {
	conteudo, err := lerArquivo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "arquivo ausente ou ilegível"})
	}
	dados, err := h.uc.Preview(importacao.TipoPDF, conteudo)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrExtraction) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EXTRACTION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dados)
}

// lerArquivo lê o campo multipart "arquivo" inteiro em memória.
func lerArquivo(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
