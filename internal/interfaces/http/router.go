package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/relatorio"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ImportarNota     *importacao.ImportarNotaUseCase
	NotaUC           *importacao.NotaUseCase
	TituloUC         *comissao.TituloUseCase
	AgruparTitulos   *comissao.AgruparTitulosUseCase
	PedidoUC         *comissao.PedidoUseCase
	DashboardUC      *relatorio.DashboardUseCase
	PercentualPadrao decimal.Decimal
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Importação de documentos fiscais
	importacaoHandler := NewImportacaoHandler(deps.ImportarNota, deps.PercentualPadrao)
	api.Post("/importar-pdf", importacaoHandler.ImportarPDF)
	api.Post("/importar-xml", importacaoHandler.ImportarXML)
	api.Post("/preview-pdf", importacaoHandler.PreviewPDF)

	// Catálogo de notas importadas
	notas := api.Group("/notas-fiscais")
	notaHandler := NewNotaHandler(deps.NotaUC)
	notas.Get("/", notaHandler.List)
	notas.Delete("/:id", notaHandler.Delete)

	// Títulos de comissão
	titulos := api.Group("/titulos-comissao")
	tituloHandler := NewTituloHandler(deps.TituloUC)
	titulos.Get("/", tituloHandler.List)
	titulos.Get("/:id", tituloHandler.GetByID)
	titulos.Put("/:id", tituloHandler.Update)

	// Pedidos de comissão
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.AgruparTitulos, deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Get("/:id/pdf", pedidoHandler.GetPDF)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Resumo)
}
