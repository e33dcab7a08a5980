package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/relatorio"
	"github.com/gestorfiscal/nf-comissoes/internal/infrastructure/extracao"
	infrapdf "github.com/gestorfiscal/nf-comissoes/internal/infrastructure/pdf"
	"github.com/gestorfiscal/nf-comissoes/internal/infrastructure/postgres"
	httpRouter "github.com/gestorfiscal/nf-comissoes/internal/interfaces/http"
	"github.com/gestorfiscal/nf-comissoes/pkg/config"
	"github.com/gestorfiscal/nf-comissoes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Valores monetários saem como número JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("criação do schema")
	}

	notaRepo := postgres.NewNotaFiscalRepository(pool)
	tituloRepo := postgres.NewTituloComissaoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfExtractor := extracao.NewPDFExtractor()
	xmlExtractor := extracao.NewXMLExtractor()

	importarNotaUC := importacao.NewImportarNotaUseCase(txRunner, notaRepo, pdfExtractor, xmlExtractor)
	notaUC := importacao.NewNotaUseCase(notaRepo)
	tituloUC := comissao.NewTituloUseCase(tituloRepo)
	agruparUC := comissao.NewAgruparTitulosUseCase(txRunner)

	pedidoPDFGenerator := infrapdf.NewMarotoPedidoGenerator()
	pedidoUC := comissao.NewPedidoUseCase(pedidoRepo, tituloRepo, pedidoPDFGenerator)
	dashboardUC := relatorio.NewDashboardUseCase(relatorioRepo)

	percentualPadrao, err := decimal.NewFromString(cfg.Comissao.PercentualPadrao)
	if err != nil {
		log.Fatal().Err(err).Msg("percentual de comissão padrão inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // DANFEs escaneados chegam a alguns MB
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ImportarNota:     importarNotaUC,
		NotaUC:           notaUC,
		TituloUC:         tituloUC,
		AgruparTitulos:   agruparUC,
		PedidoUC:         pedidoUC,
		DashboardUC:      dashboardUC,
		PercentualPadrao: percentualPadrao,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
