package router

import (
	"github.com/oliveirafjdo-web/MetriFy/internal/config"
	"github.com/oliveirafjdo-web/MetriFy/internal/handler"
	"github.com/oliveirafjdo-web/MetriFy/internal/middleware"
	"github.com/oliveirafjdo-web/MetriFy/internal/repository"
	"github.com/oliveirafjdo-web/MetriFy/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	produtoRepo := repository.NewProdutoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	movimentoRepo := repository.NewMovimentoRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	produtoSvc := service.NewProdutoService(produtoRepo, movimentoRepo)
	estoqueSvc := service.NewEstoqueService(produtoRepo, vendaRepo, movimentoRepo)
	consolidacaoSvc := service.NewConsolidacaoService(vendaRepo, produtoRepo, settingsRepo)
	importacaoSvc := service.NewImportacaoService(estoqueSvc)
	configuracoesSvc := service.NewConfiguracoesService(settingsRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	produtosH := handler.NewProdutosHandler(produtoSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	relatorioH := handler.NewRelatorioHandler(consolidacaoSvc)
	dashboardH := handler.NewDashboardHandler(consolidacaoSvc)
	importacaoH := handler.NewImportacaoHandler(importacaoSvc)
	configuracoesH := handler.NewConfiguracoesHandler(configuracoesSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard", dashboardH.Resumo)

		prods := v1.Group("/produtos")
		{
			prods.GET("", produtosH.Listar)
			prods.POST("", produtosH.Criar)
			prods.GET("/:id", produtosH.ObterPorID)
			prods.PUT("/:id", produtosH.Atualizar)
			prods.DELETE("/:id", produtosH.Excluir)
		}

		estoque := v1.Group("/estoque")
		{
			estoque.GET("/movimentos", estoqueH.ListarMovimentos)
			estoque.POST("/movimentos", estoqueH.RegistrarMovimento)
		}

		v1.GET("/configuracoes", configuracoesH.Obter)
		v1.PUT("/configuracoes", configuracoesH.Atualizar)

		v1.POST("/importacao", importacaoH.Importar)
		v1.GET("/importacao/template", importacaoH.Template)

		v1.GET("/relatorio", relatorioH.Obter)
		v1.GET("/relatorio/exportar", relatorioH.ExportarXLSX)
		v1.GET("/relatorio/exportar/pdf", relatorioH.ExportarPDF)
	}

	return r
}
