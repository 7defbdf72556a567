package service

import (
	"context"
	"sort"

	"github.com/oliveirafjdo-web/MetriFy/internal/apierror"
	"github.com/oliveirafjdo-web/MetriFy/internal/dto"
	"github.com/oliveirafjdo-web/MetriFy/internal/model"
	"github.com/oliveirafjdo-web/MetriFy/internal/repository"

	"github.com/shopspring/decimal"
)

// ConsolidacaoService derives the per-SKU profitability report. It holds no
// state: every invocation re-reads vendas, unit costs, and the settings row,
// so the report is always a function of current persisted data.
type ConsolidacaoService interface {
	Relatorio(ctx context.Context) (*dto.RelatorioResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type consolidacaoService struct {
	vendaRepo    repository.VendaRepository
	produtoRepo  repository.ProdutoRepository
	settingsRepo repository.SettingsRepository
}

func NewConsolidacaoService(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	settingsRepo repository.SettingsRepository,
) ConsolidacaoService {
	return &consolidacaoService{
		vendaRepo:    vendaRepo,
		produtoRepo:  produtoRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *consolidacaoService) Relatorio(ctx context.Context) (*dto.RelatorioResponse, error) {
	vendas, err := s.vendaRepo.ListAll(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	custos, err := s.produtoRepo.CustosPorSKU(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return Consolidar(vendas, custos, cfg), nil
}

func (s *consolidacaoService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalProdutos, estoqueTotal, err := s.produtoRepo.CountAndStock(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	receita, comissao, err := s.vendaRepo.Totais(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return &dto.DashboardResponse{
		TotalProdutos: totalProdutos,
		EstoqueTotal:  estoqueTotal,
		ReceitaTotal:  receita,
		ComissaoTotal: comissao,
	}, nil
}

var cem = decimal.NewFromInt(100)

// Consolidar aggregates raw sale rows into one profitability line per
// (SKU, titulo) group and applies the configured deductions:
//
//	imposto     = receita × impostoPct/100
//	baseLiquida = max(receita − comissao, 0)
//	despesa     = baseLiquida × despesaPct/100
//	custoTotal  = custoUnitario × qtd   (0 for SKUs without a product)
//	lucro       = receita − (comissao + imposto + despesa + custoTotal)
//
// Lines come back sorted by lucro descending; ties break on SKU ascending
// then titulo ascending, so the order is stable for equal profits. Totais
// are elementwise sums over the produced lines.
func Consolidar(vendas []model.Venda, custos map[string]decimal.Decimal, cfg *model.Settings) *dto.RelatorioResponse {
	type chave struct{ sku, titulo string }
	type acumulado struct {
		qtd      float64
		receita  decimal.Decimal
		comissao decimal.Decimal
		somaPM   decimal.Decimal
		linhas   int64
	}

	grupos := make(map[chave]*acumulado)
	ordem := make([]chave, 0)
	for i := range vendas {
		v := &vendas[i]
		k := chave{v.SKU, v.Titulo}
		g, ok := grupos[k]
		if !ok {
			g = &acumulado{}
			grupos[k] = g
			ordem = append(ordem, k)
		}
		g.qtd += v.Quantidade
		g.receita = g.receita.Add(v.Receita)
		g.comissao = g.comissao.Add(v.Comissao)
		g.somaPM = g.somaPM.Add(v.PrecoMedio)
		g.linhas++
	}

	linhas := make([]dto.LinhaRelatorio, 0, len(grupos))
	var totais dto.TotaisRelatorio
	for _, k := range ordem {
		g := grupos[k]

		custoUnit := custos[k.sku] // zero value when the product is gone
		qtdDec := decimal.NewFromFloat(g.qtd)
		custoTotal := custoUnit.Mul(qtdDec)

		imposto := g.receita.Mul(cfg.ImpostoPct).Div(cem)
		baseLiquida := g.receita.Sub(g.comissao)
		if baseLiquida.IsNegative() {
			baseLiquida = decimal.Zero
		}
		despesa := baseLiquida.Mul(cfg.DespesaPct).Div(cem)

		lucro := g.receita.Sub(g.comissao.Add(imposto).Add(despesa).Add(custoTotal))

		precoMedio := decimal.Zero
		if g.linhas > 0 {
			precoMedio = g.somaPM.Div(decimal.NewFromInt(g.linhas))
		}

		linhas = append(linhas, dto.LinhaRelatorio{
			SKU:           k.sku,
			Titulo:        k.titulo,
			Quantidade:    g.qtd,
			Receita:       g.receita,
			Comissao:      g.comissao,
			Imposto:       imposto,
			Despesa:       despesa,
			CustoUnitario: custoUnit,
			CustoTotal:    custoTotal,
			Lucro:         lucro,
			PrecoMedio:    precoMedio,
		})

		totais.Quantidade += g.qtd
		totais.Receita = totais.Receita.Add(g.receita)
		totais.Comissao = totais.Comissao.Add(g.comissao)
		totais.Imposto = totais.Imposto.Add(imposto)
		totais.Despesa = totais.Despesa.Add(despesa)
		totais.CustoTotal = totais.CustoTotal.Add(custoTotal)
		totais.Lucro = totais.Lucro.Add(lucro)
	}

	sort.SliceStable(linhas, func(i, j int) bool {
		if !linhas[i].Lucro.Equal(linhas[j].Lucro) {
			return linhas[i].Lucro.GreaterThan(linhas[j].Lucro)
		}
		if linhas[i].SKU != linhas[j].SKU {
			return linhas[i].SKU < linhas[j].SKU
		}
		return linhas[i].Titulo < linhas[j].Titulo
	})

	return &dto.RelatorioResponse{
		Linhas:     linhas,
		Totais:     totais,
		ImpostoPct: cfg.ImpostoPct,
		DespesaPct: cfg.DespesaPct,
	}
}
