// Package pdf gera o espelho do pedido de comissão em PDF, o relatório
// entregue ao representante no acerto.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pedido de Comissão  │  Nº pedido + Data            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Qtde títulos / Status / Valor total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: NF | Dup | Cliente | Vencim. | Valor Dup | Comissão │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: soma das comissões do pedido                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ comissao.PedidoPDFGenerator = (*MarotoPedidoGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPedidoGenerator implementa comissao.PedidoPDFGenerator usando Maroto v2.
type MarotoPedidoGenerator struct{}

// NewMarotoPedidoGenerator constrói o gerador.
func NewMarotoPedidoGenerator() *MarotoPedidoGenerator { return &MarotoPedidoGenerator{} }

// GerarPedidoPDF gera o espelho do pedido e devolve seus bytes.
func (g *MarotoPedidoGenerator) GerarPedidoPDF(
	_ context.Context,
	pedido *entity.Pedido,
	titulos []dto.TituloDetalhadoDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido de Comissão", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(resumoRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	// Tabela de títulos
	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaTituloRows(titulos) {
		m.AddRows(r)
	}

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// cabecalhoRow: título do documento (esq) e identificação do pedido (dir).
func cabecalhoRow(pedido *entity.Pedido) core.Row {
	data := pedido.DataCriacao.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("PEDIDO DE COMISSÃO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Relatório de acerto de títulos", props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("Nº "+pedido.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 3,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: corCinza,
			}),
		),
	)
}

// resumoRow: quantidade de títulos, status e valor consolidado.
func resumoRow(pedido *entity.Pedido) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMO DO PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(fmt.Sprintf("Títulos: %d   |   Status: %s   |   Valor total: R$ %s",
				pedido.QuantidadeTitulos,
				pedido.Status,
				pedido.ValorTotal.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: corCinza}),
		),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela de títulos.
func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("NF", 1, align.Center),
		h("Dup.", 1, align.Center),
		h("Cliente", 4, align.Left),
		h("Vencimento", 2, align.Center),
		h("Valor Dup.", 2, align.Right),
		h("Comissão", 2, align.Right),
	)
}

// tabelaTituloRows: uma linha por título do pedido.
func tabelaTituloRows(titulos []dto.TituloDetalhadoDTO) []core.Row {
	result := make([]core.Row, 0, len(titulos))
	for _, t := range titulos {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				t.NumeroNota,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				t.NumeroDuplicata,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				t.ClienteNome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				dataBR(t.Vencimento),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+t.ValorDuplicata.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+t.ValorComissao.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: soma das comissões alinhada à direita.
func totalRow(pedido *entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DO PEDIDO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("R$ "+pedido.ValorTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// dataBR converte YYYY-MM-DD para DD/MM/YYYY sem passar por time.Parse.
func dataBR(iso string) string {
	if len(iso) != 10 {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7] + "/" + iso[0:4]
}
