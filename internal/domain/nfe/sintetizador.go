package nfe

import (
	"time"

	"github.com/shopspring/decimal"
)

// SintetizarDuplicataPadrao garante que toda nota com valor tenha ao menos
// uma parcela: quando o extrator não encontrou duplicata alguma e o valor
// total é positivo, cria a parcela única "001" com vencimento em 30 dias
// corridos a partir da referência (momento da importação).
//
// Nota com valor total zero segue sem parcelas: é válida e não gera títulos
// de comissão. Aplicado uma única vez pelo coordenador de importação, após
// qualquer um dos extratores.
func SintetizarDuplicataPadrao(dados *DadosNota, referencia time.Time) {
	if len(dados.Duplicatas) > 0 {
		return
	}
	if !dados.ValorTotal.GreaterThan(decimal.Zero) {
		return
	}
	dados.Duplicatas = append(dados.Duplicatas, DuplicataExtraida{
		Numero:     "001",
		Vencimento: VencimentoPadrao(referencia),
		Valor:      dados.ValorTotal,
	})
}
