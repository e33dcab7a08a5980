package nfe_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
)

func TestSintetizarDuplicataPadrao_NotaSemParcelas(t *testing.T) {
	referencia := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	dados := &nfe.DadosNota{ValorTotal: decimal.NewFromFloat(1500.00)}

	nfe.SintetizarDuplicataPadrao(dados, referencia)

	require.Len(t, dados.Duplicatas, 1, "nota com valor e sem parcelas ganha a parcela única")
	assert.Equal(t, "001", dados.Duplicatas[0].Numero)
	assert.Equal(t, "2024-02-14", dados.Duplicatas[0].Vencimento, "vencimento padrão é referência + 30 dias corridos")
	assert.True(t, dados.Duplicatas[0].Valor.Equal(dados.ValorTotal), "a parcela única carrega o valor total da nota")
}

func TestSintetizarDuplicataPadrao_NaoSobrescreveParcelasExistentes(t *testing.T) {
	referencia := time.Now()
	dados := &nfe.DadosNota{
		ValorTotal: decimal.NewFromInt(1000),
		Duplicatas: []nfe.DuplicataExtraida{
			{Numero: "001", Vencimento: "2024-02-15", Valor: decimal.NewFromInt(500)},
			{Numero: "002", Vencimento: "2024-03-15", Valor: decimal.NewFromInt(500)},
		},
	}

	nfe.SintetizarDuplicataPadrao(dados, referencia)

	assert.Len(t, dados.Duplicatas, 2, "parcelas extraídas do documento não podem ser alteradas")
	assert.Equal(t, "2024-02-15", dados.Duplicatas[0].Vencimento)
}

func TestSintetizarDuplicataPadrao_ValorZeroNaoGeraParcela(t *testing.T) {
	dados := &nfe.DadosNota{ValorTotal: decimal.Zero}
	nfe.SintetizarDuplicataPadrao(dados, time.Now())
	assert.Empty(t, dados.Duplicatas, "nota de valor zero é válida e segue sem parcelas")
}
