package nfe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética de prazos: dias corridos de calendário, atravessando viradas
// de mês e de ano sem ajuste de dia útil.
// ──────────────────────────────────────────────────────────────────────────────

func TestPrevisaoRecebimento_CincoDiasCorridos(t *testing.T) {
	previsao, err := nfe.PrevisaoRecebimento("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", previsao)
}

func TestPrevisaoRecebimento_ViradaDeMes(t *testing.T) {
	previsao, err := nfe.PrevisaoRecebimento("2024-01-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-03", previsao, "29/01 + 5 dias corridos atravessa para fevereiro")
}

func TestPrevisaoRecebimento_ViradaDeAno(t *testing.T) {
	previsao, err := nfe.PrevisaoRecebimento("2024-12-30")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-04", previsao)
}

func TestPrevisaoRecebimento_VencimentoInvalido(t *testing.T) {
	_, err := nfe.PrevisaoRecebimento("30/01/2024")
	assert.Error(t, err, "vencimento fora do formato ISO deve falhar")
}

func TestVencimentoPadrao_TrintaDiasCorridos(t *testing.T) {
	referencia := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-14", nfe.VencimentoPadrao(referencia))
}

func TestVencimentoPadrao_ViradaDeAno(t *testing.T) {
	referencia := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-14", nfe.VencimentoPadrao(referencia))
}
