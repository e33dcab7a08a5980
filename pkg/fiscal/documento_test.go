package fiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/pkg/fiscal"
)

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345678000195", fiscal.SomenteDigitos("12.345.678/0001-95"))
	assert.Equal(t, "52998224725", fiscal.SomenteDigitos("529.982.247-25"))
	assert.Equal(t, "", fiscal.SomenteDigitos("abc-/."))
}

// ── CNPJ ──────────────────────────────────────────────────────────────────────

func TestValidarCNPJ_Valido(t *testing.T) {
	assert.NoError(t, fiscal.ValidarCNPJ("11.222.333/0001-81"))
	assert.NoError(t, fiscal.ValidarCNPJ("11222333000181"), "deve aceitar também sem pontuação")
}

func TestValidarCNPJ_DigitoVerificadorErrado(t *testing.T) {
	assert.Error(t, fiscal.ValidarCNPJ("11.222.333/0001-80"), "último dígito adulterado deve falhar")
	assert.Error(t, fiscal.ValidarCNPJ("11.222.333/0001-91"), "primeiro DV adulterado deve falhar")
}

func TestValidarCNPJ_TamanhoErrado(t *testing.T) {
	assert.Error(t, fiscal.ValidarCNPJ("1122233300018"))
	assert.Error(t, fiscal.ValidarCNPJ(""))
}

// ── CPF ───────────────────────────────────────────────────────────────────────

func TestValidarCPF_Valido(t *testing.T) {
	assert.NoError(t, fiscal.ValidarCPF("529.982.247-25"))
	assert.NoError(t, fiscal.ValidarCPF("52998224725"))
}

func TestValidarCPF_DigitoVerificadorErrado(t *testing.T) {
	assert.Error(t, fiscal.ValidarCPF("529.982.247-26"))
}

// ── Dispatch por tamanho ──────────────────────────────────────────────────────

func TestValidarDocumento(t *testing.T) {
	assert.NoError(t, fiscal.ValidarDocumento("11.222.333/0001-81"), "14 dígitos valida como CNPJ")
	assert.NoError(t, fiscal.ValidarDocumento("529.982.247-25"), "11 dígitos valida como CPF")
	assert.Error(t, fiscal.ValidarDocumento("12345"), "tamanho fora de 11/14 é rejeitado")
}

// ── Chave de acesso ───────────────────────────────────────────────────────────

func TestNormalizarChave(t *testing.T) {
	chave, err := fiscal.NormalizarChave("3524 0114 2001 6600 0187 5500 1000 0001 2345 6789 0123")
	require.NoError(t, err)
	assert.Len(t, chave, fiscal.TamanhoChaveAcesso)
	assert.Equal(t, "35240114200166000187550010000001234567890123", chave)
}

func TestNormalizarChave_TamanhoErrado(t *testing.T) {
	_, err := fiscal.NormalizarChave("1234")
	assert.Error(t, err)
}
