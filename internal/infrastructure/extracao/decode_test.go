package extracao

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/internal/domain"
)

func TestDecodificarTexto_UTF8(t *testing.T) {
	texto, err := decodificarTexto([]byte("NOTA FISCAL ELETRÔNICA"))
	require.NoError(t, err)
	assert.Equal(t, "NOTA FISCAL ELETRÔNICA", texto)
}

func TestDecodificarTexto_Latin1(t *testing.T) {
	// "EMISSÃO" em ISO-8859-1: Ã é o byte 0xC3 sozinho, inválido como UTF-8.
	entrada := []byte{'E', 'M', 'I', 'S', 'S', 0xC3, 'O'}
	texto, err := decodificarTexto(entrada)
	require.NoError(t, err)
	assert.Equal(t, "EMISSÃO", texto)
}

func TestDecodificarTexto_BinarioFalha(t *testing.T) {
	binario := make([]byte, 64)
	for i := range binario {
		binario[i] = byte(i % 8) // bytes de controle, nada imprimível
	}
	_, err := decodificarTexto(binario)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtraction))
}

func TestDecodificarTexto_VazioFalha(t *testing.T) {
	_, err := decodificarTexto(nil)
	assert.Error(t, err)
}
