// Package extracao implementa os extratores de documentos fiscais:
// texto livre de DANFEs em PDF (melhor esforço) e XML de NF-e (mapeamento
// direto). Ambos produzem o registro canônico nfe.DadosNota.
package extracao

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gestorfiscal/nf-comissoes/internal/domain"
)

// decodificarTexto converte os bytes de um dump de texto para string UTF-8.
// Emissores antigos ainda geram arquivos em Latin-1/Windows-1252; bytes que
// não formam UTF-8 válido passam pelo decoder ISO-8859-1. Conteúdo que mesmo
// assim não é legível (binário) resulta em ErrExtraction.
func decodificarTexto(conteudo []byte) (string, error) {
	if len(conteudo) == 0 {
		return "", fmt.Errorf("%w: documento vazio", domain.ErrExtraction)
	}
	texto := string(conteudo)
	if !utf8.Valid(conteudo) {
		convertido, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), conteudo)
		if err != nil {
			return "", fmt.Errorf("%w: bytes indecodificáveis: %v", domain.ErrExtraction, err)
		}
		texto = string(convertido)
	}
	if !textoLegivel(texto) {
		return "", fmt.Errorf("%w: conteúdo não é texto legível", domain.ErrExtraction)
	}
	return texto, nil
}

// textoLegivel rejeita conteúdo majoritariamente binário: exige que ao menos
// 70% das runas sejam imprimíveis ou espaço.
func textoLegivel(texto string) bool {
	if strings.TrimSpace(texto) == "" {
		return false
	}
	var total, legiveis int
	for _, r := range texto {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			legiveis++
		}
	}
	return legiveis*10 >= total*7
}

// leitorCharset resolve encodings declarados no prólogo XML além de UTF-8.
func leitorCharset(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8":
		return input, nil
	case "iso-8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("extracao: charset não suportado: %s", charset)
}
