package extracao

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
)

// PDFExtractor extrai dados de DANFEs com camada de texto (melhor esforço).
// PDFs somente-imagem ficam fora do escopo: sem texto extraível, a extração
// falha com ErrExtraction. A interpretação do texto fica em nfe.ParseTexto.
type PDFExtractor struct{}

// NewPDFExtractor constrói o extrator.
func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// Extrair lê a camada de texto do PDF e resolve os campos da nota.
// Campos ausentes não são erro; apenas bytes indecodificáveis são.
func (e *PDFExtractor) Extrair(conteudo []byte) (*nfe.DadosNota, error) {
	texto, err := extrairTexto(conteudo)
	if err != nil {
		return nil, err
	}
	return nfe.ParseTexto(texto, time.Now()), nil
}

// extrairTexto concatena o texto de todas as páginas, linha a linha.
// Conteúdo que não é um PDF (dump de texto puro enviado direto) é aceito
// após passar pela decodificação UTF-8/Latin-1.
func extrairTexto(conteudo []byte) (string, error) {
	leitor, err := pdf.NewReader(bytes.NewReader(conteudo), int64(len(conteudo)))
	if err != nil {
		return decodificarTexto(conteudo)
	}

	var sb strings.Builder
	for num := 1; num <= leitor.NumPage(); num++ {
		pagina := leitor.Page(num)
		if pagina.V.IsNull() {
			continue
		}
		linhas, err := pagina.GetTextByRow()
		if err != nil {
			continue
		}
		for _, linha := range linhas {
			for _, palavra := range linha.Content {
				sb.WriteString(palavra.S)
				sb.WriteByte(' ')
			}
			sb.WriteByte('\n')
		}
	}

	texto := sb.String()
	if strings.TrimSpace(texto) == "" {
		return "", fmt.Errorf("%w: PDF sem camada de texto extraível", domain.ErrExtraction)
	}
	return texto, nil
}
