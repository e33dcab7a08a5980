package importacao

import (
	"context"

	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// Tipos de documento aceitos na importação.
const (
	TipoPDF = "pdf"
	TipoXML = "xml"
)

// Extractor produz o registro canônico a partir dos bytes do documento.
// Implementado por extracao.PDFExtractor e extracao.XMLExtractor.
type Extractor interface {
	Extrair(conteudo []byte) (*nfe.DadosNota, error)
}

// ImportTxRunner executa fn dentro de uma transação com os repositórios
// necessários à importação. Erro de fn desfaz tudo que foi gravado.
type ImportTxRunner interface {
	RunImportacao(ctx context.Context, fn func(
		notaRepo repository.NotaFiscalRepository,
		dupRepo repository.DuplicataRepository,
		tituloRepo repository.TituloComissaoRepository,
	) error) error
}
