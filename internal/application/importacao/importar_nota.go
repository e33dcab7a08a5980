package importacao

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/nf-comissoes/internal/application/dto"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

var cem = decimal.NewFromInt(100)

// ImportarNotaUseCase coordena a importação de um documento fiscal:
// extração → síntese da duplicata padrão → checagem de chave duplicada →
// gravação atômica de nota + duplicatas + títulos de comissão.
type ImportarNotaUseCase struct {
	txRunner     ImportTxRunner
	notaRepo     repository.NotaFiscalRepository // leituras fora da transação
	pdfExtractor Extractor
	xmlExtractor Extractor
}

// NewImportarNotaUseCase constrói o caso de uso.
func NewImportarNotaUseCase(
	txRunner ImportTxRunner,
	notaRepo repository.NotaFiscalRepository,
	pdfExtractor, xmlExtractor Extractor,
) *ImportarNotaUseCase {
	return &ImportarNotaUseCase{
		txRunner:     txRunner,
		notaRepo:     notaRepo,
		pdfExtractor: pdfExtractor,
		xmlExtractor: xmlExtractor,
	}
}

// Importar processa um documento e grava nota, duplicatas e títulos em uma
// única transação. percentual deve estar em (0, 100].
//
// A pré-checagem de chave duplicada é uma otimização de UX: a garantia real
// é a constraint UNIQUE de chave_acesso, cuja violação o repositório devolve
// como ErrDuplicate. Quando o PDF não revela chave alguma, a checagem é
// pulada e o mesmo documento pode ser importado duas vezes, lacuna herdada
// do sistema de origem e mantida de propósito.
func (uc *ImportarNotaUseCase) Importar(
	ctx context.Context,
	tipo string,
	conteudo []byte,
	percentual decimal.Decimal,
) (*dto.ImportacaoResponse, error) {
	if !percentual.GreaterThan(decimal.Zero) || percentual.GreaterThan(cem) {
		return nil, fmt.Errorf("%w: percentual de comissão deve estar entre 0 e 100", domain.ErrInvalidInput)
	}
	if len(conteudo) == 0 {
		return nil, fmt.Errorf("%w: nenhum arquivo enviado", domain.ErrInvalidInput)
	}

	extrator, origem, err := uc.selecionarExtrator(tipo, conteudo)
	if err != nil {
		return nil, err
	}
	dados, err := extrator.Extrair(conteudo)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	nfe.SintetizarDuplicataPadrao(dados, agora)

	if dados.ChaveAcesso != "" {
		existente, err := uc.notaRepo.GetByChaveAcesso(dados.ChaveAcesso)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}

	resp := &dto.ImportacaoResponse{}
	err = uc.txRunner.RunImportacao(ctx, func(
		notaRepo repository.NotaFiscalRepository,
		dupRepo repository.DuplicataRepository,
		tituloRepo repository.TituloComissaoRepository,
	) error {
		nota := &entity.NotaFiscal{
			NumeroNota:       dados.NumeroNota,
			Serie:            dados.Serie,
			DataEmissao:      dados.DataEmissao,
			ChaveAcesso:      dados.ChaveAcesso,
			EmitenteNome:     dados.EmitenteNome,
			EmitenteCNPJ:     dados.EmitenteCNPJ,
			DestinatarioNome: dados.DestinatarioNome,
			DestinatarioCNPJ: dados.DestinatarioCNPJ,
			ValorTotal:       dados.ValorTotal,
			Origem:           origem,
			DataImportacao:   agora,
		}
		if err := notaRepo.Create(nota); err != nil {
			return err
		}
		resp.NotaFiscalID = nota.ID

		for _, d := range dados.Duplicatas {
			previsao, err := nfe.PrevisaoRecebimento(d.Vencimento)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
			dup := &entity.Duplicata{
				NotaFiscalID:        nota.ID,
				NumeroDuplicata:     d.Numero,
				Valor:               d.Valor,
				Vencimento:          d.Vencimento,
				PrevisaoRecebimento: previsao,
			}
			if err := dupRepo.Create(dup); err != nil {
				return err
			}

			valorComissao := d.Valor.Mul(percentual).Div(cem)
			titulo := &entity.TituloComissao{
				DuplicataID:        dup.ID,
				NotaFiscalID:       nota.ID,
				PercentualComissao: percentual,
				ValorComissao:      valorComissao,
				Status:             entity.TituloPendente,
				StatusPagamento:    entity.PagamentoPendente,
			}
			if err := tituloRepo.Create(titulo); err != nil {
				return err
			}

			resp.Titulos = append(resp.Titulos, dto.TituloCriadoDTO{
				ID:                 titulo.ID,
				NumeroDuplicata:    d.Numero,
				ValorDuplicata:     d.Valor,
				Vencimento:         d.Vencimento,
				PercentualComissao: percentual,
				ValorComissao:      valorComissao,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.QuantidadeTitulos = len(resp.Titulos)
	return resp, nil
}

// Preview extrai e sintetiza sem gravar nada, para conferência antes da
// importação definitiva.
func (uc *ImportarNotaUseCase) Preview(tipo string, conteudo []byte) (*dto.DadosNotaDTO, error) {
	if len(conteudo) == 0 {
		return nil, fmt.Errorf("%w: nenhum arquivo enviado", domain.ErrInvalidInput)
	}
	extrator, _, err := uc.selecionarExtrator(tipo, conteudo)
	if err != nil {
		return nil, err
	}
	dados, err := extrator.Extrair(conteudo)
	if err != nil {
		return nil, err
	}
	nfe.SintetizarDuplicataPadrao(dados, time.Now())
	return dadosParaDTO(dados), nil
}

// selecionarExtrator escolhe o extrator pelo tipo declarado e define o que
// vai para a coluna origem: o XML completo, ou o marcador de importação PDF.
func (uc *ImportarNotaUseCase) selecionarExtrator(tipo string, conteudo []byte) (Extractor, string, error) {
	switch tipo {
	case TipoPDF:
		return uc.pdfExtractor, entity.OrigemPDF, nil
	case TipoXML:
		return uc.xmlExtractor, string(conteudo), nil
	}
	return nil, "", fmt.Errorf("%w: tipo de documento desconhecido: %s", domain.ErrInvalidInput, tipo)
}

func dadosParaDTO(dados *nfe.DadosNota) *dto.DadosNotaDTO {
	out := &dto.DadosNotaDTO{
		NumeroNota:       dados.NumeroNota,
		Serie:            dados.Serie,
		DataEmissao:      dados.DataEmissao,
		ChaveAcesso:      dados.ChaveAcesso,
		EmitenteNome:     dados.EmitenteNome,
		EmitenteCNPJ:     dados.EmitenteCNPJ,
		DestinatarioNome: dados.DestinatarioNome,
		DestinatarioCNPJ: dados.DestinatarioCNPJ,
		ValorTotal:       dados.ValorTotal,
		Duplicatas:       make([]dto.DuplicataExtraidaDTO, 0, len(dados.Duplicatas)),
	}
	for _, d := range dados.Duplicatas {
		out.Duplicatas = append(out.Duplicatas, dto.DuplicataExtraidaDTO{
			Numero:     d.Numero,
			Vencimento: d.Vencimento,
			Valor:      d.Valor,
		})
	}
	return out
}
