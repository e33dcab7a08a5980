package importacao_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/internal/application/importacao"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/nfe"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes do coordenador de importação com repositórios em memória. O fake de
// transação só efetiva as gravações quando fn devolve nil, espelhando o
// commit/rollback do banco.
// ──────────────────────────────────────────────────────────────────────────────

// fakeExtractor devolve um registro fixo ou um erro.
type fakeExtractor struct {
	dados *nfe.DadosNota
	err   error
}

func (f *fakeExtractor) Extrair([]byte) (*nfe.DadosNota, error) {
	if f.err != nil {
		return nil, f.err
	}
	copia := *f.dados
	copia.Duplicatas = append([]nfe.DuplicataExtraida(nil), f.dados.Duplicatas...)
	return &copia, nil
}

// armazenamento em memória compartilhado pelos fakes.
type memStore struct {
	notas    []*entity.NotaFiscal
	dups     []*entity.Duplicata
	titulos  []*entity.TituloComissao
	falharNo int // título em que Create deve falhar (0 = nunca)
}

type memNotaRepo struct{ s *memStore }

func (r *memNotaRepo) Create(n *entity.NotaFiscal) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	r.s.notas = append(r.s.notas, n)
	return nil
}

func (r *memNotaRepo) GetByChaveAcesso(chave string) (*entity.NotaFiscal, error) {
	for _, n := range r.s.notas {
		if n.ChaveAcesso == chave {
			return n, nil
		}
	}
	return nil, nil
}

func (r *memNotaRepo) List() ([]*entity.NotaFiscal, error) { return r.s.notas, nil }
func (r *memNotaRepo) Delete(string) error                 { return nil }

type memDupRepo struct{ s *memStore }

func (r *memDupRepo) Create(d *entity.Duplicata) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	r.s.dups = append(r.s.dups, d)
	return nil
}

func (r *memDupRepo) ListByNotaFiscalID(string) ([]*entity.Duplicata, error) { return r.s.dups, nil }

type memTituloRepo struct{ s *memStore }

func (r *memTituloRepo) Create(t *entity.TituloComissao) error {
	if r.s.falharNo > 0 && len(r.s.titulos)+1 == r.s.falharNo {
		return errors.New("falha simulada do banco")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	r.s.titulos = append(r.s.titulos, t)
	return nil
}

func (r *memTituloRepo) GetByID(string) (*entity.TituloComissao, error) { return nil, nil }
func (r *memTituloRepo) GetDetalhadoByID(string) (*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloRepo) ListDetalhados() ([]*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloRepo) ListByPedidoID(string) ([]*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloRepo) Atualizar(string, *decimal.Decimal, string) error { return nil }
func (r *memTituloRepo) GetForUpdateByIDs([]string) ([]*entity.TituloComissao, error) {
	return nil, nil
}
func (r *memTituloRepo) MarcarAgrupados([]string, string) error { return nil }

// memTxRunner grava em um store de rascunho e só copia para o definitivo
// quando fn devolve nil.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) RunImportacao(_ context.Context, fn func(
	repository.NotaFiscalRepository,
	repository.DuplicataRepository,
	repository.TituloComissaoRepository,
) error) error {
	rascunho := &memStore{
		notas:    append([]*entity.NotaFiscal(nil), tx.s.notas...),
		dups:     append([]*entity.Duplicata(nil), tx.s.dups...),
		titulos:  append([]*entity.TituloComissao(nil), tx.s.titulos...),
		falharNo: tx.s.falharNo,
	}
	err := fn(&memNotaRepo{rascunho}, &memDupRepo{rascunho}, &memTituloRepo{rascunho})
	if err != nil {
		return err
	}
	tx.s.notas = rascunho.notas
	tx.s.dups = rascunho.dups
	tx.s.titulos = rascunho.titulos
	return nil
}

func dadosTeste() *nfe.DadosNota {
	return &nfe.DadosNota{
		NumeroNota:       "123456",
		Serie:            "1",
		DataEmissao:      "2024-01-10",
		ChaveAcesso:      "35240114200166000187550010000012341234567890",
		EmitenteNome:     "ACME INDUSTRIA LTDA",
		DestinatarioNome: "COMERCIO BELTRANO ME",
		ValorTotal:       decimal.NewFromInt(1000),
		Duplicatas: []nfe.DuplicataExtraida{
			{Numero: "001", Vencimento: "2024-02-10", Valor: decimal.NewFromInt(500)},
			{Numero: "002", Vencimento: "2024-03-10", Valor: decimal.NewFromInt(500)},
		},
	}
}

func novoUseCase(store *memStore, extractor importacao.Extractor) *importacao.ImportarNotaUseCase {
	return importacao.NewImportarNotaUseCase(
		&memTxRunner{store}, &memNotaRepo{store}, extractor, extractor,
	)
}

// ── Importação ────────────────────────────────────────────────────────────────

func TestImportar_CriaNotaDuplicatasETitulos(t *testing.T) {
	store := &memStore{}
	uc := novoUseCase(store, &fakeExtractor{dados: dadosTeste()})

	resp, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.NotaFiscalID)
	assert.Equal(t, 2, resp.QuantidadeTitulos, "uma duplicata gera exatamente um título")
	require.Len(t, store.notas, 1)
	require.Len(t, store.dups, 2)
	require.Len(t, store.titulos, 2)

	// Comissão = valor da parcela × 5%
	assert.Equal(t, "25", store.titulos[0].ValorComissao.String())
	assert.Equal(t, entity.TituloPendente, store.titulos[0].Status)
	assert.Equal(t, entity.PagamentoPendente, store.titulos[0].StatusPagamento)
	assert.Equal(t, store.notas[0].ID, store.titulos[0].NotaFiscalID)
	assert.Equal(t, store.dups[0].ID, store.titulos[0].DuplicataID)
}

func TestImportar_PrevisaoRecebimentoCincoDias(t *testing.T) {
	store := &memStore{}
	uc := novoUseCase(store, &fakeExtractor{dados: dadosTeste()})

	_, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(5))
	require.NoError(t, err)

	require.Len(t, store.dups, 2)
	assert.Equal(t, "2024-02-15", store.dups[0].PrevisaoRecebimento, "previsão = vencimento + 5 dias corridos")
	assert.Equal(t, "2024-03-15", store.dups[1].PrevisaoRecebimento)
}

func TestImportar_PercentualForaDaFaixa(t *testing.T) {
	uc := novoUseCase(&memStore{}, &fakeExtractor{dados: dadosTeste()})

	casos := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-1),
		decimal.NewFromInt(101),
	}
	for _, percentual := range casos {
		_, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), percentual)
		require.Error(t, err, "percentual %s deve ser rejeitado", percentual)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}

	// Limite superior inclusivo: 100 é aceito.
	_, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(100))
	assert.NoError(t, err)
}

func TestImportar_ChaveDuplicadaRejeitada(t *testing.T) {
	store := &memStore{}
	uc := novoUseCase(store, &fakeExtractor{dados: dadosTeste()})

	_, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(5))
	require.NoError(t, err)

	_, err = uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "mesma chave de acesso não importa duas vezes")
	assert.Len(t, store.notas, 1, "a segunda tentativa não pode gravar nada")
}

// TestImportar_FalhaNoMeioNaoGravaNada: se a gravação do segundo título
// falha, nem a nota nem a primeira duplicata podem sobrar.
func TestImportar_FalhaNoMeioNaoGravaNada(t *testing.T) {
	store := &memStore{falharNo: 2}
	uc := novoUseCase(store, &fakeExtractor{dados: dadosTeste()})

	_, err := uc.Importar(context.Background(), importacao.TipoXML, []byte("<xml/>"), decimal.NewFromInt(5))
	require.Error(t, err)

	assert.Empty(t, store.notas, "rollback deve descartar a nota")
	assert.Empty(t, store.dups, "rollback deve descartar as duplicatas")
	assert.Empty(t, store.titulos, "rollback deve descartar os títulos")
}

func TestImportar_SintetizaDuplicataQuandoNotaNaoTraz(t *testing.T) {
	dados := dadosTeste()
	dados.Duplicatas = nil
	store := &memStore{}
	uc := novoUseCase(store, &fakeExtractor{dados: dados})

	resp, err := uc.Importar(context.Background(), importacao.TipoPDF, []byte("%PDF"), decimal.NewFromInt(10))
	require.NoError(t, err)

	require.Equal(t, 1, resp.QuantidadeTitulos, "nota sem parcelas ganha a parcela única sintetizada")
	assert.Equal(t, "001", resp.Titulos[0].NumeroDuplicata)
	assert.Equal(t, "100", resp.Titulos[0].ValorComissao.String(), "comissão de 10% sobre o valor total")
}

func TestImportar_ErroDeExtracaoPropagado(t *testing.T) {
	uc := novoUseCase(&memStore{}, &fakeExtractor{err: domain.ErrExtraction})

	_, err := uc.Importar(context.Background(), importacao.TipoPDF, []byte("lixo"), decimal.NewFromInt(5))
	assert.True(t, errors.Is(err, domain.ErrExtraction))
}

func TestImportar_TipoDesconhecido(t *testing.T) {
	uc := novoUseCase(&memStore{}, &fakeExtractor{dados: dadosTeste()})
	_, err := uc.Importar(context.Background(), "docx", []byte("x"), decimal.NewFromInt(5))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestImportar_ArquivoVazio(t *testing.T) {
	uc := novoUseCase(&memStore{}, &fakeExtractor{dados: dadosTeste()})
	_, err := uc.Importar(context.Background(), importacao.TipoXML, nil, decimal.NewFromInt(5))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ── Preview ───────────────────────────────────────────────────────────────────

func TestPreview_NaoGravaNada(t *testing.T) {
	store := &memStore{}
	uc := novoUseCase(store, &fakeExtractor{dados: dadosTeste()})

	dados, err := uc.Preview(importacao.TipoPDF, []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "123456", dados.NumeroNota)
	assert.Len(t, dados.Duplicatas, 2)
	assert.Empty(t, store.notas, "preview não persiste nota alguma")
	assert.Empty(t, store.titulos)
}

func TestPreview_SintetizaParcelaPadrao(t *testing.T) {
	dados := dadosTeste()
	dados.Duplicatas = nil
	uc := novoUseCase(&memStore{}, &fakeExtractor{dados: dados})

	out, err := uc.Preview(importacao.TipoPDF, []byte("%PDF"))
	require.NoError(t, err)
	require.Len(t, out.Duplicatas, 1, "preview mostra a parcela que a importação vai criar")
	assert.Equal(t, "001", out.Duplicatas[0].Numero)
}
