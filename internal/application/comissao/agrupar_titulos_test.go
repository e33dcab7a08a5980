package comissao_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/nf-comissoes/internal/application/comissao"
	"github.com/gestorfiscal/nf-comissoes/internal/domain"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/entity"
	"github.com/gestorfiscal/nf-comissoes/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes do agrupamento de títulos em pedido. O contrato: todas as
// pré-condições são verificadas como unidade e qualquer violação aborta sem
// mutação alguma; nunca existe agrupamento parcial.
// ──────────────────────────────────────────────────────────────────────────────

type memPedidoStore struct {
	titulos map[string]*entity.TituloComissao
	pedidos map[string]*entity.Pedido
}

func novoPedidoStore() *memPedidoStore {
	return &memPedidoStore{
		titulos: map[string]*entity.TituloComissao{},
		pedidos: map[string]*entity.Pedido{},
	}
}

func (s *memPedidoStore) addTitulo(valor int64) string {
	id := uuid.New().String()
	s.titulos[id] = &entity.TituloComissao{
		ID:              id,
		ValorComissao:   decimal.NewFromInt(valor),
		Status:          entity.TituloPendente,
		StatusPagamento: entity.PagamentoPendente,
	}
	return id
}

type memTituloPedidoRepo struct{ s *memPedidoStore }

func (r *memTituloPedidoRepo) Create(*entity.TituloComissao) error { return nil }
func (r *memTituloPedidoRepo) GetByID(string) (*entity.TituloComissao, error) {
	return nil, nil
}
func (r *memTituloPedidoRepo) GetDetalhadoByID(string) (*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloPedidoRepo) ListDetalhados() ([]*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloPedidoRepo) ListByPedidoID(string) ([]*repository.TituloDetalhadoResult, error) {
	return nil, nil
}
func (r *memTituloPedidoRepo) Atualizar(string, *decimal.Decimal, string) error { return nil }

func (r *memTituloPedidoRepo) GetForUpdateByIDs(ids []string) ([]*entity.TituloComissao, error) {
	var out []*entity.TituloComissao
	for _, id := range ids {
		if t, ok := r.s.titulos[id]; ok {
			copia := *t
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memTituloPedidoRepo) MarcarAgrupados(ids []string, pedidoID string) error {
	for _, id := range ids {
		r.s.titulos[id].Status = entity.TituloEmPedido
		r.s.titulos[id].PedidoID = pedidoID
	}
	return nil
}

type memPedidoRepo struct{ s *memPedidoStore }

func (r *memPedidoRepo) Create(p *entity.Pedido) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.s.pedidos[p.ID] = p
	return nil
}

func (r *memPedidoRepo) GetByID(id string) (*entity.Pedido, error) { return r.s.pedidos[id], nil }
func (r *memPedidoRepo) List() ([]*entity.Pedido, error)           { return nil, nil }

// memPedidoTxRunner passa os repositórios direto: as verificações do caso de
// uso acontecem antes de qualquer mutação, então um erro de fn já garante
// estado intocado.
type memPedidoTxRunner struct{ s *memPedidoStore }

func (tx *memPedidoTxRunner) RunPedido(_ context.Context, fn func(
	repository.TituloComissaoRepository,
	repository.PedidoRepository,
) error) error {
	return fn(&memTituloPedidoRepo{tx.s}, &memPedidoRepo{tx.s})
}

// ── CriarPedido ───────────────────────────────────────────────────────────────

func TestCriarPedido_AgrupaESoma(t *testing.T) {
	store := novoPedidoStore()
	id1 := store.addTitulo(100)
	id2 := store.addTitulo(250)
	id3 := store.addTitulo(50)
	uc := comissao.NewAgruparTitulosUseCase(&memPedidoTxRunner{store})

	resp, err := uc.CriarPedido(context.Background(), []string{id1, id2, id3})
	require.NoError(t, err)

	assert.Equal(t, "400", resp.ValorTotal.String(), "valor do pedido é a soma exata das comissões")
	assert.Equal(t, 3, resp.QuantidadeTitulos)

	pedido := store.pedidos[resp.PedidoID]
	require.NotNil(t, pedido, "o pedido deve ter sido persistido")
	assert.Equal(t, entity.PedidoPendente, pedido.Status)

	for _, id := range []string{id1, id2, id3} {
		assert.Equal(t, entity.TituloEmPedido, store.titulos[id].Status)
		assert.Equal(t, resp.PedidoID, store.titulos[id].PedidoID, "cada título deve apontar para o pedido criado")
	}
}

func TestCriarPedido_ListaVazia(t *testing.T) {
	uc := comissao.NewAgruparTitulosUseCase(&memPedidoTxRunner{novoPedidoStore()})
	_, err := uc.CriarPedido(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCriarPedido_TituloInexistente(t *testing.T) {
	store := novoPedidoStore()
	id1 := store.addTitulo(100)
	uc := comissao.NewAgruparTitulosUseCase(&memPedidoTxRunner{store})

	_, err := uc.CriarPedido(context.Background(), []string{id1, uuid.New().String()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.Empty(t, store.pedidos, "pedido algum pode ser criado quando um id não existe")
	assert.Equal(t, entity.TituloPendente, store.titulos[id1].Status, "o título existente segue pendente")
}

// TestCriarPedido_TituloJaAgrupado: incluir um título que já pertence a um
// pedido aborta o agrupamento inteiro, inclusive para os títulos livres.
func TestCriarPedido_TituloJaAgrupado(t *testing.T) {
	store := novoPedidoStore()
	livre := store.addTitulo(100)
	preso := store.addTitulo(200)
	uc := comissao.NewAgruparTitulosUseCase(&memPedidoTxRunner{store})

	_, err := uc.CriarPedido(context.Background(), []string{preso})
	require.NoError(t, err)
	require.Len(t, store.pedidos, 1)

	_, err = uc.CriarPedido(context.Background(), []string{livre, preso})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyGrouped))

	assert.Len(t, store.pedidos, 1, "nenhum segundo pedido pode existir")
	assert.Equal(t, entity.TituloPendente, store.titulos[livre].Status,
		"o título livre não pode ser arrastado para um agrupamento abortado")
	assert.Empty(t, store.titulos[livre].PedidoID)
}

func TestCriarPedido_PedidosDisjuntosConvivem(t *testing.T) {
	store := novoPedidoStore()
	a := store.addTitulo(100)
	b := store.addTitulo(200)
	uc := comissao.NewAgruparTitulosUseCase(&memPedidoTxRunner{store})

	respA, err := uc.CriarPedido(context.Background(), []string{a})
	require.NoError(t, err)
	respB, err := uc.CriarPedido(context.Background(), []string{b})
	require.NoError(t, err)

	assert.NotEqual(t, respA.PedidoID, respB.PedidoID)
	assert.Len(t, store.pedidos, 2, "conjuntos disjuntos geram pedidos independentes")
}
