package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ordem importa: pedidos antes de titulos_comissao (FK pedido_id).
// chave_acesso UNIQUE admite múltiplos NULLs: notas de PDF sem chave
// convivem sem conflito.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS notas_fiscais (
		id UUID PRIMARY KEY,
		numero_nota TEXT NOT NULL,
		serie TEXT,
		data_emissao TEXT,
		chave_acesso TEXT UNIQUE,
		emitente_nome TEXT,
		emitente_cnpj TEXT,
		destinatario_nome TEXT,
		destinatario_cnpj TEXT,
		valor_total NUMERIC(12,2),
		origem TEXT,
		data_importacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS duplicatas (
		id UUID PRIMARY KEY,
		nota_fiscal_id UUID REFERENCES notas_fiscais(id) ON DELETE CASCADE,
		numero_duplicata TEXT,
		valor NUMERIC(12,2),
		vencimento TEXT,
		previsao_recebimento TEXT,
		data_criacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pedidos (
		id UUID PRIMARY KEY,
		valor_total NUMERIC(12,2),
		quantidade_titulos INTEGER,
		status TEXT DEFAULT 'pendente',
		data_criacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS titulos_comissao (
		id UUID PRIMARY KEY,
		duplicata_id UUID REFERENCES duplicatas(id) ON DELETE CASCADE,
		nota_fiscal_id UUID REFERENCES notas_fiscais(id) ON DELETE CASCADE,
		percentual_comissao NUMERIC(5,2),
		valor_comissao NUMERIC(12,2),
		status TEXT DEFAULT 'pendente',
		status_pagamento TEXT DEFAULT 'pendente',
		pedido_id UUID REFERENCES pedidos(id),
		data_criacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema cria as tabelas na subida da aplicação, se ainda não existem.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("criar schema: %w", err)
		}
	}
	return nil
}
