package repository

import "github.com/shopspring/decimal"

// TotaisResult agrega contagem e soma de uma das três visões do painel.
type TotaisResult struct {
	Total     int
	Valor     decimal.Decimal
	Pendentes int // preenchido apenas para títulos de comissão
}

// RelatorioRepository define as consultas de leitura do painel.
// As implementações são read-only.
type RelatorioRepository interface {
	TotaisNotasFiscais() (*TotaisResult, error)
	TotaisTitulosComissao() (*TotaisResult, error)
	TotaisPedidos() (*TotaisResult, error)
}
