package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Duplicata é uma parcela de pagamento da nota fiscal.
// PrevisaoRecebimento = Vencimento + 5 dias corridos.
type Duplicata struct {
	ID                  string
	NotaFiscalID        string
	NumeroDuplicata     string
	Valor               decimal.Decimal
	Vencimento          string // YYYY-MM-DD
	PrevisaoRecebimento string // YYYY-MM-DD
	DataCriacao         time.Time
}
