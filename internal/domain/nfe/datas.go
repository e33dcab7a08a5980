package nfe

import (
	"fmt"
	"time"
)

// FormatoDataISO é o layout das datas fiscais trocadas pelo sistema.
const FormatoDataISO = "2006-01-02"

// Prazos em dias corridos (calendário, atravessando viradas de mês e ano).
const (
	diasPrevisaoRecebimento = 5
	diasVencimentoPadrao    = 30
)

// PrevisaoRecebimento devolve vencimento + 5 dias corridos.
func PrevisaoRecebimento(vencimento string) (string, error) {
	d, err := time.Parse(FormatoDataISO, vencimento)
	if err != nil {
		return "", fmt.Errorf("nfe: vencimento inválido %q: %w", vencimento, err)
	}
	return d.AddDate(0, 0, diasPrevisaoRecebimento).Format(FormatoDataISO), nil
}

// VencimentoPadrao devolve a data de referência + 30 dias corridos,
// usada na duplicata sintetizada quando a nota não traz parcelas.
func VencimentoPadrao(referencia time.Time) string {
	return referencia.AddDate(0, 0, diasVencimentoPadrao).Format(FormatoDataISO)
}
