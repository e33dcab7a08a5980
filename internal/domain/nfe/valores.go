package nfe

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var espacos = regexp.MustCompile(`\s+`)

// ParseValorBR converte um valor em formato brasileiro ("1.234,56") para decimal.
// Remove o ponto de milhar e troca a vírgula decimal por ponto.
func ParseValorBR(s string) (decimal.Decimal, bool) {
	limpo := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	limpo = strings.ReplaceAll(limpo, ",", ".")
	v, err := decimal.NewFromString(limpo)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// ConverterDataBR converte DD/MM/YYYY (ou DD-MM-YYYY) para YYYY-MM-DD.
func ConverterDataBR(s string) (string, bool) {
	partes := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '\\'
	})
	if len(partes) != 3 || len(partes[2]) != 4 {
		return "", false
	}
	return partes[2] + "-" + partes[1] + "-" + partes[0], true
}

// colapsarEspacos normaliza espaços repetidos e tabs em nomes extraídos.
func colapsarEspacos(s string) string {
	return strings.TrimSpace(espacos.ReplaceAllString(s, " "))
}
