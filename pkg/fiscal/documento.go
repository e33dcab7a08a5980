package fiscal

import (
	"fmt"
	"unicode"
)

// Pesos do cálculo dos dígitos verificadores do CNPJ (módulo 11).
// Aplicados da esquerda para a direita sobre os 12/13 primeiros dígitos.
var (
	cnpjPesosDV1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjPesosDV2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// SomenteDigitos remove tudo que não for dígito ("12.345.678/0001-95" → "12345678000195").
func SomenteDigitos(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// ValidarCNPJ valida os dois dígitos verificadores do CNPJ (módulo 11).
// Aceita o número com ou sem pontuação.
func ValidarCNPJ(doc string) error {
	digitos := SomenteDigitos(doc)
	if len(digitos) != 14 {
		return fmt.Errorf("fiscal: CNPJ deve ter 14 dígitos, recebidos %d", len(digitos))
	}
	dv1 := moduloOnze(digitos[:12], cnpjPesosDV1[:])
	if digitos[12] != dv1 {
		return fmt.Errorf("fiscal: primeiro dígito verificador do CNPJ inválido: esperado %c, recebido %c", dv1, digitos[12])
	}
	dv2 := moduloOnze(digitos[:13], cnpjPesosDV2[:])
	if digitos[13] != dv2 {
		return fmt.Errorf("fiscal: segundo dígito verificador do CNPJ inválido: esperado %c, recebido %c", dv2, digitos[13])
	}
	return nil
}

// ValidarCPF valida os dois dígitos verificadores do CPF.
func ValidarCPF(doc string) error {
	digitos := SomenteDigitos(doc)
	if len(digitos) != 11 {
		return fmt.Errorf("fiscal: CPF deve ter 11 dígitos, recebidos %d", len(digitos))
	}
	if dv := cpfDV(digitos[:9], 10); digitos[9] != dv {
		return fmt.Errorf("fiscal: primeiro dígito verificador do CPF inválido: esperado %c, recebido %c", dv, digitos[9])
	}
	if dv := cpfDV(digitos[:10], 11); digitos[10] != dv {
		return fmt.Errorf("fiscal: segundo dígito verificador do CPF inválido: esperado %c, recebido %c", dv, digitos[10])
	}
	return nil
}

// ValidarDocumento valida CNPJ (14 dígitos) ou CPF (11 dígitos) conforme o tamanho.
func ValidarDocumento(doc string) error {
	switch len(SomenteDigitos(doc)) {
	case 14:
		return ValidarCNPJ(doc)
	case 11:
		return ValidarCPF(doc)
	default:
		return fmt.Errorf("fiscal: documento deve ter 11 (CPF) ou 14 (CNPJ) dígitos")
	}
}

func moduloOnze(base string, pesos []int) byte {
	var soma int
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * pesos[i]
	}
	resto := soma % 11
	if resto < 2 {
		return '0'
	}
	return byte('0' + (11 - resto))
}

func cpfDV(base string, pesoInicial int) byte {
	var soma int
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * (pesoInicial - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		resto = 0
	}
	return byte('0' + resto)
}
