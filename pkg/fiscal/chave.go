package fiscal

import "fmt"

// TamanhoChaveAcesso é o comprimento da chave de acesso de uma NF-e.
const TamanhoChaveAcesso = 44

// NormalizarChave remove separadores da chave de acesso (DANFEs costumam
// imprimi-la em grupos de 4 dígitos) e valida o comprimento.
func NormalizarChave(chave string) (string, error) {
	digitos := SomenteDigitos(chave)
	if len(digitos) != TamanhoChaveAcesso {
		return "", fmt.Errorf("fiscal: chave de acesso deve ter %d dígitos, recebidos %d", TamanhoChaveAcesso, len(digitos))
	}
	return digitos, nil
}
