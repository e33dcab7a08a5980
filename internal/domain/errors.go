package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound       = errors.New("recurso não encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("nota fiscal já importada")
	ErrAlreadyGrouped = errors.New("título já vinculado a um pedido")
	ErrConflict       = errors.New("conflito com o estado atual")
	ErrExtraction     = errors.New("falha na extração do documento")
)
