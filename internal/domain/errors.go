package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrQuotaExceeded = errors.New("cuota de almacenamiento excedida")
	ErrCartEmpty     = errors.New("el carrito está vacío")
	ErrRemoteEmpty   = errors.New("el origen remoto devolvió un catálogo vacío")
	ErrSyncDisabled  = errors.New("sincronización remota no configurada")
)
