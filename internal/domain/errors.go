package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el username ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidState      = errors.New("transición de estado no permitida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrPersistenceUnavailable indica que el almacenamiento no está
	// disponible (no se pudo abrir o confirmar la transacción).
	ErrPersistenceUnavailable = errors.New("persistencia no disponible")
)
