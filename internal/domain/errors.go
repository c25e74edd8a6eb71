package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrWrongPassword     = errors.New("contraseña incorrecta")
	ErrSamePassword      = errors.New("la contraseña nueva debe ser distinta a la anterior")
	ErrProtectedCategory = errors.New("la categoría está protegida y no puede modificarse")
	ErrIntegrity         = errors.New("violación de integridad en el almacén")
)
