package paginacion

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguracion se devuelve antes de traducir cualquier dirección
	ErrConfiguracion = errors.New("configuración inválida")

	// ErrPaginaInvalida aborta la ejecución completa
	ErrPaginaInvalida = errors.New("número de página inválido")
)

// ErrorPaginaInvalida indica qué página (y qué dirección lógica) abortó la traducción
type ErrorPaginaInvalida struct {
	Pagina    uint64
	Direccion uint64
	Motivo    string
}

func (e *ErrorPaginaInvalida) Error() string {
	return fmt.Sprintf("número de página inválido %d (dirección %d): %s", e.Pagina, e.Direccion, e.Motivo)
}

func (e *ErrorPaginaInvalida) Is(target error) bool {
	return target == ErrPaginaInvalida
}

func errorConfiguracion(formato string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguracion, fmt.Sprintf(formato, args...))
}
