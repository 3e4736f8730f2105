package paginacion

import (
	"errors"
	"log/slog"
)

// Tipos de error informados en Respuesta.TipoError
const (
	TipoErrorConfiguracion  = "CONFIGURACION"
	TipoErrorPaginaInvalida = "PAGINA_INVALIDA"
	TipoErrorOtro           = "OTRO"
)

// Solicitud es una traza completa a traducir con su configuración
type Solicitud struct {
	Configuracion Configuracion `json:"configuracion"`
	Direcciones   []uint64      `json:"direcciones"`
}

// Respuesta lleva las direcciones traducidas hasta el final o hasta el error
type Respuesta struct {
	DireccionesFisicas []uint64 `json:"direcciones_fisicas"`
	Resultado
	TipoError      string  `json:"tipo_error,omitempty"`
	Error          string  `json:"error,omitempty"`
	PaginaInvalida *uint64 `json:"pagina_invalida,omitempty"`
}

// Simular ejecuta la solicitud con un motor propio
func Simular(sol Solicitud, logger *slog.Logger) Respuesta {
	motor, err := NuevoMotor(sol.Configuracion, logger)
	if err != nil {
		return respuestaConError(Respuesta{}, err)
	}

	salida := &DestinoMemoria{Direcciones: make([]uint64, 0, len(sol.Direcciones))}
	resultado, err := motor.Ejecutar(NuevaSecuencia(sol.Direcciones), salida)

	respuesta := Respuesta{
		DireccionesFisicas: salida.Direcciones,
		Resultado:          resultado,
	}
	if err != nil {
		return respuestaConError(respuesta, err)
	}
	return respuesta
}

func respuestaConError(r Respuesta, err error) Respuesta {
	r.Error = err.Error()

	var invalida *ErrorPaginaInvalida
	switch {
	case errors.As(err, &invalida):
		r.TipoError = TipoErrorPaginaInvalida
		pagina := invalida.Pagina
		r.PaginaInvalida = &pagina
	case errors.Is(err, ErrConfiguracion):
		r.TipoError = TipoErrorConfiguracion
	default:
		r.TipoError = TipoErrorOtro
	}
	return r
}

// errorRemoto conserva el mensaje original y permite usar errors.Is/As
type errorRemoto struct {
	mensaje string
	causa   error
}

func (e *errorRemoto) Error() string { return e.mensaje }
func (e *errorRemoto) Unwrap() error { return e.causa }

// Err reconstruye el error de una respuesta remota
func (r Respuesta) Err() error {
	switch r.TipoError {
	case "":
		return nil
	case TipoErrorPaginaInvalida:
		causa := &ErrorPaginaInvalida{Motivo: "informado por la memoria remota"}
		if r.PaginaInvalida != nil {
			causa.Pagina = *r.PaginaInvalida
		}
		return &errorRemoto{mensaje: r.Error, causa: causa}
	case TipoErrorConfiguracion:
		return &errorRemoto{mensaje: r.Error, causa: ErrConfiguracion}
	default:
		return errors.New(r.Error)
	}
}
