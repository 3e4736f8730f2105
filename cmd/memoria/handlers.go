package main

import (
	"fmt"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

func registrarHandlers() {
	modulo.RegistrarHandler(utils.MensajeHandshake, "default", handlerHandshake)
	modulo.RegistrarHandler(utils.MensajeOperacion, "METRICAS", handlerMetricas)
	modulo.RegistrarHandler(utils.MensajeTraducir, "default", handlerTraducir)

	utils.InfoLog.Info("Handlers registrados correctamente")
}

// Handler para handshake
func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":           "OK",
		"politicas":        []paginacion.TipoPolitica{paginacion.PoliticaEstatica, paginacion.PoliticaLRU, paginacion.PoliticaFIFO},
		"max_simulaciones": config.MaxSimulaciones,
	}, nil
}

func handlerMetricas(msg *utils.Mensaje) (interface{}, error) {
	return copiarMetricas(), nil
}

// handlerTraducir traduce una traza completa con un motor nuevo por solicitud
func handlerTraducir(msg *utils.Mensaje) (interface{}, error) {
	return utils.HandlerGenerico(msg, config.MemoryDelay, procesarTraduccion)
}

func procesarTraduccion(msg *utils.Mensaje) (interface{}, error) {
	solicitud, err := utils.DecodificarDatos[paginacion.Solicitud](msg)
	if err != nil {
		utils.ErrorLog.Error("Solicitud de traducción mal formada", "origen", msg.Origen, "error", err)
		return nil, fmt.Errorf("solicitud de traducción mal formada: %w", err)
	}

	if !semaforoSimulaciones.TryWait() {
		utils.InfoLog.Info("Simulaciones al máximo, esperando lugar",
			"origen", msg.Origen,
			"max_simulaciones", config.MaxSimulaciones)
		semaforoSimulaciones.Wait()
	}
	defer semaforoSimulaciones.Signal()

	utils.InfoLog.Info("Traduciendo traza",
		"origen", msg.Origen,
		"politica", solicitud.Configuracion.Tipo(),
		"direcciones", len(solicitud.Direcciones))

	respuesta := paginacion.Simular(*solicitud, utils.InfoLog.With("origen", msg.Origen))
	actualizarMetricasSimulacion(msg.Origen, respuesta)

	if respuesta.Error != "" {
		utils.ErrorLog.Error("Traducción abortada", "origen", msg.Origen, "tipo_error", respuesta.TipoError, "error", respuesta.Error)
	} else {
		utils.InfoLog.Info(fmt.Sprintf("## Origen: %s - Traza traducida - Direcciones: %d - Fallos de página: %d",
			msg.Origen, respuesta.Traducidas, respuesta.Fallos))
	}

	return respuesta, nil
}
