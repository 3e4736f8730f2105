package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

// traducirRemoto manda la traza completa al módulo Memoria en un solo mensaje
func traducirRemoto(config *SimuladorConfig, entrada paginacion.Secuencia, salida paginacion.Destino) (paginacion.Resultado, error) {
	memoriaClient := utils.NewHTTPClient(config.IPMemory, config.PortMemory, "Simulador")
	if err := memoriaClient.VerificarConexion(); err != nil {
		return paginacion.Resultado{}, err
	}

	direcciones, err := leerTraza(entrada)
	if err != nil {
		return paginacion.Resultado{}, err
	}

	utils.InfoLog.Info("Enviando traza a Memoria", "destino", memoriaClient.BaseURL, "direcciones", len(direcciones))

	solicitud := paginacion.Solicitud{
		Configuracion: config.Configuracion,
		Direcciones:   direcciones,
	}
	var respuesta paginacion.Respuesta
	if err := memoriaClient.EnviarHTTPMensaje(utils.MensajeTraducir, "", solicitud, &respuesta); err != nil {
		return paginacion.Resultado{}, err
	}

	for _, fisica := range respuesta.DireccionesFisicas {
		if err := salida.Escribir(fisica); err != nil {
			return respuesta.Resultado, fmt.Errorf("error al escribir dirección física: %w", err)
		}
	}

	return respuesta.Resultado, respuesta.Err()
}

func leerTraza(entrada paginacion.Secuencia) ([]uint64, error) {
	var direcciones []uint64
	for {
		logica, err := entrada.Siguiente()
		if errors.Is(err, io.EOF) {
			return direcciones, nil
		}
		if err != nil {
			return direcciones, fmt.Errorf("error al leer la traza: %w", err)
		}
		direcciones = append(direcciones, logica)
	}
}
