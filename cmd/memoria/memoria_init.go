package main

import (
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

// Límite de simulaciones simultáneas. Cada una usa su propio motor.
var semaforoSimulaciones *utils.Semaforo

func inicializarMemoria() {
	if config.MaxSimulaciones <= 0 {
		config.MaxSimulaciones = 1
	}
	semaforoSimulaciones = utils.NewSemaforo(config.MaxSimulaciones)

	utils.InfoLog.Info("Memoria inicializada",
		"max_simulaciones", config.MaxSimulaciones,
		"retardo_ms", config.MemoryDelay)

	inicializarMetricas()
}
