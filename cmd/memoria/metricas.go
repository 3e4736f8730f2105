package main

import (
	"sync"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

// MetricasOrigen acumula lo atendido para un mismo origen
type MetricasOrigen struct {
	Simulaciones int `json:"simulaciones"`
	Traducciones int `json:"traducciones"`
	Fallos       int `json:"fallos"`
	Errores      int `json:"errores"`
}

var (
	metricasPorOrigen map[string]*MetricasOrigen
	metricasMutex     sync.Mutex
)

func inicializarMetricas() {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()

	metricasPorOrigen = make(map[string]*MetricasOrigen)
	utils.InfoLog.Info("Sistema de métricas inicializado")
}

// Actualizar métricas con el resultado de una simulación
func actualizarMetricasSimulacion(origen string, respuesta paginacion.Respuesta) {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()

	if _, existe := metricasPorOrigen[origen]; !existe {
		metricasPorOrigen[origen] = &MetricasOrigen{}
	}
	m := metricasPorOrigen[origen]
	m.Simulaciones++
	m.Traducciones += respuesta.Traducidas
	m.Fallos += respuesta.Fallos
	if respuesta.TipoError != "" {
		m.Errores++
	}

	utils.InfoLog.Info("Simulación registrada", "origen", origen,
		"total_simulaciones", m.Simulaciones,
		"total_fallos", m.Fallos)
}

// copiarMetricas devuelve una copia para serializar fuera del lock
func copiarMetricas() map[string]MetricasOrigen {
	metricasMutex.Lock()
	defer metricasMutex.Unlock()

	copia := make(map[string]MetricasOrigen, len(metricasPorOrigen))
	for origen, m := range metricasPorOrigen {
		copia[origen] = *m
	}
	return copia
}
