package main

// MemoryConfig representa la configuración específica del módulo Memoria
type MemoryConfig struct {
	IPMemory        string `json:"IP_MEMORIA"`
	PortMemory      int    `json:"PUERTO_MEMORIA"`
	LogLevel        string `json:"LOG_LEVEL"`
	MemoryDelay     int    `json:"RETARDO_MEMORIA"`  // Retardo por solicitud en ms
	MaxSimulaciones int    `json:"MAX_SIMULACIONES"` // Simulaciones en paralelo
}

var config *MemoryConfig
