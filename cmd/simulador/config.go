package main

import (
	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
)

// SimuladorConfig agrega a la configuración de paginación lo propio de la
// ejecución: formatos de traza, dump y memoria remota
type SimuladorConfig struct {
	paginacion.Configuracion

	FormatoEntrada string `json:"FORMATO_ENTRADA"`
	FormatoSalida  string `json:"FORMATO_SALIDA"`
	UsarMmap       bool   `json:"USAR_MMAP"`
	DumpPath       string `json:"DUMP_PATH"`
	LogLevel       string `json:"LOG_LEVEL"`

	MemoriaRemota bool   `json:"MEMORIA_REMOTA"`
	IPMemory      string `json:"IP_MEMORIA"`
	PortMemory    int    `json:"PUERTO_MEMORIA"`
}
