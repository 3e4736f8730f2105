package main

import (
	"fmt"
	"io"
	"os"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/traza"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> <entrada> <salida>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/lru-config.json traza.bin fisicas.bin\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("INFO", "Simulador")

	rutaConfig := os.Args[1]
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	config, err := utils.CargarConfiguracion[SimuladorConfig](rutaConfig)
	if err != nil {
		utils.ErrorLog.Error("Error cargando configuración", "error", err)
		os.Exit(1)
	}

	utils.InicializarLogger(config.LogLevel, "Simulador")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	if err := ejecutar(config, os.Args[2], os.Args[3], os.Stdout); err != nil {
		utils.ErrorLog.Error("Simulación abortada", "error", err)
		os.Exit(1)
	}
}

// ejecutar traduce la traza de entrada y deja las direcciones físicas en la
// salida. Lo traducido antes de un error queda escrito.
func ejecutar(config *SimuladorConfig, rutaEntrada, rutaSalida string, stdout io.Writer) error {
	formatoEntrada, err := traza.ParsearFormato(config.FormatoEntrada)
	if err != nil {
		return fmt.Errorf("FORMATO_ENTRADA: %w", err)
	}
	formatoSalida, err := traza.ParsearFormato(config.FormatoSalida)
	if err != nil {
		return fmt.Errorf("FORMATO_SALIDA: %w", err)
	}

	// En modo local la configuración se valida antes de tocar los archivos
	var motor *paginacion.Motor
	if !config.MemoriaRemota {
		motor, err = paginacion.NuevoMotor(config.Configuracion, utils.InfoLog)
		if err != nil {
			return err
		}
	}

	entrada, err := traza.Abrir(rutaEntrada, formatoEntrada, config.UsarMmap)
	if err != nil {
		return err
	}
	defer entrada.Close()

	archivoSalida, err := os.Create(rutaSalida)
	if err != nil {
		return fmt.Errorf("error al crear la salida: %w", err)
	}
	defer archivoSalida.Close()

	escritor, err := traza.NuevoEscritor(archivoSalida, formatoSalida)
	if err != nil {
		return err
	}

	utils.InfoLog.Info("Iniciando traducción",
		"politica", config.Tipo(),
		"entrada", rutaEntrada,
		"salida", rutaSalida,
		"remota", config.MemoriaRemota,
		"mmap", config.UsarMmap)

	var resultado paginacion.Resultado
	if motor != nil {
		resultado, err = motor.Ejecutar(entrada, escritor)
	} else {
		resultado, err = traducirRemoto(config, entrada, escritor)
	}

	if errFlush := escritor.Flush(); errFlush != nil && err == nil {
		err = fmt.Errorf("error al escribir la salida: %w", errFlush)
	}

	if motor != nil && config.DumpPath != "" {
		if _, errDump := crearDump(motor, config.DumpPath); errDump != nil && err == nil {
			err = errDump
		}
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Fallos de página: %d\n", resultado.Fallos)
	return nil
}
