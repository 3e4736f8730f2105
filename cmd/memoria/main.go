package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

var modulo *utils.Modulo

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	inicializarModulo(os.Args[1])

	// Esperar señal de terminación
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	utils.InfoLog.Info("Señal recibida. Finalizando Memoria")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := modulo.Server.Shutdown(ctx); err != nil {
		utils.ErrorLog.Error("Error cerrando servidor HTTP", "error", err)
		os.Exit(1)
	}
}

func inicializarModulo(rutaConfig string) {
	// Verificar que el archivo existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	modulo = utils.NuevoModulo("Memoria", rutaConfig)

	if err := cargarConfiguracion(); err != nil {
		utils.ErrorLog.Error("Error cargando configuración", "error", err)
		os.Exit(1)
	}

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	inicializarMemoria()
	registrarHandlers()

	modulo.IniciarServidor(config.IPMemory, config.PortMemory)
	utils.InfoLog.Info("Servidor iniciado", "ip", config.IPMemory, "puerto", config.PortMemory)
}

// cargarConfiguracion lee el archivo registrado en el módulo
func cargarConfiguracion() error {
	cfg, err := utils.CargarConfiguracion[MemoryConfig](modulo.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.PortMemory <= 0 {
		return fmt.Errorf("PUERTO_MEMORIA inválido en %s: %d", modulo.ConfigPath, cfg.PortMemory)
	}
	config = cfg
	return nil
}
