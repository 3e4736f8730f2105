package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

// crearDump guarda la tabla de páginas final en <politica>-<timestamp>.dmp
func crearDump(motor *paginacion.Motor, dumpPath string) (string, error) {
	nombrePolitica := motor.Politica().Nombre()
	utils.InfoLog.Info("Iniciando dump de tabla de páginas", "politica", nombrePolitica)

	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("%s-%s.dmp", nombrePolitica, timestamp)
	rutaCompleta := filepath.Join(dumpPath, nombreArchivo)

	if err := os.MkdirAll(dumpPath, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio dump", "error", err)
		return "", fmt.Errorf("error al crear directorio para dumps: %w", err)
	}

	dumpFile, err := os.Create(rutaCompleta)
	if err != nil {
		utils.ErrorLog.Error("Error creando archivo dump", "archivo", rutaCompleta, "error", err)
		return "", fmt.Errorf("error al crear archivo de dump: %w", err)
	}
	defer dumpFile.Close()

	if err := motor.Volcar(dumpFile); err != nil {
		utils.ErrorLog.Error("Error escribiendo dump", "archivo", rutaCompleta, "error", err)
		return "", fmt.Errorf("error al escribir en archivo de dump: %w", err)
	}

	utils.InfoLog.Info(fmt.Sprintf("## Dump de tabla de páginas generado - Política: %s - Residentes: %d",
		nombrePolitica, len(motor.Residentes())), "ruta", rutaCompleta)

	return rutaCompleta, nil
}
