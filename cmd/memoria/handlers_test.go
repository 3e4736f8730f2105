package main

import (
	"bytes"
	"errors"
	"math"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LosCuervosXeneizes/simulador-paginacion/paginacion"
	"github.com/LosCuervosXeneizes/simulador-paginacion/utils"
)

func levantarMemoria(t *testing.T) *utils.HTTPClient {
	t.Helper()
	utils.InicializarLoggerEn(&bytes.Buffer{}, "error", "Memoria")

	config = &MemoryConfig{IPMemory: "127.0.0.1", MaxSimulaciones: 2}
	modulo = utils.NuevoModulo("Memoria", "")
	inicializarMemoria()
	registrarHandlers()

	srv := httptest.NewServer(modulo.ConstruirServidor(config.IPMemory, 0).Handler())
	t.Cleanup(srv.Close)
	return utils.NewHTTPClientURL(srv.URL, "Simulador")
}

func TestHandshake(t *testing.T) {
	cliente := levantarMemoria(t)

	var resp map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeHandshake, "", nil, &resp); err != nil {
		t.Fatalf("handshake falló: %v", err)
	}
	if resp["status"] != "OK" {
		t.Errorf("status inesperado: %v", resp["status"])
	}
	if politicas, ok := resp["politicas"].([]interface{}); !ok || len(politicas) != 3 {
		t.Errorf("esperaba las tres políticas, obtuve %v", resp["politicas"])
	}
}

func TestTraducirTraza(t *testing.T) {
	cliente := levantarMemoria(t)

	sol := paginacion.Solicitud{
		Configuracion: paginacion.Configuracion{Politica: paginacion.PoliticaFIFO, TamPagina: 128, TamMemoriaVirtual: 4096, TamMemoria: 256},
		Direcciones:   []uint64{5, 130, 300, 7},
	}
	var resp paginacion.Respuesta
	if err := cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", sol, &resp); err != nil {
		t.Fatalf("traducción falló: %v", err)
	}
	if err := resp.Err(); err != nil {
		t.Fatalf("error inesperado en la respuesta: %v", err)
	}

	esperadas := []uint64{5, 130, 44, 135}
	if len(resp.DireccionesFisicas) != len(esperadas) {
		t.Fatalf("esperaba %d direcciones, obtuve %v", len(esperadas), resp.DireccionesFisicas)
	}
	for i, d := range esperadas {
		if resp.DireccionesFisicas[i] != d {
			t.Errorf("dirección %d: esperaba %d, obtuve %d", i, d, resp.DireccionesFisicas[i])
		}
	}
	if resp.Fallos != 4 {
		t.Errorf("esperaba 4 fallos, obtuve %d", resp.Fallos)
	}
	if semaforoSimulaciones.EnUso() != 0 {
		t.Errorf("el semáforo quedó tomado: %d", semaforoSimulaciones.EnUso())
	}
}

func TestTraducirPaginaInvalida(t *testing.T) {
	cliente := levantarMemoria(t)

	sol := paginacion.Solicitud{
		Configuracion: paginacion.Configuracion{
			Politica:      paginacion.PoliticaEstatica,
			TamPagina:     128,
			TamMemoria:    512,
			TablaEstatica: []int{2, 0},
		},
		Direcciones: []uint64{1, 130, 5 * 128},
	}
	var resp paginacion.Respuesta
	if err := cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", sol, &resp); err != nil {
		t.Fatalf("traducción falló: %v", err)
	}

	if !errors.Is(resp.Err(), paginacion.ErrPaginaInvalida) {
		t.Fatalf("esperaba página inválida, obtuve %v", resp.Err())
	}
	if resp.PaginaInvalida == nil || *resp.PaginaInvalida != 5 {
		t.Errorf("página inválida inesperada: %v", resp.PaginaInvalida)
	}
	if len(resp.DireccionesFisicas) != 2 || resp.DireccionesFisicas[0] != 257 || resp.DireccionesFisicas[1] != 2 {
		t.Errorf("esperaba las direcciones previas al error, obtuve %v", resp.DireccionesFisicas)
	}
}

func TestTraducirSinDatos(t *testing.T) {
	cliente := levantarMemoria(t)

	var resp paginacion.Respuesta
	if err := cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", nil, &resp); err == nil {
		t.Error("esperaba error HTTP para un mensaje sin datos")
	}
}

func TestMetricasPorOrigen(t *testing.T) {
	cliente := levantarMemoria(t)

	sol := paginacion.Solicitud{
		Configuracion: paginacion.Configuracion{Politica: paginacion.PoliticaLRU, TamPagina: 128, TamMemoriaVirtual: 4096, TamMemoria: 384},
		Direcciones:   []uint64{0, 128, 0, 256},
	}
	for i := 0; i < 2; i++ {
		var resp paginacion.Respuesta
		if err := cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", sol, &resp); err != nil {
			t.Fatalf("traducción %d falló: %v", i, err)
		}
	}

	var metricas map[string]MetricasOrigen
	if err := cliente.EnviarHTTPMensaje(utils.MensajeOperacion, "METRICAS", nil, &metricas); err != nil {
		t.Fatalf("consulta de métricas falló: %v", err)
	}
	m, ok := metricas["Simulador"]
	if !ok {
		t.Fatalf("no hay métricas para el origen: %v", metricas)
	}
	if m.Simulaciones != 2 || m.Traducciones != 8 || m.Errores != 0 {
		t.Errorf("métricas inesperadas: %+v", m)
	}
	// LRU con dos marcos paginables: 0, 1, 0 acierta, 2 desaloja a 1
	if m.Fallos != 6 {
		t.Errorf("esperaba 6 fallos acumulados, obtuve %d", m.Fallos)
	}
}

func TestTraducirDireccionesDe64Bits(t *testing.T) {
	cliente := levantarMemoria(t)

	// FIFO con tabla lineal: la memoria virtual enorme no reserva nada
	sol := paginacion.Solicitud{
		Configuracion: paginacion.Configuracion{Politica: paginacion.PoliticaFIFO, TamPagina: 128, TamMemoriaVirtual: math.MaxInt64, TamMemoria: 256},
		Direcciones:   []uint64{1<<62 | 5, 1<<62 | 128 + 7, math.MaxUint64},
	}
	var resp paginacion.Respuesta
	if err := cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", sol, &resp); err != nil {
		t.Fatalf("traducción falló: %v", err)
	}

	esperadas := []uint64{5, 135}
	if len(resp.DireccionesFisicas) != len(esperadas) {
		t.Fatalf("esperaba %d direcciones, obtuve %v", len(esperadas), resp.DireccionesFisicas)
	}
	for i, d := range esperadas {
		if resp.DireccionesFisicas[i] != d {
			t.Errorf("dirección %d: esperaba %d, obtuve %d", i, d, resp.DireccionesFisicas[i])
		}
	}

	if !errors.Is(resp.Err(), paginacion.ErrPaginaInvalida) {
		t.Fatalf("esperaba página inválida para la última dirección, obtuve %v", resp.Err())
	}
	if resp.PaginaInvalida == nil || *resp.PaginaInvalida != math.MaxUint64>>7 {
		t.Errorf("página inválida inesperada: %v", resp.PaginaInvalida)
	}
}

func TestTraducirEsperaLugarLibre(t *testing.T) {
	cliente := levantarMemoria(t)

	// Ocupar todos los lugares para que la solicitud tenga que esperar
	for i := 0; i < config.MaxSimulaciones; i++ {
		semaforoSimulaciones.Wait()
	}

	sol := paginacion.Solicitud{
		Configuracion: paginacion.Configuracion{Politica: paginacion.PoliticaFIFO, TamPagina: 128, TamMemoriaVirtual: 4096, TamMemoria: 256},
		Direcciones:   []uint64{5},
	}
	terminada := make(chan error, 1)
	go func() {
		var resp paginacion.Respuesta
		terminada <- cliente.EnviarHTTPMensaje(utils.MensajeTraducir, "", sol, &resp)
	}()

	select {
	case err := <-terminada:
		t.Fatalf("la traducción no debería terminar sin lugar libre (err=%v)", err)
	case <-time.After(100 * time.Millisecond):
	}

	semaforoSimulaciones.Signal()
	select {
	case err := <-terminada:
		if err != nil {
			t.Fatalf("traducción falló: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("la traducción no terminó después de liberar un lugar")
	}

	for i := 1; i < config.MaxSimulaciones; i++ {
		semaforoSimulaciones.Signal()
	}
	if semaforoSimulaciones.EnUso() != 0 {
		t.Errorf("el semáforo quedó tomado: %d", semaforoSimulaciones.EnUso())
	}
}

func TestCargarConfiguracionDelModulo(t *testing.T) {
	utils.InicializarLoggerEn(&bytes.Buffer{}, "error", "Memoria")
	dir := t.TempDir()

	ruta := filepath.Join(dir, "memoria-config.json")
	contenido := `{"IP_MEMORIA": "127.0.0.1", "PUERTO_MEMORIA": 8002, "LOG_LEVEL": "DEBUG", "RETARDO_MEMORIA": 10, "MAX_SIMULACIONES": 3}`
	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		t.Fatalf("no se pudo escribir la configuración: %v", err)
	}

	modulo = utils.NuevoModulo("Memoria", ruta)
	if err := cargarConfiguracion(); err != nil {
		t.Fatalf("cargarConfiguracion falló: %v", err)
	}
	if config.PortMemory != 8002 || config.MaxSimulaciones != 3 || config.MemoryDelay != 10 {
		t.Errorf("configuración inesperada: %+v", config)
	}

	sinPuerto := filepath.Join(dir, "sin-puerto.json")
	if err := os.WriteFile(sinPuerto, []byte(`{"IP_MEMORIA": "127.0.0.1"}`), 0644); err != nil {
		t.Fatalf("no se pudo escribir la configuración: %v", err)
	}
	modulo = utils.NuevoModulo("Memoria", sinPuerto)
	if err := cargarConfiguracion(); err == nil {
		t.Error("esperaba error sin PUERTO_MEMORIA")
	}
}
