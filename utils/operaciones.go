package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// DecodificarDatos convierte los datos genéricos de un mensaje al tipo pedido
func DecodificarDatos[T any](msg *Mensaje) (*T, error) {
	if msg.Datos == nil {
		return nil, fmt.Errorf("mensaje de %s sin datos", msg.Origen)
	}

	crudo, err := json.Marshal(msg.Datos)
	if err != nil {
		return nil, fmt.Errorf("error al serializar datos: %w", err)
	}

	var datos T
	if err := json.Unmarshal(crudo, &datos); err != nil {
		return nil, fmt.Errorf("formato de datos incorrecto: %w", err)
	}
	return &datos, nil
}

// HandlerGenerico registra la operación, aplica el retardo y delega en el procesador
func HandlerGenerico(msg *Mensaje, retardoMs int, procesador func(msg *Mensaje) (interface{}, error)) (interface{}, error) {
	slog.Info("Operación recibida", "origen", msg.Origen, "tipo", msg.Tipo, "operacion", msg.Operacion)

	AplicarRetardo("procesamiento", retardoMs)

	return procesador(msg)
}
