// Package traza lee y escribe secuencias de direcciones en los formatos de
// registro que usan los archivos de traza.
package traza

import (
	"fmt"
	"strings"
)

type Formato string

const (
	// Binario64 son registros de 8 bytes little endian sin signo
	Binario64 Formato = "BINARIO64"
	// Binario32 son registros de 4 bytes little endian con signo
	Binario32 Formato = "BINARIO32"
	// Decimal es un entero decimal por línea
	Decimal Formato = "DECIMAL"
)

// ParsearFormato acepta el nombre sin distinguir mayúsculas; vacío equivale a Binario64
func ParsearFormato(nombre string) (Formato, error) {
	switch f := Formato(strings.ToUpper(strings.TrimSpace(nombre))); f {
	case "":
		return Binario64, nil
	case Binario64, Binario32, Decimal:
		return f, nil
	default:
		return "", fmt.Errorf("formato de traza desconocido %q", nombre)
	}
}

// Ancho es el tamaño de registro en bytes; 0 para Decimal
func (f Formato) Ancho() int {
	switch f {
	case Binario64:
		return 8
	case Binario32:
		return 4
	default:
		return 0
	}
}
