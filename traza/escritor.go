package traza

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Escritor guarda direcciones físicas en el formato elegido. Satisface
// paginacion.Destino; hay que llamar a Flush al terminar.
type Escritor struct {
	w       *bufio.Writer
	formato Formato
	buf     [21]byte
}

func NuevoEscritor(w io.Writer, formato Formato) (*Escritor, error) {
	switch formato {
	case Binario64, Binario32, Decimal:
	default:
		return nil, fmt.Errorf("formato de traza desconocido %q", formato)
	}
	return &Escritor{w: bufio.NewWriter(w), formato: formato}, nil
}

func (e *Escritor) Escribir(fisica uint64) error {
	switch e.formato {
	case Binario64:
		binary.LittleEndian.PutUint64(e.buf[:8], fisica)
		_, err := e.w.Write(e.buf[:8])
		return err
	case Binario32:
		if fisica > math.MaxInt32 {
			return fmt.Errorf("la dirección %d no entra en un registro de 4 bytes", fisica)
		}
		binary.LittleEndian.PutUint32(e.buf[:4], uint32(fisica))
		_, err := e.w.Write(e.buf[:4])
		return err
	default:
		linea := strconv.AppendUint(e.buf[:0], fisica, 10)
		linea = append(linea, '\n')
		_, err := e.w.Write(linea)
		return err
	}
}

func (e *Escritor) Flush() error {
	return e.w.Flush()
}
