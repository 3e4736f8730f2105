package traza

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lector entrega direcciones lógicas de a una; io.EOF marca el final.
// Satisface paginacion.Secuencia.
type Lector interface {
	Siguiente() (uint64, error)
}

// NuevoLector arma el lector adecuado para el formato
func NuevoLector(r io.Reader, formato Formato) (Lector, error) {
	switch formato {
	case Binario64, Binario32:
		return &lectorBinario{r: bufio.NewReader(r), ancho: formato.Ancho()}, nil
	case Decimal:
		return &lectorDecimal{scanner: bufio.NewScanner(r)}, nil
	default:
		return nil, fmt.Errorf("formato de traza desconocido %q", formato)
	}
}

type lectorBinario struct {
	r     io.Reader
	ancho int
	buf   [8]byte
	n     int
}

func (l *lectorBinario) Siguiente() (uint64, error) {
	registro := l.buf[:l.ancho]
	if _, err := io.ReadFull(l.r, registro); err != nil {
		// un registro incompleto al final se descarta
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	l.n++

	return decodificarRegistro(registro, l.n)
}

func decodificarRegistro(registro []byte, n int) (uint64, error) {
	if len(registro) == 8 {
		return binary.LittleEndian.Uint64(registro), nil
	}
	valor := int32(binary.LittleEndian.Uint32(registro))
	if valor < 0 {
		return 0, fmt.Errorf("registro %d: dirección negativa %d", n, valor)
	}
	return uint64(valor), nil
}

type lectorDecimal struct {
	scanner *bufio.Scanner
	linea   int
}

func (l *lectorDecimal) Siguiente() (uint64, error) {
	for l.scanner.Scan() {
		l.linea++
		texto := strings.TrimSpace(l.scanner.Text())
		if texto == "" {
			continue
		}
		valor, err := strconv.ParseUint(texto, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("línea %d: dirección inválida %q: %w", l.linea, texto, err)
		}
		return valor, nil
	}
	if err := l.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}
