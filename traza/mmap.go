package traza

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Mapeo es un archivo de traza mapeado en memoria de solo lectura
type Mapeo struct {
	file *os.File
	data []byte
}

// AbrirMapeado mapea el archivo completo. Un archivo vacío no se mapea.
func AbrirMapeado(ruta string) (*Mapeo, error) {
	file, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la traza: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("error al obtener el tamaño de la traza: %w", err)
	}

	m := &Mapeo{file: file}
	if info.Size() == 0 {
		return m, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("error al mapear la traza: %w", err)
	}
	m.data = data

	return m, nil
}

// Lector recorre el mapeo sin copiar los registros binarios.
// WARNING: el lector deja de ser válido después de Close.
func (m *Mapeo) Lector(formato Formato) (Lector, error) {
	switch formato {
	case Binario64, Binario32:
		return &lectorMapeado{data: m.data, ancho: formato.Ancho()}, nil
	default:
		return NuevoLector(bytes.NewReader(m.data), formato)
	}
}

// Close desmapea y cierra el archivo
func (m *Mapeo) Close() error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return fmt.Errorf("error al desmapear la traza: %w", err)
		}
		m.data = nil
	}
	if m.file != nil {
		if err := m.file.Close(); err != nil {
			return fmt.Errorf("error al cerrar la traza: %w", err)
		}
		m.file = nil
	}
	return nil
}

type lectorMapeado struct {
	data  []byte
	pos   int
	ancho int
	n     int
}

func (l *lectorMapeado) Siguiente() (uint64, error) {
	if l.pos+l.ancho > len(l.data) {
		return 0, io.EOF
	}
	registro := l.data[l.pos : l.pos+l.ancho]
	l.pos += l.ancho
	l.n++

	return decodificarRegistro(registro, l.n)
}
