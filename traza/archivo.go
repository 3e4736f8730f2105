package traza

import (
	"fmt"
	"io"
	"os"
)

// ArchivoTraza es un lector sobre un archivo abierto que hay que cerrar
type ArchivoTraza struct {
	Lector
	io.Closer
}

// Abrir abre la traza de entrada; con mapear=true la lee vía mmap
func Abrir(ruta string, formato Formato, mapear bool) (*ArchivoTraza, error) {
	if mapear {
		m, err := AbrirMapeado(ruta)
		if err != nil {
			return nil, err
		}
		lector, err := m.Lector(formato)
		if err != nil {
			m.Close()
			return nil, err
		}
		return &ArchivoTraza{Lector: lector, Closer: m}, nil
	}

	file, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la traza: %w", err)
	}
	lector, err := NuevoLector(file, formato)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &ArchivoTraza{Lector: lector, Closer: file}, nil
}
