package paginacion

import "io"

// Secuencia entrega direcciones lógicas de a una; io.EOF indica el final.
// Es de una sola pasada y no se puede reiniciar.
type Secuencia interface {
	Siguiente() (uint64, error)
}

// Destino recibe las direcciones físicas en el orden de entrada
type Destino interface {
	Escribir(fisica uint64) error
}

// SecuenciaMemoria recorre un slice ya cargado
type SecuenciaMemoria struct {
	direcciones []uint64
	pos         int
}

func NuevaSecuencia(direcciones []uint64) *SecuenciaMemoria {
	return &SecuenciaMemoria{direcciones: direcciones}
}

func (s *SecuenciaMemoria) Siguiente() (uint64, error) {
	if s.pos >= len(s.direcciones) {
		return 0, io.EOF
	}
	d := s.direcciones[s.pos]
	s.pos++
	return d, nil
}

// DestinoMemoria acumula las direcciones físicas
type DestinoMemoria struct {
	Direcciones []uint64
}

func (d *DestinoMemoria) Escribir(fisica uint64) error {
	d.Direcciones = append(d.Direcciones, fisica)
	return nil
}
