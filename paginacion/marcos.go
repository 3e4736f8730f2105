package paginacion

import "fmt"

// TablaMarcos lleva el mapeo inverso marco -> página y qué marcos están libres
type TablaMarcos struct {
	paginas  []uint64
	ocupados []bool
	primero  int // 1 si el marco 0 está reservado para el sistema operativo
}

func NuevaTablaMarcos(numMarcos int, reservarCero bool) *TablaMarcos {
	primero := 0
	if reservarCero {
		primero = 1
	}
	return &TablaMarcos{
		paginas:  make([]uint64, numMarcos),
		ocupados: make([]bool, numMarcos),
		primero:  primero,
	}
}

// Total incluye el marco reservado
func (t *TablaMarcos) Total() int {
	return len(t.ocupados)
}

// Primero es el primer marco paginable
func (t *TablaMarcos) Primero() int {
	return t.primero
}

func (t *TablaMarcos) Paginables() int {
	return len(t.ocupados) - t.primero
}

// PrimerLibre busca un marco libre en orden ascendente
func (t *TablaMarcos) PrimerLibre() (int, bool) {
	for i := t.primero; i < len(t.ocupados); i++ {
		if !t.ocupados[i] {
			return i, true
		}
	}
	return SinMarco, false
}

// ContarLibres cuenta los marcos paginables libres
func (t *TablaMarcos) ContarLibres() int {
	count := 0
	for i := t.primero; i < len(t.ocupados); i++ {
		if !t.ocupados[i] {
			count++
		}
	}
	return count
}

// Pagina devuelve la página cargada en el marco
func (t *TablaMarcos) Pagina(marco int) (uint64, bool) {
	if marco < 0 || marco >= len(t.ocupados) || !t.ocupados[marco] {
		return 0, false
	}
	return t.paginas[marco], true
}

// Ocupar asigna el marco a la página; el marco debe estar libre
func (t *TablaMarcos) Ocupar(marco int, pagina uint64) error {
	if marco < t.primero || marco >= len(t.ocupados) {
		return fmt.Errorf("marco %d fuera de los marcos paginables [%d, %d)", marco, t.primero, len(t.ocupados))
	}
	if t.ocupados[marco] {
		return fmt.Errorf("el marco %d ya contiene la página %d", marco, t.paginas[marco])
	}
	t.paginas[marco] = pagina
	t.ocupados[marco] = true
	return nil
}

func (t *TablaMarcos) Liberar(marco int) {
	if marco >= 0 && marco < len(t.ocupados) {
		t.ocupados[marco] = false
		t.paginas[marco] = 0
	}
}
