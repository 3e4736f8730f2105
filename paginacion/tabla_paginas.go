package paginacion

import (
	"fmt"
	"sort"
)

// SinMarco marca una página sin marco asignado
const SinMarco = -1

// EntradaTabla representa una entrada en la tabla de páginas
type EntradaTabla struct {
	Marco    int  // Número de marco asignado
	Presente bool // Indica si la página está en memoria principal
}

// Residente es un par página-marco cargado en memoria
type Residente struct {
	Pagina uint64 `json:"pagina"`
	Marco  int    `json:"marco"`
}

// TablaPaginas mapea páginas a marcos
type TablaPaginas interface {
	// Buscar devuelve el marco de la página si está presente
	Buscar(pagina uint64) (int, bool)
	// Asignar registra la página como presente en el marco
	Asignar(pagina uint64, marco int) error
	// Liberar marca la página como no presente
	Liberar(pagina uint64)
	// Capacidad es la cantidad de páginas representables
	Capacidad() uint64
	// Residentes lista las páginas presentes ordenadas por número de página
	Residentes() []Residente
}

// tablaIndexada solo guarda las páginas presentes: la capacidad puede ser
// enorme sin reservar memoria por adelantado
type tablaIndexada struct {
	entradas  map[uint64]EntradaTabla
	capacidad uint64
}

// NuevaTablaIndexada crea una tabla con búsqueda O(1) por número de página
func NuevaTablaIndexada(numPaginas uint64) TablaPaginas {
	return &tablaIndexada{
		entradas:  make(map[uint64]EntradaTabla),
		capacidad: numPaginas,
	}
}

func (t *tablaIndexada) Buscar(pagina uint64) (int, bool) {
	entrada, existe := t.entradas[pagina]
	if !existe || !entrada.Presente {
		return SinMarco, false
	}
	return entrada.Marco, true
}

func (t *tablaIndexada) Asignar(pagina uint64, marco int) error {
	if pagina >= t.capacidad {
		return &ErrorPaginaInvalida{
			Pagina: pagina,
			Motivo: fmt.Sprintf("fuera de la tabla de %d páginas", t.capacidad),
		}
	}
	t.entradas[pagina] = EntradaTabla{Marco: marco, Presente: true}
	return nil
}

func (t *tablaIndexada) Liberar(pagina uint64) {
	delete(t.entradas, pagina)
}

func (t *tablaIndexada) Capacidad() uint64 {
	return t.capacidad
}

func (t *tablaIndexada) Residentes() []Residente {
	residentes := make([]Residente, 0, len(t.entradas))
	for pagina, entrada := range t.entradas {
		if entrada.Presente {
			residentes = append(residentes, Residente{Pagina: pagina, Marco: entrada.Marco})
		}
	}
	ordenarResidentes(residentes)
	return residentes
}

// tablaLineal guarda la página cargada en cada marco y busca recorriendo los marcos
type tablaLineal struct {
	paginas   []uint64
	presentes []bool
	capacidad uint64
}

// NuevaTablaLineal crea una tabla de una entrada por marco; Buscar es O(numMarcos)
func NuevaTablaLineal(numPaginas uint64, numMarcos int) TablaPaginas {
	return &tablaLineal{
		paginas:   make([]uint64, numMarcos),
		presentes: make([]bool, numMarcos),
		capacidad: numPaginas,
	}
}

func (t *tablaLineal) Buscar(pagina uint64) (int, bool) {
	for marco := range t.paginas {
		if t.presentes[marco] && t.paginas[marco] == pagina {
			return marco, true
		}
	}
	return SinMarco, false
}

func (t *tablaLineal) Asignar(pagina uint64, marco int) error {
	if pagina >= t.capacidad {
		return &ErrorPaginaInvalida{
			Pagina: pagina,
			Motivo: fmt.Sprintf("fuera de la tabla de %d páginas", t.capacidad),
		}
	}
	if marco < 0 || marco >= len(t.paginas) {
		return fmt.Errorf("marco %d fuera de rango [0, %d)", marco, len(t.paginas))
	}
	t.paginas[marco] = pagina
	t.presentes[marco] = true
	return nil
}

func (t *tablaLineal) Liberar(pagina uint64) {
	if marco, presente := t.Buscar(pagina); presente {
		t.presentes[marco] = false
	}
}

func (t *tablaLineal) Capacidad() uint64 {
	return t.capacidad
}

func (t *tablaLineal) Residentes() []Residente {
	var residentes []Residente
	for marco, pagina := range t.paginas {
		if t.presentes[marco] {
			residentes = append(residentes, Residente{Pagina: pagina, Marco: marco})
		}
	}
	ordenarResidentes(residentes)
	return residentes
}

func ordenarResidentes(residentes []Residente) {
	sort.Slice(residentes, func(i, j int) bool {
		return residentes[i].Pagina < residentes[j].Pagina
	})
}
