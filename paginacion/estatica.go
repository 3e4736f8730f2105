package paginacion

// Estatica usa una tabla fija página -> marco; nunca hay fallos
type Estatica struct {
	tabla []int
}

func NuevaEstatica(tabla []int) *Estatica {
	copia := make([]int, len(tabla))
	copy(copia, tabla)
	return &Estatica{tabla: copia}
}

func (e *Estatica) Nombre() string {
	return string(PoliticaEstatica)
}

// Marco resuelve la página contra la tabla fija
func (e *Estatica) Marco(pagina uint64) (int, bool) {
	if pagina >= uint64(len(e.tabla)) || e.tabla[pagina] == SinMarco {
		return SinMarco, false
	}
	return e.tabla[pagina], true
}

// AsignarMarco solo se alcanza con páginas sin marco en la tabla fija
func (e *Estatica) AsignarMarco(pagina uint64) (int, error) {
	if marco, ok := e.Marco(pagina); ok {
		return marco, nil
	}
	return SinMarco, &ErrorPaginaInvalida{Pagina: pagina, Motivo: "sin marco asignado en la tabla estática"}
}

func (e *Estatica) Acceder(int) {}
