package paginacion

import (
	"bufio"
	"fmt"
	"io"
)

// Volcar escribe el estado final de la tabla de páginas: una cabecera con las
// estadísticas y una línea "pagina marco" por página residente.
func (m *Motor) Volcar(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# politica=%s tam_pagina=%d traducciones=%d fallos=%d reemplazos=%d\n",
		m.politica.Nombre(), m.codec.TamPagina(),
		m.metricas.Traducciones, m.metricas.Fallos, m.metricas.Reemplazos)

	for _, r := range m.tabla.Residentes() {
		fmt.Fprintf(bw, "%d %d\n", r.Pagina, r.Marco)
	}

	return bw.Flush()
}
