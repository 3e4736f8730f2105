package paginacion

// Estadisticas almacena los contadores de una ejecución
type Estadisticas struct {
	Traducciones int `json:"traducciones"`
	Aciertos     int `json:"aciertos"`
	Fallos       int `json:"fallos"`
	Reemplazos   int `json:"reemplazos"` // Fallos que desalojaron una página
}

// TasaFallos es la proporción de traducciones que produjeron un fallo
func (e Estadisticas) TasaFallos() float64 {
	if e.Traducciones == 0 {
		return 0
	}
	return float64(e.Fallos) / float64(e.Traducciones)
}

func (m *Motor) actualizarMetricasAcierto(pagina uint64, marco int) {
	m.metricas.Aciertos++
	m.log.Debug("Página presente", "pagina", pagina, "marco", marco, "total_aciertos", m.metricas.Aciertos)
}

func (m *Motor) actualizarMetricasFallo(pagina uint64, marco int) {
	m.metricas.Fallos++
	m.log.Debug("Fallo de página", "pagina", pagina, "marco", marco, "total_fallos", m.metricas.Fallos)
}

func (m *Motor) actualizarMetricasReemplazo(victima uint64, marco int) {
	m.metricas.Reemplazos++
	m.log.Debug("Página desalojada", "victima", victima, "marco", marco, "total_reemplazos", m.metricas.Reemplazos)
}
