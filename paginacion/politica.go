package paginacion

// Politica decide qué marco atiende un fallo de página
type Politica interface {
	Nombre() string
	// AsignarMarco elige un marco libre o, si no hay, una víctima.
	// El motor desaloja la página que ocupaba la víctima.
	AsignarMarco(pagina uint64) (int, error)
	// Acceder se llama después de cada traducción exitosa
	Acceder(marco int)
}

// NuevaPolitica construye la política indicada por la configuración
func NuevaPolitica(cfg Configuracion, marcos *TablaMarcos) (Politica, error) {
	switch cfg.Tipo() {
	case PoliticaEstatica:
		return NuevaEstatica(cfg.TablaEstatica), nil
	case PoliticaLRU:
		return NuevaLRU(marcos), nil
	case PoliticaFIFO:
		return NuevaFIFO(marcos), nil
	default:
		return nil, errorConfiguracion("política desconocida %q", cfg.Politica)
	}
}
