package paginacion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Motor traduce direcciones lógicas a físicas para una única ejecución.
// No es seguro para uso concurrente: las direcciones se procesan en orden.
type Motor struct {
	codec    Codec
	tabla    TablaPaginas
	marcos   *TablaMarcos
	politica Politica
	metricas Estadisticas
	log      *slog.Logger
}

// Resultado resume una ejecución completa
type Resultado struct {
	Traducidas   int          `json:"traducidas"`
	Fallos       int          `json:"fallos"`
	Estadisticas Estadisticas `json:"estadisticas"`
}

// NuevoMotor valida la configuración y deja la tabla, los marcos y la
// política inicializados. Con logger nil usa slog.Default().
func NuevoMotor(cfg Configuracion, logger *slog.Logger) (*Motor, error) {
	if err := cfg.Validar(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	codec, err := NuevoCodec(cfg.TamPagina)
	if err != nil {
		return nil, err
	}

	numMarcos := cfg.NumMarcos()
	numPaginas := cfg.NumPaginas()
	marcos := NuevaTablaMarcos(numMarcos, cfg.MarcoCeroReservado())

	var tabla TablaPaginas
	if cfg.UsaBusquedaLineal() {
		tabla = NuevaTablaLineal(numPaginas, numMarcos)
	} else {
		tabla = NuevaTablaIndexada(numPaginas)
	}

	politica, err := NuevaPolitica(cfg, marcos)
	if err != nil {
		return nil, err
	}

	m := &Motor{
		codec:    codec,
		tabla:    tabla,
		marcos:   marcos,
		politica: politica,
		log:      logger.With("politica", politica.Nombre()),
	}

	if cfg.Tipo() == PoliticaEstatica {
		if err := m.cargarTablaEstatica(cfg.TablaEstatica); err != nil {
			return nil, err
		}
	}

	m.log.Info("Motor de traducción inicializado",
		"tam_pagina", cfg.TamPagina,
		"paginas", numPaginas,
		"marcos", numMarcos,
		"marcos_paginables", marcos.Paginables(),
		"busqueda_lineal", cfg.UsaBusquedaLineal())

	return m, nil
}

func (m *Motor) cargarTablaEstatica(tablaFija []int) error {
	for pagina, marco := range tablaFija {
		if marco == SinMarco {
			continue
		}
		if err := m.tabla.Asignar(uint64(pagina), marco); err != nil {
			return err
		}
		if err := m.marcos.Ocupar(marco, uint64(pagina)); err != nil {
			return errorConfiguracion("%v", err)
		}
	}
	return nil
}

// Traducir devuelve la dirección física de una dirección lógica. Un error de
// página inválida es terminal para la ejecución.
func (m *Motor) Traducir(logica uint64) (uint64, error) {
	pagina, desplazamiento := m.codec.Decodificar(logica)

	if pagina >= m.tabla.Capacidad() {
		m.log.Debug("Número de página fuera de rango", "pagina", pagina, "direccion", logica)
		return 0, &ErrorPaginaInvalida{
			Pagina:    pagina,
			Direccion: logica,
			Motivo:    fmt.Sprintf("fuera de rango [0, %d)", m.tabla.Capacidad()),
		}
	}

	marco, presente := m.tabla.Buscar(pagina)
	if presente {
		m.actualizarMetricasAcierto(pagina, marco)
	} else {
		var err error
		marco, err = m.resolverFallo(pagina)
		if err != nil {
			var invalida *ErrorPaginaInvalida
			if errors.As(err, &invalida) {
				invalida.Direccion = logica
			}
			m.log.Debug("Error resolviendo fallo de página", "pagina", pagina, "direccion", logica, "error", err)
			return 0, err
		}
	}

	m.politica.Acceder(marco)
	m.metricas.Traducciones++

	return m.codec.Codificar(marco, desplazamiento), nil
}

// resolverFallo pide un marco a la política, desaloja a su ocupante y carga la página
func (m *Motor) resolverFallo(pagina uint64) (int, error) {
	marco, err := m.politica.AsignarMarco(pagina)
	if err != nil {
		return SinMarco, err
	}

	if victima, ocupado := m.marcos.Pagina(marco); ocupado {
		m.tabla.Liberar(victima)
		m.marcos.Liberar(marco)
		m.actualizarMetricasReemplazo(victima, marco)
	}

	if err := m.tabla.Asignar(pagina, marco); err != nil {
		return SinMarco, err
	}
	if err := m.marcos.Ocupar(marco, pagina); err != nil {
		return SinMarco, err
	}

	m.actualizarMetricasFallo(pagina, marco)
	return marco, nil
}

// Ejecutar consume la secuencia de a una dirección, escribe cada dirección
// física en el destino y se detiene ante el primer error.
func (m *Motor) Ejecutar(entrada Secuencia, salida Destino) (Resultado, error) {
	for {
		logica, err := entrada.Siguiente()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return m.Resultado(), fmt.Errorf("error leyendo la dirección %d: %w", m.metricas.Traducciones, err)
		}

		fisica, err := m.Traducir(logica)
		if err != nil {
			return m.Resultado(), err
		}

		if err := salida.Escribir(fisica); err != nil {
			return m.Resultado(), fmt.Errorf("error escribiendo la dirección %d: %w", fisica, err)
		}
	}

	m.log.Info("Traducción finalizada",
		"traducidas", m.metricas.Traducciones,
		"fallos", m.metricas.Fallos,
		"reemplazos", m.metricas.Reemplazos,
		"tasa_fallos", m.metricas.TasaFallos())

	return m.Resultado(), nil
}

func (m *Motor) Resultado() Resultado {
	return Resultado{
		Traducidas:   m.metricas.Traducciones,
		Fallos:       m.metricas.Fallos,
		Estadisticas: m.metricas,
	}
}

func (m *Motor) Fallos() int {
	return m.metricas.Fallos
}

func (m *Motor) Estadisticas() Estadisticas {
	return m.metricas
}

func (m *Motor) Politica() Politica {
	return m.politica
}

func (m *Motor) Codec() Codec {
	return m.codec
}

// Residentes lista las páginas cargadas ordenadas por número de página
func (m *Motor) Residentes() []Residente {
	return m.tabla.Residentes()
}
