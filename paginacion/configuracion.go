package paginacion

import "strings"

type TipoPolitica string

const (
	PoliticaEstatica TipoPolitica = "ESTATICA"
	PoliticaLRU      TipoPolitica = "LRU"
	PoliticaFIFO     TipoPolitica = "FIFO"
)

// MaxMarcos acota la memoria física: los marcos se reservan al crear el motor
const MaxMarcos = 1 << 20

// Configuracion representa los parámetros de una simulación
type Configuracion struct {
	Politica          TipoPolitica `json:"POLITICA"`
	TamPagina         int          `json:"TAM_PAGINA"`          // Tamaño de página en bytes
	TamMemoriaVirtual int          `json:"TAM_MEMORIA_VIRTUAL"` // Acota los números de página válidos
	TamMemoria        int          `json:"TAM_MEMORIA"`         // Memoria física en bytes
	TablaEstatica     []int        `json:"TABLA_ESTATICA,omitempty"`
	ReservarMarcoCero *bool        `json:"RESERVAR_MARCO_CERO,omitempty"`
	BusquedaLineal    *bool        `json:"BUSQUEDA_LINEAL,omitempty"`
}

func (c Configuracion) Tipo() TipoPolitica {
	return TipoPolitica(strings.ToUpper(strings.TrimSpace(string(c.Politica))))
}

// NumMarcos es la cantidad total de marcos, incluido el reservado
func (c Configuracion) NumMarcos() int {
	if c.TamPagina <= 0 {
		return 0
	}
	return c.TamMemoria / c.TamPagina
}

// NumPaginas es la capacidad de la tabla de páginas
func (c Configuracion) NumPaginas() uint64 {
	if c.Tipo() == PoliticaEstatica {
		return uint64(len(c.TablaEstatica))
	}
	if c.TamPagina <= 0 || c.TamMemoriaVirtual <= 0 {
		return 0
	}
	return uint64(c.TamMemoriaVirtual / c.TamPagina)
}

// MarcoCeroReservado: por defecto solo LRU reserva el marco 0 para el sistema operativo
func (c Configuracion) MarcoCeroReservado() bool {
	if c.ReservarMarcoCero != nil {
		return *c.ReservarMarcoCero
	}
	return c.Tipo() == PoliticaLRU
}

// UsaBusquedaLineal: por defecto FIFO recorre la tabla en lugar de indexarla
func (c Configuracion) UsaBusquedaLineal() bool {
	if c.BusquedaLineal != nil {
		return *c.BusquedaLineal
	}
	return c.Tipo() == PoliticaFIFO
}

// Validar rechaza la configuración antes de traducir cualquier dirección
func (c Configuracion) Validar() error {
	if _, err := NuevoCodec(c.TamPagina); err != nil {
		return err
	}
	if c.TamMemoria <= 0 {
		return errorConfiguracion("tamaño de memoria física no positivo: %d", c.TamMemoria)
	}

	numMarcos := c.NumMarcos()
	if numMarcos > MaxMarcos {
		return errorConfiguracion("la memoria física (%d bytes) define %d marcos, el máximo es %d",
			c.TamMemoria, numMarcos, MaxMarcos)
	}
	primero := 0
	if c.MarcoCeroReservado() {
		primero = 1
	}
	if numMarcos-primero < 1 {
		return errorConfiguracion("la memoria física (%d bytes) no alcanza para un marco paginable de %d bytes",
			c.TamMemoria, c.TamPagina)
	}

	switch c.Tipo() {
	case PoliticaEstatica:
		return c.validarTablaEstatica(numMarcos, primero)
	case PoliticaLRU, PoliticaFIFO:
		if c.TamMemoriaVirtual <= 0 {
			return errorConfiguracion("tamaño de memoria virtual no positivo: %d", c.TamMemoriaVirtual)
		}
		if c.NumPaginas() == 0 {
			return errorConfiguracion("la memoria virtual (%d bytes) es menor que una página", c.TamMemoriaVirtual)
		}
		return nil
	default:
		return errorConfiguracion("política desconocida %q", c.Politica)
	}
}

func (c Configuracion) validarTablaEstatica(numMarcos int, primero int) error {
	if len(c.TablaEstatica) == 0 {
		return errorConfiguracion("la política %s requiere TABLA_ESTATICA", PoliticaEstatica)
	}

	usados := make(map[int]int, len(c.TablaEstatica))
	for pagina, marco := range c.TablaEstatica {
		if marco == SinMarco {
			continue
		}
		if marco < primero || marco >= numMarcos {
			return errorConfiguracion("página %d asignada al marco %d fuera de [%d, %d)", pagina, marco, primero, numMarcos)
		}
		if otra, repetido := usados[marco]; repetido {
			return errorConfiguracion("el marco %d está asignado a las páginas %d y %d", marco, otra, pagina)
		}
		usados[marco] = pagina
	}
	return nil
}
