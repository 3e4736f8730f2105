package paginacion

import "math/bits"

// Codec separa direcciones lógicas en (página, desplazamiento) y arma
// direcciones físicas a partir de (marco, desplazamiento).
type Codec struct {
	bits    uint
	mascara uint64
}

// NuevoCodec valida que el tamaño de página sea potencia de dos
func NuevoCodec(tamPagina int) (Codec, error) {
	if tamPagina <= 0 {
		return Codec{}, errorConfiguracion("tamaño de página no positivo: %d", tamPagina)
	}
	if bits.OnesCount64(uint64(tamPagina)) != 1 {
		return Codec{}, errorConfiguracion("el tamaño de página %d no es potencia de dos", tamPagina)
	}

	return Codec{
		bits:    uint(bits.TrailingZeros64(uint64(tamPagina))),
		mascara: uint64(tamPagina) - 1,
	}, nil
}

func (c Codec) TamPagina() uint64 {
	return c.mascara + 1
}

// Decodificar devuelve el número de página y el desplazamiento
func (c Codec) Decodificar(logica uint64) (pagina uint64, desplazamiento uint64) {
	return logica >> c.bits, logica & c.mascara
}

// Codificar arma la dirección física
func (c Codec) Codificar(marco int, desplazamiento uint64) uint64 {
	return uint64(marco)<<c.bits | desplazamiento&c.mascara
}
