package paginacion

// LRU mantiene un rango de recencia por marco paginable. El marco usado más
// recientemente tiene el rango máximo (Paginables()-1) y no hay empates entre
// marcos ocupados.
type LRU struct {
	marcos *TablaMarcos
	rangos []int
}

func NuevaLRU(marcos *TablaMarcos) *LRU {
	return &LRU{
		marcos: marcos,
		rangos: make([]int, marcos.Total()),
	}
}

func (l *LRU) Nombre() string {
	return string(PoliticaLRU)
}

// Acceder lleva el marco al tope: baja en uno a los que estaban por encima
// de su rango anterior
func (l *LRU) Acceder(marco int) {
	primero := l.marcos.Primero()
	if marco < primero || marco >= len(l.rangos) {
		return
	}

	previo := l.rangos[marco]
	for i := primero; i < len(l.rangos); i++ {
		if l.rangos[i] > previo {
			l.rangos[i]--
		}
	}
	l.rangos[marco] = l.marcos.Paginables() - 1
}

// AsignarMarco prefiere un marco libre; si no hay, el de menor rango
func (l *LRU) AsignarMarco(uint64) (int, error) {
	if marco, libre := l.marcos.PrimerLibre(); libre {
		return marco, nil
	}
	return l.victima(), nil
}

// victima es el marco de menor rango; a igual rango gana el de menor índice
func (l *LRU) victima() int {
	primero := l.marcos.Primero()
	victima := primero
	for i := primero + 1; i < len(l.rangos); i++ {
		if l.rangos[i] < l.rangos[victima] {
			victima = i
		}
	}
	return victima
}

// Rango devuelve el rango de recencia actual del marco
func (l *LRU) Rango(marco int) int {
	if marco < 0 || marco >= len(l.rangos) {
		return SinMarco
	}
	return l.rangos[marco]
}
