package paginacion

// FIFO reemplaza el marco cargado hace más tiempo, sin importar los accesos
type FIFO struct {
	marcos   *TablaMarcos
	cola     []int // cola circular de marcos en orden de carga
	cabeza   int
	fin      int
	ocupados int
}

func NuevaFIFO(marcos *TablaMarcos) *FIFO {
	cola := make([]int, marcos.Paginables())
	for i := range cola {
		cola[i] = SinMarco
	}
	return &FIFO{marcos: marcos, cola: cola}
}

func (f *FIFO) Nombre() string {
	return string(PoliticaFIFO)
}

// AsignarMarco usa el siguiente marco sin estrenar mientras queden; después
// reutiliza la cabeza de la cola y la vuelve a encolar al final
func (f *FIFO) AsignarMarco(uint64) (int, error) {
	var marco int
	if f.ocupados < len(f.cola) {
		marco = f.marcos.Primero() + f.ocupados
		f.ocupados++
	} else {
		marco = f.cola[f.cabeza]
		f.cabeza = (f.cabeza + 1) % len(f.cola)
	}

	f.cola[f.fin] = marco
	f.fin = (f.fin + 1) % len(f.cola)
	return marco, nil
}

func (f *FIFO) Acceder(int) {}

// Orden devuelve los marcos cargados del más antiguo al más nuevo
func (f *FIFO) Orden() []int {
	orden := make([]int, 0, f.ocupados)
	for i := 0; i < f.ocupados; i++ {
		orden = append(orden, f.cola[(f.cabeza+i)%len(f.cola)])
	}
	return orden
}
