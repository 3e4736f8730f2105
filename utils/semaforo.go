package utils

// Semaforo implementa un semáforo contador con canales
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con capacidad inicial
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) toma un lugar, bloquea si no queda ninguno
func (s *Semaforo) Wait() {
	s.c <- struct{}{}
}

// Signal (V) devuelve un lugar
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
		// Nada tomado, no hace nada para prevenir incremento excesivo
	}
}

// TryWait intenta tomar un lugar sin bloquear
func (s *Semaforo) TryWait() bool {
	select {
	case s.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// EnUso cuenta los lugares tomados
func (s *Semaforo) EnUso() int {
	return len(s.c)
}
