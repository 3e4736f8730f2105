package paginacion

import (
	"errors"
	"testing"
)

func TestTablasEquivalentes(t *testing.T) {
	tablas := map[string]TablaPaginas{
		"indexada": NuevaTablaIndexada(16),
		"lineal":   NuevaTablaLineal(16, 4),
	}

	for nombre, tabla := range tablas {
		t.Run(nombre, func(t *testing.T) {
			if tabla.Capacidad() != 16 {
				t.Fatalf("esperaba capacidad 16, obtuve %d", tabla.Capacidad())
			}

			if _, ok := tabla.Buscar(3); ok {
				t.Fatal("una tabla nueva no debería tener páginas presentes")
			}

			if err := tabla.Asignar(3, 1); err != nil {
				t.Fatalf("Asignar falló: %v", err)
			}
			if err := tabla.Asignar(9, 2); err != nil {
				t.Fatalf("Asignar falló: %v", err)
			}

			if marco, ok := tabla.Buscar(3); !ok || marco != 1 {
				t.Errorf("esperaba página 3 en el marco 1, obtuve (%d, %v)", marco, ok)
			}

			residentes := tabla.Residentes()
			if len(residentes) != 2 || residentes[0] != (Residente{3, 1}) || residentes[1] != (Residente{9, 2}) {
				t.Errorf("residentes inesperados: %v", residentes)
			}

			tabla.Liberar(3)
			if _, ok := tabla.Buscar(3); ok {
				t.Error("la página 3 debería estar liberada")
			}
			if marco, ok := tabla.Buscar(9); !ok || marco != 2 {
				t.Errorf("liberar la página 3 no debe tocar la 9, obtuve (%d, %v)", marco, ok)
			}

			err := tabla.Asignar(16, 0)
			if !errors.Is(err, ErrPaginaInvalida) {
				t.Fatalf("esperaba ErrPaginaInvalida, obtuve %v", err)
			}
			var invalida *ErrorPaginaInvalida
			if !errors.As(err, &invalida) || invalida.Pagina != 16 {
				t.Errorf("el error debería nombrar la página 16: %v", err)
			}
		})
	}
}

func TestTablaMarcos(t *testing.T) {
	marcos := NuevaTablaMarcos(4, true)

	if marcos.Paginables() != 3 {
		t.Fatalf("esperaba 3 marcos paginables, obtuve %d", marcos.Paginables())
	}
	if libre, _ := marcos.PrimerLibre(); libre != 1 {
		t.Errorf("el marco 0 está reservado, esperaba 1, obtuve %d", libre)
	}
	if err := marcos.Ocupar(0, 5); err == nil {
		t.Error("ocupar el marco reservado debería fallar")
	}

	if err := marcos.Ocupar(1, 5); err != nil {
		t.Fatalf("Ocupar falló: %v", err)
	}
	if err := marcos.Ocupar(1, 6); err == nil {
		t.Error("ocupar un marco ocupado debería fallar")
	}
	if pagina, ok := marcos.Pagina(1); !ok || pagina != 5 {
		t.Errorf("esperaba página 5 en el marco 1, obtuve (%d, %v)", pagina, ok)
	}
	if marcos.ContarLibres() != 2 {
		t.Errorf("esperaba 2 marcos libres, obtuve %d", marcos.ContarLibres())
	}

	marcos.Liberar(1)
	if _, ok := marcos.Pagina(1); ok {
		t.Error("el marco 1 debería estar libre")
	}
}
