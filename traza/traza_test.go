package traza

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func leerTodo(t *testing.T, l Lector) []uint64 {
	t.Helper()
	var direcciones []uint64
	for {
		d, err := l.Siguiente()
		if errors.Is(err, io.EOF) {
			return direcciones
		}
		if err != nil {
			t.Fatalf("Siguiente falló: %v", err)
		}
		direcciones = append(direcciones, d)
	}
}

func TestParsearFormato(t *testing.T) {
	casos := map[string]Formato{
		"":           Binario64,
		"binario64":  Binario64,
		" BINARIO32": Binario32,
		"Decimal":    Decimal,
	}
	for nombre, esperado := range casos {
		f, err := ParsearFormato(nombre)
		if err != nil || f != esperado {
			t.Errorf("ParsearFormato(%q) = (%q, %v), esperaba %q", nombre, f, err, esperado)
		}
	}
	if _, err := ParsearFormato("csv"); err == nil {
		t.Error("esperaba error para un formato desconocido")
	}
}

func TestEscritorYLectorBinario64(t *testing.T) {
	var buf bytes.Buffer
	e, err := NuevoEscritor(&buf, Binario64)
	if err != nil {
		t.Fatalf("NuevoEscritor falló: %v", err)
	}
	for _, d := range []uint64{0, 133, 1 << 40} {
		if err := e.Escribir(d); err != nil {
			t.Fatalf("Escribir falló: %v", err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush falló: %v", err)
	}
	if buf.Len() != 24 {
		t.Fatalf("esperaba 24 bytes, obtuve %d", buf.Len())
	}
	if binary.LittleEndian.Uint64(buf.Bytes()[8:16]) != 133 {
		t.Errorf("el segundo registro debería ser 133 little endian")
	}

	// un registro incompleto al final se ignora
	buf.Write([]byte{1, 2, 3})

	l, err := NuevoLector(&buf, Binario64)
	if err != nil {
		t.Fatalf("NuevoLector falló: %v", err)
	}
	got := leerTodo(t, l)
	if len(got) != 3 || got[0] != 0 || got[1] != 133 || got[2] != 1<<40 {
		t.Errorf("direcciones inesperadas: %v", got)
	}
}

func TestLectorBinario32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, []int32{16916, 62493, 30198})

	l, _ := NuevoLector(bytes.NewReader(buf.Bytes()), Binario32)
	got := leerTodo(t, l)
	if len(got) != 3 || got[0] != 16916 || got[2] != 30198 {
		t.Errorf("direcciones inesperadas: %v", got)
	}

	binary.Write(&buf, binary.LittleEndian, int32(-5))
	l, _ = NuevoLector(bytes.NewReader(buf.Bytes()), Binario32)
	for i := 0; i < 3; i++ {
		if _, err := l.Siguiente(); err != nil {
			t.Fatalf("registro %d: %v", i, err)
		}
	}
	if _, err := l.Siguiente(); err == nil || !strings.Contains(err.Error(), "negativa") {
		t.Errorf("esperaba error por dirección negativa, obtuve %v", err)
	}

	e, _ := NuevoEscritor(io.Discard, Binario32)
	if err := e.Escribir(1 << 32); err == nil {
		t.Error("una dirección de más de 31 bits no entra en BINARIO32")
	}
}

func TestLectorYEscritorDecimal(t *testing.T) {
	l, _ := NuevoLector(strings.NewReader("12\n\n  7 \n4096\n"), Decimal)
	got := leerTodo(t, l)
	if len(got) != 3 || got[0] != 12 || got[1] != 7 || got[2] != 4096 {
		t.Errorf("direcciones inesperadas: %v", got)
	}

	l, _ = NuevoLector(strings.NewReader("1\nabc\n"), Decimal)
	l.Siguiente()
	if _, err := l.Siguiente(); err == nil || !strings.Contains(err.Error(), "línea 2") {
		t.Errorf("esperaba error en la línea 2, obtuve %v", err)
	}

	var sb strings.Builder
	e, _ := NuevoEscritor(&sb, Decimal)
	e.Escribir(384)
	e.Escribir(18446744073709551615)
	e.Flush()
	if sb.String() != "384\n18446744073709551615\n" {
		t.Errorf("salida inesperada: %q", sb.String())
	}
}

func TestAbrirMapeadoIgualQueBuffer(t *testing.T) {
	dir := t.TempDir()
	ruta := filepath.Join(dir, "traza.bin")

	var buf bytes.Buffer
	for i := uint64(0); i < 1000; i++ {
		binary.Write(&buf, binary.LittleEndian, i*37)
	}
	if err := os.WriteFile(ruta, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile falló: %v", err)
	}

	mapeada, err := Abrir(ruta, Binario64, true)
	if err != nil {
		t.Fatalf("Abrir con mmap falló: %v", err)
	}
	defer mapeada.Close()

	normal, err := Abrir(ruta, Binario64, false)
	if err != nil {
		t.Fatalf("Abrir falló: %v", err)
	}
	defer normal.Close()

	a, b := leerTodo(t, mapeada), leerTodo(t, normal)
	if len(a) != 1000 || len(b) != 1000 {
		t.Fatalf("esperaba 1000 direcciones, obtuve %d y %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] || a[i] != uint64(i)*37 {
			t.Fatalf("registro %d: mmap %d, buffer %d", i, a[i], b[i])
		}
	}
}

func TestAbrirMapeadoVacioYDecimal(t *testing.T) {
	dir := t.TempDir()

	vacio := filepath.Join(dir, "vacio.bin")
	os.WriteFile(vacio, nil, 0644)
	m, err := AbrirMapeado(vacio)
	if err != nil {
		t.Fatalf("AbrirMapeado falló: %v", err)
	}
	l, _ := m.Lector(Binario64)
	if got := leerTodo(t, l); len(got) != 0 {
		t.Errorf("un archivo vacío no tiene direcciones, obtuve %v", got)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close falló: %v", err)
	}

	texto := filepath.Join(dir, "traza.txt")
	os.WriteFile(texto, []byte("5\n6\n"), 0644)
	a, err := Abrir(texto, Decimal, true)
	if err != nil {
		t.Fatalf("Abrir falló: %v", err)
	}
	defer a.Close()
	if got := leerTodo(t, a); len(got) != 2 || got[1] != 6 {
		t.Errorf("direcciones inesperadas: %v", got)
	}

	if _, err := Abrir(filepath.Join(dir, "no-existe"), Decimal, false); err == nil {
		t.Error("esperaba error al abrir un archivo inexistente")
	}
}
