// Package importer contiene la lógica pura de importación masiva: el parser de
// texto delimitado y el resolutor de duplicados. No toca persistencia; los
// casos de uso orquestan parser -> clasificación -> store.
package importer

import (
	"iter"
	"strings"
)

// Field declara un campo esperado del texto delimitado: su nombre (usado para
// la detección heurística de cabecera) y su posición de columna por defecto
// cuando no hay cabecera o la cabecera no lo menciona.
type Field struct {
	Name string
	Col  int
}

// Row es una línea proyectada a los campos esperados. Un campo cuya columna
// no existe en la línea simplemente no aparece en el mapa.
type Row map[string]string

// Has indica si el campo fue encontrado en la línea (aunque esté vacío).
func (r Row) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Parse devuelve una secuencia perezosa de filas, una por línea no vacía del
// texto. La secuencia es finita, de un solo paso y no reiniciable.
//
// La primera línea no vacía se trata como cabecera si alguna de sus celdas
// contiene (sin distinguir mayúsculas) el nombre de un campo esperado; en ese
// caso cada campo se ata a la primera columna cuya celda contiene su nombre y
// los campos sin columna caen a su posición por defecto. Sin cabecera, todos
// los campos se leen por posición por defecto.
func Parse(raw string, fields []Field) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		binding := defaultBinding(fields)
		first := true
		for line := range strings.Lines(raw) {
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) == "" {
				continue
			}
			cells := SplitQuoted(line)
			if first {
				first = false
				if LooksLikeHeader(cells, fields) {
					binding = headerBinding(cells, fields)
					continue
				}
			}
			if !yield(project(cells, fields, binding)) {
				return
			}
		}
	}
}

// LooksLikeHeader decide si las celdas corresponden a una cabecera: basta con
// que una celda contenga el nombre de algún campo esperado.
func LooksLikeHeader(cells []string, fields []Field) bool {
	for _, cell := range cells {
		lc := strings.ToLower(strings.TrimSpace(cell))
		for _, f := range fields {
			if lc != "" && strings.Contains(lc, strings.ToLower(f.Name)) {
				return true
			}
		}
	}
	return false
}

// defaultBinding ata cada campo a su columna por defecto.
func defaultBinding(fields []Field) map[string]int {
	b := make(map[string]int, len(fields))
	for _, f := range fields {
		b[f.Name] = f.Col
	}
	return b
}

// headerBinding ata cada campo a la primera columna de la cabecera que
// contiene su nombre; si ninguna lo contiene, conserva la posición por defecto.
func headerBinding(cells []string, fields []Field) map[string]int {
	b := defaultBinding(fields)
	for _, f := range fields {
		want := strings.ToLower(f.Name)
		for i, cell := range cells {
			if strings.Contains(strings.ToLower(cell), want) {
				b[f.Name] = i
				break
			}
		}
	}
	return b
}

func project(cells []string, fields []Field, binding map[string]int) Row {
	row := make(Row, len(fields))
	for _, f := range fields {
		col := binding[f.Name]
		if col >= 0 && col < len(cells) {
			row[f.Name] = strings.TrimSpace(cells[col])
		}
	}
	return row
}

// SplitQuoted divide una línea por comas respetando subcadenas entre comillas
// dobles: un campo envuelto en "…" puede contener el delimitador, y una
// comilla doblada ("") dentro del campo produce una comilla literal.
func SplitQuoted(line string) []string {
	var (
		cells  []string
		sb     strings.Builder
		quoted bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if quoted && i+1 < len(runes) && runes[i+1] == '"' {
				sb.WriteRune('"')
				i++
				continue
			}
			quoted = !quoted
		case c == ',' && !quoted:
			cells = append(cells, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(c)
		}
	}
	cells = append(cells, sb.String())
	return cells
}

// SplitTriple divide una línea por el primer y el segundo delimitador
// únicamente, para el formato fijo "brand,name,hex". La tercera parte conserva
// cualquier coma adicional. ok es false si faltan delimitadores.
func SplitTriple(line string) (brand, name, rest string, ok bool) {
	i := strings.Index(line, ",")
	if i < 0 {
		return "", "", "", false
	}
	j := strings.Index(line[i+1:], ",")
	if j < 0 {
		return "", "", "", false
	}
	j += i + 1
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1 : j]), strings.TrimSpace(line[j+1:]), true
}
