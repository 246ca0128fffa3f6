package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/filamentario-api/internal/domain/importer"
)

var testFields = []importer.Field{
	{Name: "name", Col: 0},
	{Name: "material", Col: 1},
	{Name: "colorName", Col: 2},
}

func collect(raw string, fields []importer.Field) []importer.Row {
	var rows []importer.Row
	for r := range importer.Parse(raw, fields) {
		rows = append(rows, r)
	}
	return rows
}

func TestParse_SinCabecera_UsaPosicionesPorDefecto(t *testing.T) {
	rows := collect("PLA Rojo,PLA,Rojo\nPETG Azul,PETG,Azul\n", testFields)
	require.Len(t, rows, 2, "deben salir dos filas de datos")

	assert.Equal(t, "PLA Rojo", rows[0]["name"])
	assert.Equal(t, "PLA", rows[0]["material"])
	assert.Equal(t, "Azul", rows[1]["colorName"])
}

func TestParse_ConCabecera_LaSaltaYAtaColumnas(t *testing.T) {
	// La cabecera reordena las columnas respecto a las posiciones por defecto.
	raw := "material,name,colorName\nPLA,PLA Rojo,Rojo\n"
	rows := collect(raw, testFields)
	require.Len(t, rows, 1, "la cabecera no debe contarse como fila de datos")

	assert.Equal(t, "PLA Rojo", rows[0]["name"], "name debe atarse a la columna de la cabecera")
	assert.Equal(t, "PLA", rows[0]["material"])
}

func TestParse_LineasVaciasSeIgnoran(t *testing.T) {
	rows := collect("\n\nPLA Rojo,PLA,Rojo\n\n  \nPETG Azul,PETG,Azul\n", testFields)
	assert.Len(t, rows, 2, "las líneas vacías o de solo espacios no cuentan")
}

func TestParse_ColumnaFaltante_CampoAusenteEnLaFila(t *testing.T) {
	rows := collect("PLA Rojo,PLA\n", testFields)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].Has("material"))
	assert.False(t, rows[0].Has("colorName"), "una columna fuera de rango no debe aparecer en la fila")
}

func TestParse_CabeceraParcial_CampoNoMencionadoCaeAlDefault(t *testing.T) {
	// La cabecera solo menciona name; material conserva su columna por defecto (1).
	raw := "name,otra,cosa\nPLA Rojo,PLA,Rojo\n"
	rows := collect(raw, testFields)
	require.Len(t, rows, 1)

	assert.Equal(t, "PLA Rojo", rows[0]["name"])
	assert.Equal(t, "PLA", rows[0]["material"])
}

func TestLooksLikeHeader(t *testing.T) {
	assert.True(t, importer.LooksLikeHeader([]string{"Name", "Material"}, testFields))
	assert.True(t, importer.LooksLikeHeader([]string{"spool name"}, testFields), "basta con que una celda contenga el nombre del campo")
	assert.False(t, importer.LooksLikeHeader([]string{"PLA Rojo", "PLA", "Rojo"}, testFields))
}

func TestSplitQuoted_CamposEntreComillas(t *testing.T) {
	cells := importer.SplitQuoted(`"Gris, oscuro",PLA,"dice ""gris"""`)
	require.Len(t, cells, 3)

	assert.Equal(t, "Gris, oscuro", cells[0], "la coma dentro de comillas no divide")
	assert.Equal(t, "PLA", cells[1])
	assert.Equal(t, `dice "gris"`, cells[2], "la comilla doblada produce una comilla literal")
}

func TestSplitQuoted_CampoVacioFinal(t *testing.T) {
	cells := importer.SplitQuoted("a,b,")
	assert.Equal(t, []string{"a", "b", ""}, cells)
}

func TestSplitTriple(t *testing.T) {
	brand, name, hex, ok := importer.SplitTriple("Bambu Lab,Dark Gray,#545454")
	require.True(t, ok)
	assert.Equal(t, "Bambu Lab", brand)
	assert.Equal(t, "Dark Gray", name)
	assert.Equal(t, "#545454", hex)
}

func TestSplitTriple_TerceraParteConservaComas(t *testing.T) {
	// Solo se divide por los dos primeros delimitadores.
	brand, name, rest, ok := importer.SplitTriple("Marca,Nombre,#fff,extra")
	require.True(t, ok)
	assert.Equal(t, "Marca", brand)
	assert.Equal(t, "Nombre", name)
	assert.Equal(t, "#fff,extra", rest)
}

func TestSplitTriple_FaltanDelimitadores(t *testing.T) {
	_, _, _, ok := importer.SplitTriple("solo una,coma")
	assert.False(t, ok, "con un solo delimitador la fila es inválida")

	_, _, _, ok = importer.SplitTriple("sin comas")
	assert.False(t, ok)
}
