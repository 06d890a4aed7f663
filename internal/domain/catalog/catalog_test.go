package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CÁMARA DE SEGURIDAD IK100", "CAMARA DE SEGURIDAD IK100"},
		{"dispensador de jabón", "DISPENSADOR DE JABON"},
		{"  Termo   Licuadora  ", "TERMO LICUADORA"},
		{"ORGANIZACIÓN", "ORGANIZACION"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.NormalizeName(tc.in), "entrada: %q", tc.in)
	}
}

func TestMatchesQuery_IgnoraTildes(t *testing.T) {
	assert.True(t, catalog.MatchesQuery("CÁMARA DE SEGURIDAD IK100", "camara"))
	assert.True(t, catalog.MatchesQuery("Termo licuadora portátil", "PORTATIL"))
	assert.False(t, catalog.MatchesQuery("PAPEL TAPIZ", "camara"))
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		// Regla por palabra clave
		{"ORGANIZADOR DUCHA 5PZS", entity.CategoryOrganizacion},
		{"CÁMARA DE SEGURIDAD IK100", entity.CategoryTecnologia},
		{"SET DE CUCHILLO X6 0238A", entity.CategoryCocina},
		{"CEPILLO SECADOR 5 EN 1", entity.CategoryBelleza},
		{"HIDROLAVADORA", entity.CategoryHerramientas},
		// Override por nombre (sin palabra clave útil)
		{"SECADOR AGUACATE", entity.CategoryCocina},
		{"CINTA DOBLE FAX EXTRAFUERTE 3M", entity.CategoryHerramientas},
		// Por defecto
		{"PAPEL TAPIZ", entity.CategoryHogar},
		{"TOPE DE PUERTA", entity.CategoryHogar},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.InferCategory(tc.name), "producto: %s", tc.name)
	}
}

// TestBaseline_IdsEstablesYUnicos: los ids base son deterministas entre
// llamadas (sobreviven reinicios del proceso) y únicos por nombre normalizado.
func TestBaseline_IdsEstablesYUnicos(t *testing.T) {
	first := catalog.Baseline()
	second := catalog.Baseline()
	require.Equal(t, len(first), len(second))

	seen := map[string]string{}
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "id inestable para %s", first[i].Name)
		key := catalog.NormalizeName(first[i].Name)
		_, dup := seen[key]
		assert.False(t, dup, "nombre duplicado en baseline: %s", first[i].Name)
		seen[key] = first[i].ID
	}
}

func TestBaseline_CamposCompletos(t *testing.T) {
	for _, p := range catalog.Baseline() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, entity.IsValidCategory(p.Category), "%s: categoría %q", p.Name, p.Category)
		assert.Positive(t, p.WholesalePrice, "%s", p.Name)
		assert.GreaterOrEqual(t, p.RetailPrice, p.WholesalePrice, "%s: detal < mayorista", p.Name)
		assert.GreaterOrEqual(t, p.Stock, 0, "%s", p.Name)
		assert.NotEmpty(t, p.Image, "%s", p.Name)
	}
}
