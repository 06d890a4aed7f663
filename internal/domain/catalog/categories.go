package catalog

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// keywordRules asigna categoría por palabra clave en el nombre normalizado.
// Se evalúan en orden; gana la primera coincidencia.
var keywordRules = []struct {
	keyword  string
	category string
}{
	{"ORGANIZADOR", entity.CategoryOrganizacion},
	{"ESTANTE", entity.CategoryOrganizacion},
	{"TENDEDERO", entity.CategoryOrganizacion},
	{"CUCHILLO", entity.CategoryCocina},
	{"GRAMERA", entity.CategoryCocina},
	{"LICUADORA", entity.CategoryCocina},
	{"TERMO", entity.CategoryCocina},
	{"CEPILLO", entity.CategoryBelleza},
	{"BARBERA", entity.CategoryBelleza},
	{"CAMARA", entity.CategoryTecnologia},
	{"DIADEMA", entity.CategoryTecnologia},
	{"LED", entity.CategoryTecnologia},
	{"LAMPARA", entity.CategoryTecnologia},
	{"SOLAR", entity.CategoryTecnologia},
	{"HIDROLAVADORA", entity.CategoryHerramientas},
	{"TALADRO", entity.CategoryHerramientas},
}

// nameOverrides fija la categoría de productos puntuales sin palabra clave
// útil en el nombre. Solo se consulta cuando ninguna regla aplicó.
var nameOverrides = map[string]string{
	"SECADOR AGUACATE":                        entity.CategoryCocina,
	"CINTA DOBLE FAX EXTRAFUERTE 3M":          entity.CategoryHerramientas,
	"TUBO MULTIFUNCIONAL 90 A 160 CM":         entity.CategoryOrganizacion,
	"TUBO MULTIFUNCIONAL GRANDE 160 A 300 CM": entity.CategoryOrganizacion,
	"SET DE MALETA DE ARTE":                   entity.CategoryOrganizacion,
	"KIT ARTISTICO DE 208 PIEZAS":             entity.CategoryOrganizacion,
}

// InferCategory deduce la categoría de un producto a partir de su nombre:
// reglas por palabra clave, luego el mapa por nombre y, si nada aplica, la
// categoría por defecto (Hogar).
func InferCategory(name string) string {
	key := NormalizeName(name)
	for _, rule := range keywordRules {
		if strings.Contains(key, rule.keyword) {
			return rule.category
		}
	}
	if cat, ok := nameOverrides[key]; ok {
		return cat
	}
	return entity.CategoryHogar
}
