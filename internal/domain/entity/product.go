package entity

import "time"

// Categorías del catálogo (conjunto cerrado; "Todos" solo existe como filtro).
const (
	CategoryHogar        = "Hogar"
	CategoryBelleza      = "Belleza y Cuidado"
	CategoryTecnologia   = "Tecnología"
	CategoryCocina       = "Cocina"
	CategoryOrganizacion = "Organización"
	CategoryHerramientas = "Herramientas"
	CategoryTodos        = "Todos"
)

// Categories lista las categorías asignables a un producto (sin "Todos").
func Categories() []string {
	return []string{
		CategoryHogar, CategoryBelleza, CategoryTecnologia,
		CategoryCocina, CategoryOrganizacion, CategoryHerramientas,
	}
}

// IsValidCategory indica si la categoría pertenece al conjunto cerrado.
func IsValidCategory(c string) bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}

// Product representa una entrada del catálogo.
// Los precios son COP enteros (sin centavos). WholesalePrice aplica a partir
// del umbral mayorista; RetailPrice por debajo de él.
// Los tags JSON definen el formato de almacenamiento local y el intercambio
// con la hoja remota (mismo shape en ambos).
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	WholesalePrice int64     `json:"price"`       // precio al por mayor
	RetailPrice    int64     `json:"retailPrice"` // precio al detal
	Stock          int       `json:"stock"`
	Image          string    `json:"image"`    // URL remota o data: URI subido por el admin
	VideoURL       string    `json:"videoUrl,omitempty"`
	Features       []string  `json:"features,omitempty"`
	Featured       bool      `json:"featured,omitempty"`
	Combo          bool      `json:"combo,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// HasUploadedImage indica si la imagen es una subida embebida del admin
// (data: URI) en lugar de una URL remota. Las subidas locales sobreviven a la
// reconciliación; las URLs remotas ceden ante el baseline.
func (p *Product) HasUploadedImage() bool {
	return len(p.Image) > 5 && p.Image[:5] == "data:"
}
