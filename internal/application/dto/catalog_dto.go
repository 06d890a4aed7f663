package dto

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductResponse representación pública de un producto del catálogo.
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	WholesalePrice int64     `json:"price"`
	RetailPrice    int64     `json:"retailPrice"`
	Stock          int       `json:"stock"`
	Image          string    `json:"image"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	Features       []string  `json:"features,omitempty"`
	Featured       bool      `json:"featured"`
	Combo          bool      `json:"combo"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// ProductListResponse lista de productos con el total tras filtros.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CreateProductRequest datos para crear un producto desde el admin.
type CreateProductRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"` // vacío = inferir por nombre
	Description    string   `json:"description"`
	WholesalePrice int64    `json:"price"`
	RetailPrice    int64    `json:"retailPrice"`
	Stock          int      `json:"stock"`
	Image          string   `json:"image"`
	VideoURL       string   `json:"videoUrl"`
	Features       []string `json:"features"`
	Featured       bool     `json:"featured"`
	Combo          bool     `json:"combo"`
}

// UpdateProductRequest campos opcionales a actualizar (nil = no tocar).
type UpdateProductRequest struct {
	Name           *string   `json:"name"`
	Category       *string   `json:"category"`
	Description    *string   `json:"description"`
	WholesalePrice *int64    `json:"price"`
	RetailPrice    *int64    `json:"retailPrice"`
	Stock          *int      `json:"stock"`
	Image          *string   `json:"image"`
	VideoURL       *string   `json:"videoUrl"`
	Features       *[]string `json:"features"`
	Featured       *bool     `json:"featured"`
	Combo          *bool     `json:"combo"`
}

// ToProductResponse convierte la entidad a su representación pública.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		Stock:          p.Stock,
		Image:          p.Image,
		VideoURL:       p.VideoURL,
		Features:       p.Features,
		Featured:       p.Featured,
		Combo:          p.Combo,
		UpdatedAt:      p.UpdatedAt,
	}
}
