package dto

// AddCartItemRequest agrega un producto al carrito de la sesión.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest ajusta la cantidad de una línea en delta (±n).
type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

// CartItemResponse línea del carrito con el precio unitario vigente según
// el nivel (se recalcula en cada lectura para que el precio "en vivo" siga
// los cambios de cantidad).
type CartItemResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice int64           `json:"unitPrice"`
	LineTotal int64           `json:"lineTotal"`
}

// CartResponse carrito completo de la sesión.
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
}
