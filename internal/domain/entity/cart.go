package entity

// CartItem es una línea del carrito: snapshot del producto más la cantidad
// pedida. La cantidad siempre está en [1, Product.Stock] al momento de leerse.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
