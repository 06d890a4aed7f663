package entity

import "time"

// Métodos de pago aceptados en el checkout.
const (
	PaymentNequi         = "Nequi"
	PaymentDaviplata     = "Daviplata"
	PaymentContraentrega = "Contraentrega"
	PaymentEfectivo      = "Efectivo"
)

// IsValidPayment indica si el método pertenece al conjunto aceptado.
func IsValidPayment(m string) bool {
	switch m {
	case PaymentNequi, PaymentDaviplata, PaymentContraentrega, PaymentEfectivo:
		return true
	}
	return false
}

// SaleItem es el snapshot inmutable de una línea vendida. UnitPrice es el
// precio cobrado (resuelto por nivel al momento de la venta, nunca
// recalculado); UnitCost es la base mayorista para el cálculo de margen.
type SaleItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	UnitCost  int64  `json:"unitCost"`
}

// Sale es un registro de venta inmutable: una vez creado por el finalizador
// no se modifica; solo puede eliminarse en bloque ("limpiar historial").
type Sale struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Items         []SaleItem `json:"items"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
}
