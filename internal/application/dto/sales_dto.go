package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest finaliza el carrito de la sesión como una venta.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// SaleItemResponse línea inmutable de una venta.
type SaleItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	UnitCost  int64  `json:"unitCost"`
}

// SaleResponse venta registrada más el enlace de entrega por WhatsApp.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Total         int64              `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	WhatsAppLink  string             `json:"whatsappLink,omitempty"`
}

// SalesListResponse historial de ventas.
type SalesListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// SalesReportResponse agregado del historial para reporte de márgenes.
// MarginPercent lleva decimales reales (ej. 23.75), por eso es decimal y no
// un entero COP.
type SalesReportResponse struct {
	SalesCount    int             `json:"salesCount"`
	UnitsSold     int             `json:"unitsSold"`
	Revenue       int64           `json:"revenue"`
	CostBasis     int64           `json:"costBasis"`
	GrossMargin   int64           `json:"grossMargin"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}
