package entity

// Settings agrupa la configuración editable por el admin: el número de
// WhatsApp al que se entrega el pedido y el endpoint opcional de la hoja
// remota. Se cargan/guardan como un único valor atómico.
type Settings struct {
	WhatsAppPhone string `json:"whatsappPhone"` // formato internacional sin "+", ej. 573001234567
	SheetEndpoint string `json:"sheetEndpoint,omitempty"`
}
