package dto

// SettingsResponse configuración visible para el admin.
type SettingsResponse struct {
	WhatsAppPhone string `json:"whatsappPhone"`
	SheetEndpoint string `json:"sheetEndpoint,omitempty"`
}

// UpdateSettingsRequest campos opcionales a actualizar (nil = no tocar).
type UpdateSettingsRequest struct {
	WhatsAppPhone *string `json:"whatsappPhone"`
	SheetEndpoint *string `json:"sheetEndpoint"`
}
