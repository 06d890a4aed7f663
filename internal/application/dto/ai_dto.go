package dto

// EnrichedProduct es la sugerencia del modelo para un producto del catálogo,
// emparejada por índice con la lista de nombres enviada.
type EnrichedProduct struct {
	OriginalIndex int      `json:"originalIndex"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}
