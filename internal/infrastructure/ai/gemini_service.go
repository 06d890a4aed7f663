package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa Enricher.
var _ ports.Enricher = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo y el formato de salida.
	// Usar responseMimeType=application/json obliga a Gemini a devolver JSON puro,
	// eliminando la necesidad de limpiar bloques de markdown.
	systemPrompt = `Actúa como un experto en marketing digital. Mejoras listas de productos para un catálogo premium en Colombia.
Recibes una lista numerada de nombres de producto. Devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con esta estructura exacta:
{
  "products": [
    {
      "originalIndex": <posición en la lista, empezando desde 0>,
      "name": "<nombre comercial atractivo basado en el original>",
      "category": "<una de: Hogar, Belleza y Cuidado, Tecnología, Cocina, Organización, Herramientas>",
      "description": "<frase vendedora de máximo 100 caracteres>",
      "features": ["<beneficio 1>", "<beneficio 2>", "<beneficio 3>"]
    }
  ]
}

Reglas:
- Mantén el originalIndex de cada producto; no reordenes ni omitas entradas.
- description en español, tono comercial, máximo 100 caracteres.
- features: exactamente 3 beneficios clave, cortos.`
)

// GeminiService adaptador que implementa Enricher llamando a la API REST de
// Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error en lugar de fallar en producción.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// enrichmentPayload es el JSON que esperamos recibir del modelo.
type enrichmentPayload struct {
	Products []dto.EnrichedProduct `json:"products"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// EnrichProducts envía la lista numerada de nombres y devuelve las sugerencias
// del modelo emparejadas por originalIndex.
func (s *GeminiService) EnrichProducts(ctx context.Context, names []string) ([]dto.EnrichedProduct, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if len(names) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Lista de productos: ")
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", i, name)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: sb.String()}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.4,
			MaxOutputTokens:  4096, // la respuesta crece con el catálogo completo
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var enriched enrichmentPayload
	if err := json.Unmarshal([]byte(rawJSON), &enriched); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}

	// Descartar índices fuera de rango; el modelo a veces alucina entradas extra.
	valid := enriched.Products[:0]
	for _, p := range enriched.Products {
		if p.OriginalIndex >= 0 && p.OriginalIndex < len(names) {
			valid = append(valid, p)
		}
	}
	return valid, nil
}
