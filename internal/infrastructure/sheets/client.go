// Package sheets implementa el espejo remoto del catálogo: un endpoint tipo
// hoja de cálculo (Apps Script) con dos acciones, read y writeBatch.
// El espejo es mejor-esfuerzo y last-writer-wins; el almacén local es siempre
// la fuente durable de verdad.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ ports.SheetClient = (*Client)(nil)

const maxResponseBytes = 4 * 1024 * 1024

// Client habla con el endpoint de la hoja. El endpoint puede cambiar en
// caliente cuando el admin edita los ajustes.
type Client struct {
	mu         sync.RWMutex
	endpoint   string
	httpClient *http.Client
}

// NewClient construye el cliente; endpoint vacío = deshabilitado.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetEndpoint re-apunta el cliente (cambio de ajustes del admin).
func (c *Client) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endpoint = endpoint
}

// Enabled indica si hay endpoint configurado.
func (c *Client) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint != ""
}

func (c *Client) actionURL(action string) (string, error) {
	c.mu.RLock()
	endpoint := c.endpoint
	c.mu.RUnlock()
	if endpoint == "" {
		return "", domain.ErrSyncDisabled
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("sheets: endpoint inválido: %w", err)
	}
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Pull descarga el catálogo remoto (GET ?action=read → array JSON de
// productos). Cualquier fallo es un error y el caller degrada a solo-local;
// un catálogo vacío también cuenta como fallo (no hay nada que precedencie).
func (c *Client) Pull(ctx context.Context) ([]entity.Product, error) {
	target, err := c.actionURL("read")
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: pull: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: pull HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("sheets: leer respuesta: %w", err)
	}
	var products []entity.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("sheets: respuesta no es un array de productos: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrRemoteEmpty
	}
	return products, nil
}

type pushRequest struct {
	Products []entity.Product `json:"products"`
}

type pushResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Push sube el catálogo completo (POST ?action=writeBatch). El Content-Type
// text/plain evita el preflight OPTIONS que Apps Script no maneja; el script
// parsea el body de todos modos.
func (c *Client) Push(ctx context.Context, products []entity.Product) error {
	target, err := c.actionURL("writeBatch")
	if err != nil {
		return err
	}
	body, err := json.Marshal(pushRequest{Products: products})
	if err != nil {
		return fmt.Errorf("sheets: serializar catálogo: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets: push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets: push HTTP %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("sheets: leer respuesta: %w", err)
	}
	var out pushResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("sheets: respuesta inesperada del push: %w", err)
	}
	if !out.Success {
		if out.Error != "" {
			return fmt.Errorf("sheets: el endpoint rechazó el push: %s", out.Error)
		}
		return fmt.Errorf("sheets: el endpoint rechazó el push")
	}
	return nil
}
