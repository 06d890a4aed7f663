// Package cart implementa el carrito por sesión: una colección efímera en
// memoria que muere con el proceso. El almacén compartido nunca guarda
// estado por visitante.
package cart

import (
	"sync"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
)

// sessionCart son las líneas de una sesión, con orden de inserción estable
// (el registro de venta exige una secuencia ordenada).
type sessionCart struct {
	lines map[string]*entity.CartItem // clave: id de producto (sin líneas duplicadas)
	order []string
}

// Ledger mantiene los carritos de todas las sesiones activas. Toda lectura
// re-ajusta las líneas contra el stock vigente del catálogo: una edición del
// admin puede exigir recortar cantidades hacia abajo.
type Ledger struct {
	mu      sync.Mutex
	carts   map[string]*sessionCart
	catalog *appcatalog.Store
}

// NewLedger construye el libro de carritos sobre el catálogo autoritativo.
func NewLedger(catalog *appcatalog.Store) *Ledger {
	return &Ledger{carts: map[string]*sessionCart{}, catalog: catalog}
}

func (l *Ledger) cart(sessionID string) *sessionCart {
	c, ok := l.carts[sessionID]
	if !ok {
		c = &sessionCart{lines: map[string]*entity.CartItem{}}
		l.carts[sessionID] = c
	}
	return c
}

// Add agrega qty unidades del producto al carrito. Si la línea ya existe la
// cantidad se incrementa; en ambos casos el resultado queda en [1, stock].
// Un producto inexistente o sin stock es un no-op.
func (l *Ledger) Add(sessionID, productID string, qty int) {
	if qty < 1 {
		return
	}
	p, ok := l.catalog.Get(productID)
	if !ok || p.Stock < 1 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.cart(sessionID)
	if line, exists := c.lines[productID]; exists {
		line.Quantity = clamp(line.Quantity+qty, 1, p.Stock)
		line.Product = p
		return
	}
	c.lines[productID] = &entity.CartItem{Product: p, Quantity: clamp(qty, 1, p.Stock)}
	c.order = append(c.order, productID)
}

// UpdateQuantity ajusta la línea en delta, con resultado en [1, stock].
// Si la línea no existe es un no-op, no un error.
func (l *Ledger) UpdateQuantity(sessionID, productID string, delta int) {
	p, ok := l.catalog.Get(productID)
	if !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.cart(sessionID)
	line, exists := c.lines[productID]
	if !exists {
		return
	}
	line.Quantity = clamp(line.Quantity+delta, 1, p.Stock)
	line.Product = p
}

// Remove elimina la línea si existe; no-op en caso contrario.
func (l *Ledger) Remove(sessionID, productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.cart(sessionID)
	if _, exists := c.lines[productID]; !exists {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear vacía el carrito de la sesión (se usa tras el checkout).
func (l *Ledger) Clear(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.carts, sessionID)
}

// Items devuelve las líneas en orden de inserción, ya re-ajustadas contra el
// stock vigente: líneas cuyo producto desapareció o quedó sin stock se
// descartan; cantidades por encima del stock se recortan.
func (l *Ledger) Items(sessionID string) []entity.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.cart(sessionID)

	out := make([]entity.CartItem, 0, len(c.order))
	kept := c.order[:0]
	for _, id := range c.order {
		line := c.lines[id]
		p, ok := l.catalog.Get(id)
		if !ok || p.Stock < 1 {
			delete(c.lines, id)
			continue
		}
		line.Product = p
		line.Quantity = clamp(line.Quantity, 1, p.Stock)
		kept = append(kept, id)
		out = append(out, *line)
	}
	c.order = kept
	return out
}

// Subtotal es la suma de precio-unitario-por-nivel × cantidad sobre todas las
// líneas vigentes del carrito.
func (l *Ledger) Subtotal(sessionID string) int64 {
	var total int64
	for _, item := range l.Items(sessionID) {
		total += pricing.ResolveUnitPrice(&item.Product, item.Quantity) * int64(item.Quantity)
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
