// Package catalog mantiene el catálogo autoritativo en memoria y los casos de
// uso que lo mutan: la reconciliación al arranque y la edición del admin.
package catalog

import (
	"sync"

	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// StorageKey es la clave versionada del catálogo en el almacén local.
// Subir la versión invalida deliberadamente el formato viejo: los datos de
// versiones anteriores no se leen ni se migran.
const StorageKey = "catalogo_v24"

// Store es el catálogo autoritativo en memoria. Toda mutación pasa por sus
// métodos; el resto del sistema (carrito, ventas, handlers) solo lee copias.
type Store struct {
	mu    sync.RWMutex
	items []entity.Product
}

// NewStore construye un catálogo vacío; la reconciliación lo puebla.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll sustituye el catálogo completo (resultado de una reconciliación).
func (s *Store) ReplaceAll(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]entity.Product, len(products))
	copy(s.items, products)
}

// List devuelve una copia de todo el catálogo.
func (s *Store) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Search devuelve los productos que pasan el filtro de categoría y el término
// de búsqueda (insensible a mayúsculas y tildes) sobre nombre y descripción.
func (s *Store) Search(category, query string) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.items))
	for _, p := range s.items {
		if category != "" && category != entity.CategoryTodos && p.Category != category {
			continue
		}
		if query != "" &&
			!domaincatalog.MatchesQuery(p.Name, query) &&
			!domaincatalog.MatchesQuery(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get devuelve una copia del producto por id.
func (s *Store) Get(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Upsert inserta o reemplaza el producto con el mismo id.
func (s *Store) Upsert(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = p
			return
		}
	}
	s.items = append(s.items, p)
}

// Delete elimina el producto por id; devuelve false si no existía.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// DecrementStock descuenta qty unidades del stock del producto, con piso en
// cero: si qty supera el stock actual (carrera con una edición del admin), el
// déficit se absorbe en silencio. Devuelve las unidades realmente descontadas.
func (s *Store) DecrementStock(id string, qty int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		taken := qty
		if taken > s.items[i].Stock {
			taken = s.items[i].Stock
		}
		s.items[i].Stock -= taken
		return taken
	}
	return 0
}
