// Package pricing resuelve el precio unitario aplicable a una línea según la
// cantidad pedida: al detal por debajo del umbral mayorista, al por mayor a
// partir de él. Es el único lugar del sistema donde vive esa política.
package pricing

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// WholesaleMinQty es el umbral mayorista: con esta cantidad o más se cobra el
// precio al por mayor. Es una constante de política, no configurable por
// producto.
const WholesaleMinQty = 5

// ResolveUnitPrice devuelve el precio unitario para la cantidad dada.
// Es pura y determinista: el finalizador de ventas depende de que dos llamadas
// con el mismo input produzcan siempre el mismo precio para tomar el snapshot.
// qty debe ser positivo; es una precondición del caller, no un error en
// tiempo de ejecución.
func ResolveUnitPrice(p *entity.Product, qty int) int64 {
	if qty >= WholesaleMinQty {
		return p.WholesalePrice
	}
	return p.RetailPrice
}
