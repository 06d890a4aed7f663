package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
)

func testProduct() *entity.Product {
	return &entity.Product{
		ID:             "prod-widget",
		Name:           "WIDGET",
		WholesalePrice: 800,
		RetailPrice:    1000,
		Stock:          10,
	}
}

// TestResolveUnitPrice_Umbral verifica la propiedad central: para toda
// cantidad q, el precio es mayorista si y solo si q >= 5; si no, al detal.
func TestResolveUnitPrice_Umbral(t *testing.T) {
	p := testProduct()
	for q := 1; q <= 20; q++ {
		got := pricing.ResolveUnitPrice(p, q)
		if q >= pricing.WholesaleMinQty {
			assert.Equal(t, p.WholesalePrice, got, "q=%d debe cobrar mayorista", q)
		} else {
			assert.Equal(t, p.RetailPrice, got, "q=%d debe cobrar detal", q)
		}
	}
}

// TestResolveUnitPrice_Frontera cubre el salto de nivel exacto en el umbral.
func TestResolveUnitPrice_Frontera(t *testing.T) {
	p := testProduct()

	assert.Equal(t, int64(1000), pricing.ResolveUnitPrice(p, 4), "4 unidades: detal")
	assert.Equal(t, int64(800), pricing.ResolveUnitPrice(p, 5), "5 unidades: mayorista")
	assert.Equal(t, int64(800), pricing.ResolveUnitPrice(p, 6), "6 unidades: mayorista")
}

// TestResolveUnitPrice_Determinista: el mismo input produce siempre el mismo
// precio; el finalizador confía en esto para el snapshot.
func TestResolveUnitPrice_Determinista(t *testing.T) {
	p := testProduct()
	for _, q := range []int{1, 4, 5, 9} {
		first := pricing.ResolveUnitPrice(p, q)
		second := pricing.ResolveUnitPrice(p, q)
		assert.Equal(t, first, second)
	}
}
