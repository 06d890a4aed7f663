package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeKV almacén clave-valor en memoria con la misma semántica del gateway:
// valores JSON atómicos, corrupto = ausente.
type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string][]byte{}} }

func (f *fakeKV) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeKV) Load(key string, out any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

type fakeSheet struct {
	products []entity.Product
	pullErr  error
}

func (f *fakeSheet) Pull(context.Context) ([]entity.Product, error) {
	return f.products, f.pullErr
}
func (f *fakeSheet) Push(context.Context, []entity.Product) error { return nil }
func (f *fakeSheet) Enabled() bool                                { return true }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func findByName(t *testing.T, products []entity.Product, name string) entity.Product {
	t.Helper()
	for _, p := range products {
		if domaincatalog.NormalizeName(p.Name) == domaincatalog.NormalizeName(name) {
			return p
		}
	}
	t.Fatalf("producto %q no encontrado", name)
	return entity.Product{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge
// ──────────────────────────────────────────────────────────────────────────────

func TestMerge_SobreponeCamposEditables(t *testing.T) {
	baseline := domaincatalog.Baseline()
	edited := findByName(t, baseline, "HIDROLAVADORA")
	edited.WholesalePrice = 52000
	edited.RetailPrice = 58000
	edited.Stock = 3
	edited.Description = "Hidrolavadora 1800W editada por el admin"
	edited.Category = entity.CategoryHogar

	merged := appcatalog.Merge(baseline, []entity.Product{edited})

	got := findByName(t, merged, "HIDROLAVADORA")
	assert.Equal(t, int64(52000), got.WholesalePrice)
	assert.Equal(t, int64(58000), got.RetailPrice)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, "Hidrolavadora 1800W editada por el admin", got.Description)
	assert.Equal(t, entity.CategoryHogar, got.Category)
	assert.Equal(t, edited.ID, got.ID, "el id estable debe sobrevivir la fusión")
}

// TestMerge_PrecedenciaImagen: una subida embebida del admin (data:) se
// conserva; una URL remota local cede ante la imagen del baseline (un fix de
// código a una URL rota no debe pisar la foto subida a mano).
func TestMerge_PrecedenciaImagen(t *testing.T) {
	baseline := domaincatalog.Baseline()

	uploaded := findByName(t, baseline, "PAPEL TAPIZ")
	uploaded.Image = "data:image/webp;base64,UklGRh4AAABXRUJQVlA4"

	staleURL := findByName(t, baseline, "DIADEMA P9")
	staleURL.Image = "https://example.com/rota.jpg"

	merged := appcatalog.Merge(baseline, []entity.Product{uploaded, staleURL})

	assert.Equal(t, uploaded.Image, findByName(t, merged, "PAPEL TAPIZ").Image,
		"la subida local embebida debe conservarse")
	assert.Equal(t, findByName(t, baseline, "DIADEMA P9").Image,
		findByName(t, merged, "DIADEMA P9").Image,
		"la URL local debe ceder ante la del baseline")
}

func TestMerge_AgregaProductosDelAdmin(t *testing.T) {
	baseline := domaincatalog.Baseline()
	custom := entity.Product{
		ID:             "11111111-1111-1111-1111-111111111111",
		Name:           "VENTILADOR TURBO",
		WholesalePrice: 80000,
		RetailPrice:    95000,
		Stock:          5,
	}

	merged := appcatalog.Merge(baseline, []entity.Product{custom})

	require.Len(t, merged, len(baseline)+1)
	got := findByName(t, merged, "VENTILADOR TURBO")
	assert.Equal(t, custom.ID, got.ID)
	assert.True(t, entity.IsValidCategory(got.Category), "se completa la categoría inferida")
}

// TestMerge_EmparejaPorIdTrasRenombre: el id sintético estable es la clave
// primaria de emparejamiento; renombrar el producto en el snapshot local no
// rompe la asociación con su entrada base.
func TestMerge_EmparejaPorIdTrasRenombre(t *testing.T) {
	baseline := domaincatalog.Baseline()
	renamed := findByName(t, baseline, "GRAMERA SF-400")
	renamed.Name = "BALANZA DIGITAL SF-400"
	renamed.Stock = 2

	merged := appcatalog.Merge(baseline, []entity.Product{renamed})

	require.Len(t, merged, len(baseline), "el renombre no debe duplicar la entrada")
	var got *entity.Product
	for i := range merged {
		if merged[i].ID == renamed.ID {
			got = &merged[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Stock)
	assert.Equal(t, "BALANZA DIGITAL SF-400", got.Name, "el renombre del admin sobrevive")
}

func TestMerge_UnNombrePorEntrada(t *testing.T) {
	baseline := domaincatalog.Baseline()
	a := findByName(t, baseline, "PAPEL TAPIZ")
	a.ID = "" // snapshot viejo sin ids: empareja por nombre normalizado
	a.Stock = 7
	merged := appcatalog.Merge(baseline, []entity.Product{a})

	require.Len(t, merged, len(baseline))
	assert.Equal(t, 7, findByName(t, merged, "PAPEL TAPIZ").Stock)

	seen := map[string]bool{}
	for _, p := range merged {
		key := domaincatalog.NormalizeName(p.Name)
		assert.False(t, seen[key], "nombre duplicado: %s", p.Name)
		seen[key] = true
	}
}

// TestMerge_Idempotente: fusionar el resultado de una fusión produce el mismo
// catálogo (propiedad clave del arranque: cada sesión re-reconcilia).
func TestMerge_Idempotente(t *testing.T) {
	baseline := domaincatalog.Baseline()
	edited := findByName(t, baseline, "HIDROLAVADORA")
	edited.Stock = 1
	custom := entity.Product{ID: "22222222-2222-2222-2222-222222222222", Name: "PRODUCTO NUEVO", WholesalePrice: 1000, RetailPrice: 1200, Stock: 4}

	once := appcatalog.Merge(baseline, []entity.Product{edited, custom})
	twice := appcatalog.Merge(baseline, once)

	assert.Equal(t, once, twice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_SnapshotLocalCorrupto(t *testing.T) {
	kv := newFakeKV()
	kv.data[appcatalog.StorageKey] = []byte(`{"esto no": "es un array"`)
	store := appcatalog.NewStore()

	uc := appcatalog.NewReconcileUseCase(kv, nil, store, testLogger())
	uc.Reconcile(context.Background())

	assert.Len(t, store.List(), len(domaincatalog.Baseline()),
		"un snapshot corrupto degrada al baseline, nunca es fatal")
}

func TestReconcile_EscribeElEstadoEfectivo(t *testing.T) {
	kv := newFakeKV()
	store := appcatalog.NewStore()

	appcatalog.NewReconcileUseCase(kv, nil, store, testLogger()).Reconcile(context.Background())

	var persisted []entity.Product
	found, err := kv.Load(appcatalog.StorageKey, &persisted)
	require.NoError(t, err)
	require.True(t, found, "el catálogo fusionado debe quedar como nuevo snapshot local")
	assert.Equal(t, len(store.List()), len(persisted))
}

func TestReconcile_RemotoTienePrecedencia(t *testing.T) {
	kv := newFakeKV()
	local := domaincatalog.Baseline()
	require.NoError(t, kv.Save(appcatalog.StorageKey, local))

	remote := []entity.Product{
		{ID: "r1", Name: "SOLO REMOTO", WholesalePrice: 5000, RetailPrice: 6000, Stock: 9},
	}
	store := appcatalog.NewStore()
	uc := appcatalog.NewReconcileUseCase(kv, &fakeSheet{products: remote}, store, testLogger())
	uc.Reconcile(context.Background())

	got := store.List()
	require.Len(t, got, 1, "un remoto no vacío reemplaza la fusión local por completo")
	assert.Equal(t, "SOLO REMOTO", got[0].Name)
}

func TestReconcile_FalloRemotoDegradaALocal(t *testing.T) {
	kv := newFakeKV()
	store := appcatalog.NewStore()
	uc := appcatalog.NewReconcileUseCase(kv, &fakeSheet{pullErr: assert.AnError}, store, testLogger())

	uc.Reconcile(context.Background())

	assert.Len(t, store.List(), len(domaincatalog.Baseline()),
		"el fallo del pull es suave: se reconcilia como si no hubiera remoto")
}
