package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	appcart "github.com/jhoicas/catalogo-api/internal/application/cart"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/application/sales"
	appsettings "github.com/jhoicas/catalogo-api/internal/application/settings"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminUser = "admin"
	testAdminPass = "clave-segura"
	testIssuer    = "catalogo-api-test"
)

// fakeKV almacén en memoria que implementa ports.Store.
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
	return true, json.Unmarshal(raw, out)
}

// fakePusher registra los encolados sin tocar la red.
type fakePusher struct {
	enqueued int
	status   ports.SyncStatus
}

func (f *fakePusher) Enqueue([]entity.Product) { f.enqueued++ }
func (f *fakePusher) Status() ports.SyncStatus { return f.status }

// fakeSheet controla si el espejo remoto está habilitado.
type fakeSheet struct {
	enabled bool
}

func (f *fakeSheet) Pull(context.Context) ([]entity.Product, error) { return nil, nil }
func (f *fakeSheet) Push(context.Context, []entity.Product) error   { return nil }
func (f *fakeSheet) Enabled() bool                                  { return f.enabled }

// fakePDF devuelve bytes fijos.
type fakePDF struct{}

func (fakePDF) GenerateCatalogPDF(context.Context, []entity.Product, entity.Settings) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type testEnv struct {
	app     *fiber.App
	catalog *appcatalog.Store
	kv      *fakeKV
	pusher  *fakePusher
	sheet   *fakeSheet
}

// buildTestApp arma la aplicación completa con fakes de infraestructura y
// dos productos en catálogo.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	kv := newFakeKV()
	pusher := &fakePusher{}
	sheet := &fakeSheet{enabled: true}

	catalog := appcatalog.NewStore()
	catalog.ReplaceAll([]entity.Product{
		{ID: "p1", Name: "HIDROLAVADORA", Category: entity.CategoryHerramientas, WholesalePrice: 55000, RetailPrice: 60000, Stock: 10},
		{ID: "p2", Name: "DIADEMA P9", Category: entity.CategoryTecnologia, WholesalePrice: 22000, RetailPrice: 30000, Stock: 3},
	})

	ledger := appcart.NewLedger(catalog)
	settingsUC := appsettings.New(kv, entity.Settings{WhatsAppPhone: "573001112233"}, nil, log)
	adminUC := appcatalog.NewAdminUseCase(kv, catalog, pusher, nil, log)
	finalizeUC := sales.NewFinalizeUseCase(ledger, catalog, kv, pusher, settingsUC, log)
	historyUC := sales.NewHistoryUseCase(kv, log)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.New(auth.Config{
		User:         testAdminUser,
		PasswordHash: string(hash),
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
		JWTExpMin:    60,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog:    catalog,
		AdminUC:    adminUC,
		Ledger:     ledger,
		FinalizeUC: finalizeUC,
		HistoryUC:  historyUC,
		SettingsUC: settingsUC,
		AuthUC:     authUC,
		Pusher:     pusher,
		Sheet:      sheet,
		PDF:        fakePDF{},
		JWTSecret:  testJWTSecret,
	})
	return &testEnv{app: app, catalog: catalog, kv: kv, pusher: pusher, sheet: sheet}
}

// doJSON lanza una petición con body JSON opcional y headers extra.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// adminToken hace login y devuelve el header Authorization.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{User: testAdminUser, Password: testAdminPass}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo público
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Listar(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 2, out.Total)
}

func TestProducts_FiltroPorCategoria(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products?category=Tecnolog%C3%ADa", nil, nil)
	out := decode[dto.ProductListResponse](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "DIADEMA P9", out.Items[0].Name)
}

func TestProducts_BusquedaSinAcentos(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products?q=diadema", nil, nil)
	out := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 1, out.Total)
}

func TestProducts_GetPorID_NoExiste404(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/products/no-existe", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito por sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_AcunaSesionSiFalta(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/cart", nil, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Session-ID"), "debe acuñarse un id de sesión")
}

func TestCart_AgregarYVer(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 2}, session)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.CartResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
	// 2 unidades: aplica detal
	assert.Equal(t, int64(60000), out.Items[0].UnitPrice)
	assert.Equal(t, int64(120000), out.Subtotal)
}

func TestCart_PrecioCambiaDeNivelConDelta(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 4}, session)
	out := decode[dto.CartResponse](t, resp)
	assert.Equal(t, int64(4*60000), out.Subtotal, "4 unidades pagan detal")

	resp = doJSON(t, env.app, http.MethodPatch, "/api/cart/items/p1",
		dto.UpdateCartItemRequest{Delta: 1}, session)
	out = decode[dto.CartResponse](t, resp)
	assert.Equal(t, int64(5*55000), out.Subtotal, "5 unidades pagan mayorista")
}

func TestCart_CantidadLimitadaPorStock(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "p2", Quantity: 50}, session)
	out := decode[dto.CartResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity, "la cantidad se recorta al stock")
}

func TestCart_ProductoInexistente404(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "nope", Quantity: 1}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCart_QuitarYVaciar(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}

	doJSON(t, env.app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "p1", Quantity: 1}, session).Body.Close()
	doJSON(t, env.app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "p2", Quantity: 1}, session).Body.Close()

	resp := doJSON(t, env.app, http.MethodDelete, "/api/cart/items/p1", nil, session)
	out := decode[dto.CartResponse](t, resp)
	require.Len(t, out.Items, 1)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/cart", nil, session)
	out = decode[dto.CartResponse](t, resp)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.Subtotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CierraVentaYDescuentaStock(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}

	doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 5}, session).Body.Close()

	resp := doJSON(t, env.app, http.MethodPost, "/api/checkout",
		dto.CheckoutRequest{PaymentMethod: entity.PaymentNequi}, session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, int64(5*55000), out.Total)
	assert.Equal(t, entity.PaymentNequi, out.PaymentMethod)
	assert.Contains(t, out.WhatsAppLink, "wa.me/573001112233")

	p, ok := env.catalog.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 5, p.Stock, "el stock debe descontarse")

	// El carrito quedó vacío: un segundo checkout falla
	resp = doJSON(t, env.app, http.MethodPost, "/api/checkout",
		dto.CheckoutRequest{PaymentMethod: entity.PaymentNequi}, session)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckout_MetodoDePagoInvalido400(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/checkout",
		dto.CheckoutRequest{PaymentMethod: "Cheque"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin: auth y CRUD de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_SinTokenRetorna401(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/products",
		dto.CreateProductRequest{Name: "X"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_TokenInvalidoRetorna401(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/sales", nil,
		map[string]string{"Authorization": "Bearer token.invalido.aqui"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CredencialesInvalidas401(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{User: testAdminUser, Password: "incorrecta"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_CrearProducto(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)

	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/products",
		dto.CreateProductRequest{Name: "LICUADORA PORTATIL", WholesalePrice: 28000, RetailPrice: 35000, Stock: 8},
		map[string]string{"Authorization": token})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.ProductResponse](t, resp)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.CategoryCocina, out.Category, "la categoría se infiere del nombre")
	assert.Equal(t, 1, env.pusher.enqueued, "crear debe encolar un push")
}

func TestAdmin_CrearDuplicadoRetorna409(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)

	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/products",
		dto.CreateProductRequest{Name: "hidrolavadora", WholesalePrice: 1000, RetailPrice: 2000},
		map[string]string{"Authorization": token})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "el nombre se de-duplica sin importar mayúsculas")
}

func TestAdmin_ActualizarYEliminar(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)
	headers := map[string]string{"Authorization": token}

	newStock := 99
	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/products/p1",
		dto.UpdateProductRequest{Stock: &newStock}, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, 99, out.Stock)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/admin/products/p2", nil, headers)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/admin/products/p2", nil, headers)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin: ventas, ajustes, sync y PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_HistorialYReporte(t *testing.T) {
	env := buildTestApp(t)
	session := map[string]string{"X-Session-ID": "s1"}
	doJSON(t, env.app, http.MethodPost, "/api/cart/items",
		dto.AddCartItemRequest{ProductID: "p2", Quantity: 2}, session).Body.Close()
	doJSON(t, env.app, http.MethodPost, "/api/checkout",
		dto.CheckoutRequest{PaymentMethod: entity.PaymentEfectivo}, session).Body.Close()

	token := adminToken(t, env.app)
	headers := map[string]string{"Authorization": token}

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/sales", nil, headers)
	list := decode[dto.SalesListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, int64(2*30000), list.Items[0].Total)

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/sales/report", nil, headers)
	report := decode[dto.SalesReportResponse](t, resp)
	assert.Equal(t, int64(60000), report.Revenue)
	assert.Equal(t, int64(44000), report.CostBasis)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/admin/sales", nil, headers)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/sales", nil, headers)
	list = decode[dto.SalesListResponse](t, resp)
	assert.Zero(t, list.Total)
}

func TestAdmin_Ajustes(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)
	headers := map[string]string{"Authorization": token}

	phone := "573009998877"
	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/settings",
		dto.UpdateSettingsRequest{WhatsAppPhone: &phone}, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/settings", nil, headers)
	out := decode[dto.SettingsResponse](t, resp)
	assert.Equal(t, phone, out.WhatsAppPhone)
}

func TestAdmin_SyncManual(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)
	headers := map[string]string{"Authorization": token}

	resp := doJSON(t, env.app, http.MethodPost, "/api/admin/sync", nil, headers)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, 1, env.pusher.enqueued)

	env.sheet.enabled = false
	resp = doJSON(t, env.app, http.MethodPost, "/api/admin/sync", nil, headers)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "sin endpoint configurado no hay push")
}

func TestAdmin_CatalogoPDF(t *testing.T) {
	env := buildTestApp(t)
	token := adminToken(t, env.app)

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/catalog.pdf", nil,
		map[string]string{"Authorization": token})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
