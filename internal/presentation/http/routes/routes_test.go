package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/infrastructure/database"
	"github.com/arjunmenon/restobill/internal/infrastructure/repository"
	"github.com/arjunmenon/restobill/internal/presentation/http/handler"
	"github.com/arjunmenon/restobill/pkg/printer"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedMenu(db))

	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	calculator := service.NewCalculator(&service.FlatTaxPolicy{
		TaxRate:           18,
		ServiceRate:       2,
		DiscountRate:      10,
		DiscountThreshold: 100000,
	})

	store := config.StoreConfig{Name: "Spice Garden"}
	cartService := service.NewCartService(menuRepo, calculator)

	handlers := &Handlers{
		Menu:    handler.NewMenuHandler(service.NewMenuService(menuRepo)),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(service.NewOrderService(orderRepo, calculator, "ORD"), cartService),
		Receipt: handler.NewReceiptHandler(service.NewReceiptService(orderRepo, printer.NewNullPrinter(), "none", store)),
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "restobill-test"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	return Setup(handlers, cfg)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestBillingFlow(t *testing.T) {
	router := newTestRouter(t)

	// seeded menu is served
	w, body := doJSON(t, router, http.MethodGet, "/api/v1/menu", nil)
	require.Equal(t, 200, w.Code)
	items := body["data"].([]any)
	assert.Len(t, items, 10)

	// Paneer Butter Masala x2 (id 1), Roti x4 (id 6)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"menu_item_id": 1, "quantity": 2})
	require.Equal(t, 200, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"menu_item_id": 6, "quantity": 4})
	require.Equal(t, 200, w.Code)

	// live cart preview carries the full breakdown
	w, body = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, 200, w.Code)
	totals := body["data"].(map[string]any)["totals"].(map[string]any)
	assert.Equal(t, 320.0, totals["sub_total"])
	assert.Equal(t, 6.4, totals["service_charge"])
	assert.Equal(t, 57.6, totals["tax"])
	assert.Equal(t, 384.0, totals["total"])

	// confirm the order
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/orders", map[string]any{
		"order_type":      "Takeaway",
		"payment_method":  2,
		"customer_name":   "Arjun",
		"customer_mobile": "9876543210",
	})
	require.Equal(t, 201, w.Code)
	order := body["data"].(map[string]any)
	reference := order["reference_no"].(string)
	assert.NotEmpty(t, reference)
	assert.Equal(t, "Takeaway", order["order_type"])
	assert.Equal(t, "UPI", order["payment_method"])
	assert.Equal(t, 384.0, order["total"])

	// checkout cleared the cart
	w, body = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, 200, w.Code)
	assert.Empty(t, body["data"].(map[string]any)["lines"])

	// lookup by reference
	w, body = doJSON(t, router, http.MethodGet, "/api/v1/orders/reference/"+reference, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, order["id"], body["data"].(map[string]any)["id"])

	// receipt reconstruction
	w, body = doJSON(t, router, http.MethodGet, "/api/v1/orders/1/receipt", nil)
	require.Equal(t, 200, w.Code)
	receipt := body["data"].(map[string]any)
	assert.Equal(t, reference, receipt["reference_no"])
	assert.Equal(t, 384.0, receipt["total"])

	// text and CSV renditions
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/1/receipt/text", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bill Ref: "+reference)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/1/receipt/csv", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), reference+".csv")

	// a second checkout with the now-empty cart is rejected
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/orders",
		map[string]any{"customer_name": "Arjun"})
	assert.Equal(t, 422, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestCheckoutValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"menu_item_id": 2, "quantity": 1})
	require.Equal(t, 200, w.Code)

	// missing customer name must not consume the cart
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/orders", map[string]any{})
	assert.Equal(t, 422, w.Code)

	w, body := doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, body["data"].(map[string]any)["lines"].([]any), 1)
}

func TestUnknownMenuItemOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"menu_item_id": 999, "quantity": 1})
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, false, body["success"])
}
