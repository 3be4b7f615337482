package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mbs.GO/api"
	cartApi "mbs.GO/api/cart"
	catalogApi "mbs.GO/api/catalog"
	ordersApi "mbs.GO/api/orders"
	quoteApi "mbs.GO/api/quote"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
	cartService "mbs.GO/service/cart"
	orderService "mbs.GO/service/order"
)

// newServer wires the route modules directly, without auth middleware.
func newServer(t *testing.T) (*echo.Echo, *api.Deps) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	catalog := catalogRepo.NewStore(kv, nil)
	catalog.Refresh()
	orders := orderRepo.NewStore(kv)
	orders.Load()

	deps := &api.Deps{
		DB:        db,
		Catalog:   catalog,
		Orders:    orders,
		Lifecycle: orderService.NewService(orders, catalog),
		Carts:     cartService.NewManager(),
	}

	e := echo.New()
	g := e.Group("/api")
	catalogApi.RegisterCatalogRoutes(g, deps)
	ordersApi.RegisterOrderRoutes(g, deps)
	cartApi.RegisterCartRoutes(g, deps)
	quoteApi.RegisterQuoteRoutes(g, deps)
	return e, deps
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}
