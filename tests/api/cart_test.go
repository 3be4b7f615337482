package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	orderEntity "mbs.GO/model/entity/order"
)

func doWithToken(t *testing.T, e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("X-Cart-Token", token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type cartResponse struct {
	Items      []orderEntity.LineItem `json:"items"`
	TotalItems int                    `json:"totalItems"`
	Subtotal   float64                `json:"subtotal"`
}

func TestCartAPI_AddVariantLine(t *testing.T) {
	e, _ := newServer(t)

	rec := do(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"shingles","brandId":"atlas","productId":"pinnacle","colorId":"charcoal-black","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var resp cartResponse
	decode(t, rec, &resp)
	if len(resp.Items) != 1 {
		t.Fatalf("items = %+v", resp.Items)
	}
	line := resp.Items[0]
	if line.ID != "pinnacle-charcoal-black" {
		t.Errorf("line id = %q", line.ID)
	}
	if line.Name != "Pinnacle - Charcoal Black" {
		t.Errorf("line name = %q", line.Name)
	}
	if line.Price != 135.99 { // qty 2 is below every bulk threshold
		t.Errorf("line price = %v", line.Price)
	}
}

func TestCartAPI_StringQuantityNormalizes(t *testing.T) {
	e, _ := newServer(t)

	rec := do(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"underlayment","productId":"15lb-felt","quantity":"abc"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var resp cartResponse
	decode(t, rec, &resp)
	if resp.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1 (garbage quantity becomes 1)", resp.TotalItems)
	}
}

func TestCartAPI_BulkDiscountApplied(t *testing.T) {
	e, _ := newServer(t)

	// 10 units of a direct underlayment product hits the 5% tier.
	rec := do(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"underlayment","productId":"15lb-felt","quantity":10}`)
	var resp cartResponse
	decode(t, rec, &resp)
	want := 35.99 * 0.95
	if resp.Items[0].Price != want {
		t.Errorf("unit price = %v, want %v", resp.Items[0].Price, want)
	}
}

func TestCartAPI_UnknownProduct(t *testing.T) {
	e, _ := newServer(t)
	rec := do(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"underlayment","productId":"ghost","quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCartAPI_CheckoutFlow(t *testing.T) {
	e, deps := newServer(t)

	rec := doWithToken(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"underlayment","productId":"30lb-felt","quantity":2}`, "session-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d", rec.Code)
	}

	rec = doWithToken(t, e, http.MethodPost, "/api/cart/checkout",
		`{"customerName":"Jo Builder","company":"Builder Co","deliveryType":"ground"}`, "session-1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d body=%s", rec.Code, rec.Body.String())
	}
	var o orderEntity.Order
	decode(t, rec, &o)
	if o.Status != orderEntity.StatusPending || o.DeliveryFee != 75 {
		t.Errorf("order = %+v", o)
	}
	if got, ok := deps.Orders.Get(o.ID); !ok || got.Total != o.Total {
		t.Errorf("order not persisted: %v %v", got, ok)
	}

	// Cart is empty afterwards; a second checkout fails.
	rec = doWithToken(t, e, http.MethodPost, "/api/cart/checkout", `{}`, "session-1")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("second checkout status = %d", rec.Code)
	}
}

func TestCartAPI_TokensIsolateSessions(t *testing.T) {
	e, _ := newServer(t)
	doWithToken(t, e, http.MethodPost, "/api/cart/items",
		`{"categoryId":"underlayment","productId":"15lb-felt","quantity":3}`, "alpha")

	rec := doWithToken(t, e, http.MethodGet, "/api/cart", "", "beta")
	var resp cartResponse
	decode(t, rec, &resp)
	if resp.TotalItems != 0 {
		t.Errorf("beta cart items = %d", resp.TotalItems)
	}
}
